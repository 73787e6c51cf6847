package service

import (
	"context"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/wheel"
)

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	// CreateRepeating expands the activity into count occurrences at
	// the given interval, all sharing a repeat group ID. The write is
	// transactional: either every occurrence lands or none do.
	CreateRepeating(ctx context.Context, a *domain.Activity, interval domain.RepeatInterval, count int) ([]*domain.Activity, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Activity, error)
	ListByLayer(ctx context.Context, organizationID, layerID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, organizationID, id string) error
	// DeleteGroup removes every occurrence sharing the activity's
	// repeat group. Falls back to a single delete for one-offs.
	DeleteGroup(ctx context.Context, organizationID, id string) (int64, error)
}

type LayerService interface {
	Create(ctx context.Context, l *domain.Layer) error
	GetByID(ctx context.Context, organizationID, id string) (*domain.Layer, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Layer, error)
	Update(ctx context.Context, l *domain.Layer) error
	// Reorder rewrites ring indexes to match the given inner-to-outer
	// layer ID order. Transactional.
	Reorder(ctx context.Context, organizationID string, layerIDs []string) error
	Delete(ctx context.Context, organizationID, id string) error
}

type TypeService interface {
	// SeedDefaults inserts the built-in activity types for an
	// organization that has none. Idempotent.
	SeedDefaults(ctx context.Context, organizationID string) error
	List(ctx context.Context, organizationID string) ([]*domain.ActivityTypeConfig, error)
	Upsert(ctx context.Context, t *domain.ActivityTypeConfig) error
	Delete(ctx context.Context, organizationID, key string) error
}

// CreateShareParams carries the caller-supplied share fields; key
// material and timestamps are generated by the service.
type CreateShareParams struct {
	OrganizationID string
	CreatedBy      string
	Name           string
	Description    string
	Visibility     domain.ShareVisibility
	LayerConfig    domain.ShareLayerConfig
	ViewSettings   *domain.ShareViewSettings
}

// ShareAccess is what a public visitor gets back after presenting a
// valid short code and share key.
type ShareAccess struct {
	Share      *domain.ShareLink
	Layers     []*domain.Layer
	Activities []*domain.Activity
}

type ShareService interface {
	Create(ctx context.Context, p CreateShareParams) (*domain.ShareLink, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.ShareLink, error)
	List(ctx context.Context, organizationID string) ([]*domain.ShareLink, error)
	// Access validates a short code + share key pair and returns the
	// shared layers and activities, bumping the view counter.
	Access(ctx context.Context, shortCode, shareKey string) (*ShareAccess, error)
	// Renew extends the expiry by a year. Only shares inside the
	// renewal window qualify.
	Renew(ctx context.Context, organizationID, id string) (*domain.ShareLink, error)
	Revoke(ctx context.Context, organizationID, id string) error
}

type SettingsService interface {
	// Get returns the user's settings, or defaults if none are saved.
	Get(ctx context.Context, organizationID, userID string) (*domain.UserSettings, error)
	Update(ctx context.Context, s *domain.UserSettings) error
}

// WheelParams selects what a layout pass covers.
type WheelParams struct {
	OrganizationID string
	UserID         string
	Today          time.Time
	Viewport       wheel.ViewportClass
	HighlightedID  string
	Filters        domain.ScopeFilters
}

// WheelFrame is an assembled, render-ready wheel.
type WheelFrame struct {
	Layout   wheel.LayoutResult `json:"layout"`
	Rotation float64            `json:"rotation"`
	ViewBox  wheel.Rect         `json:"viewBox"`
	Layers   []*domain.Layer    `json:"layers"`
}

type WheelService interface {
	// Frame loads the organization's layers and activities, merges the
	// holiday feed, and runs a layout pass.
	Frame(ctx context.Context, p WheelParams) (*WheelFrame, error)
}
