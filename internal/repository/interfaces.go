package repository

import (
	"context"
	"errors"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// ErrNotFound is returned when the requested entity does not exist or
// belongs to a different organization.
var ErrNotFound = errors.New("not found")

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Activity, error)
	ListByLayer(ctx context.Context, organizationID, layerID string) ([]*domain.Activity, error)
	// ListWindow returns activities whose inclusive date range
	// intersects [start, end].
	ListWindow(ctx context.Context, organizationID string, start, end time.Time) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, organizationID, id string) error
	DeleteRepeatGroup(ctx context.Context, organizationID, repeatGroupID string) (int64, error)
}

type LayerRepo interface {
	Create(ctx context.Context, l *domain.Layer) error
	GetByID(ctx context.Context, organizationID, id string) (*domain.Layer, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Layer, error)
	Update(ctx context.Context, l *domain.Layer) error
	Delete(ctx context.Context, organizationID, id string) error
}

type ActivityTypeRepo interface {
	Upsert(ctx context.Context, t *domain.ActivityTypeConfig) error
	Get(ctx context.Context, organizationID, key string) (*domain.ActivityTypeConfig, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.ActivityTypeConfig, error)
	Delete(ctx context.Context, organizationID, key string) error
}

type ShareRepo interface {
	Create(ctx context.Context, s *domain.ShareLink) error
	GetByID(ctx context.Context, organizationID, id string) (*domain.ShareLink, error)
	GetByShortCode(ctx context.Context, shortCode string) (*domain.ShareLink, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.ShareLink, error)
	Update(ctx context.Context, s *domain.ShareLink) error
	Delete(ctx context.Context, organizationID, id string) error
	// IncrementViews bumps the view counter and stamps the access time
	// atomically.
	IncrementViews(ctx context.Context, id string, accessedAt time.Time) error
}

type UserSettingsRepo interface {
	Get(ctx context.Context, organizationID, userID string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, s *domain.UserSettings) error
}
