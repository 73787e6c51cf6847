package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/arshjul/yearwheel/internal/domain"
)

// TestOrgID is the organization most fixtures belong to.
const TestOrgID = "org-test"

// TestUserID is the user most fixtures are created by.
const TestUserID = "user-test"

// Layer options
type LayerOption func(*domain.Layer)

func WithRingIndex(idx int) LayerOption {
	return func(l *domain.Layer) {
		l.RingIndex = idx
	}
}

func WithLayerType(t domain.LayerType) LayerOption {
	return func(l *domain.Layer) {
		l.Type = t
	}
}

func WithLayerHidden() LayerOption {
	return func(l *domain.Layer) {
		l.IsVisible = false
	}
}

func NewTestLayer(name string, opts ...LayerOption) *domain.Layer {
	now := time.Now().UTC()
	l := &domain.Layer{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           domain.LayerCustom,
		Color:          "#8ec07c",
		IsVisible:      true,
		OrganizationID: TestOrgID,
		CreatedBy:      TestUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithDates(start, end time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.StartDate = domain.DateOnly(start)
		a.EndDate = domain.DateOnly(end)
	}
}

func WithTypeKey(key string) ActivityOption {
	return func(a *domain.Activity) {
		a.TypeKey = key
	}
}

func WithRepeatGroup(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.RepeatGroupID = id
	}
}

func NewTestActivity(title, layerID string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:             uuid.New().String(),
		Title:          title,
		StartDate:      domain.DateOnly(now),
		EndDate:        domain.DateOnly(now.AddDate(0, 0, 6)),
		TypeKey:        "event",
		Color:          "#fabd2f",
		HighlightColor: "#d79921",
		LayerID:        layerID,
		OrganizationID: TestOrgID,
		CreatedBy:      TestUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Share options
type ShareOption func(*domain.ShareLink)

func WithVisibility(v domain.ShareVisibility) ShareOption {
	return func(s *domain.ShareLink) {
		s.Visibility = v
	}
}

func WithExpiresAt(t time.Time) ShareOption {
	return func(s *domain.ShareLink) {
		s.ExpiresAt = t
	}
}

func WithShareInactive() ShareOption {
	return func(s *domain.ShareLink) {
		s.IsActive = false
	}
}

func NewTestShare(name string, layerIDs []string, opts ...ShareOption) *domain.ShareLink {
	now := time.Now().UTC()
	s := &domain.ShareLink{
		ID:             uuid.New().String(),
		ShareKey:       "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		ShortCode:      uuid.New().String()[:8],
		Visibility:     domain.SharePublic,
		OrganizationID: TestOrgID,
		CreatedBy:      TestUserID,
		CreatedAt:      now,
		ExpiresAt:      now.AddDate(1, 0, 0),
		Name:           name,
		LayerConfig:    domain.ShareLayerConfig{LayerIDs: layerIDs},
		ViewSettings:   domain.DefaultShareViewSettings(),
		IsActive:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
