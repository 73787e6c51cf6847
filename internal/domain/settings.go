package domain

import "time"

// UserSettings stores per-user wheel preferences: layer ordering,
// layer visibility overrides and theme.
type UserSettings struct {
	UserID         string
	OrganizationID string

	// LayerOrder is the user's preferred ring order, inner to outer.
	// Empty means the organization's ring indexes apply.
	LayerOrder []string

	// LayerVisibility overrides per-layer visibility; it feeds the
	// layout engine's scope filters.
	LayerVisibility ScopeFilters

	Theme     ShareTheme
	UpdatedAt time.Time
}

// NewUserSettings creates settings with defaults for a user that has
// never saved any.
func NewUserSettings(userID, organizationID string, now time.Time) *UserSettings {
	return &UserSettings{
		UserID:         userID,
		OrganizationID: organizationID,
		Theme:          ThemeAuto,
		UpdatedAt:      now,
	}
}
