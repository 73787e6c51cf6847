package domain

import "time"

// ShareLayerConfig selects which layers a share exposes.
type ShareLayerConfig struct {
	LayerIDs        []string        `json:"layerIds"`
	LayerVisibility map[string]bool `json:"layerVisibility,omitempty"`
	Year            int             `json:"year,omitempty"`
}

// ShareViewSettings controls the presentation of a shared wheel.
type ShareViewSettings struct {
	Theme                ShareTheme `json:"theme"`
	ShowLegend           bool       `json:"showLegend"`
	ShowTitle            bool       `json:"showTitle"`
	CustomTitle          string     `json:"customTitle,omitempty"`
	AllowInteraction     bool       `json:"allowInteraction"`
	RotateToCurrentMonth bool       `json:"rotateToCurrentMonth"`
}

// DefaultShareViewSettings returns the settings applied when a share is
// created without explicit view configuration.
func DefaultShareViewSettings() ShareViewSettings {
	return ShareViewSettings{
		Theme:                ThemeLight,
		ShowLegend:           true,
		ShowTitle:            true,
		AllowInteraction:     true,
		RotateToCurrentMonth: true,
	}
}

// ShareStats tracks access statistics for a share.
type ShareStats struct {
	ViewCount      int64      `json:"viewCount"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty"`
}

// ShareLink grants access to a read-only view of selected layers,
// either to authenticated users or publicly via short code + key.
type ShareLink struct {
	ID             string
	ShareKey       string
	ShortCode      string
	Visibility     ShareVisibility
	OrganizationID string
	CreatedBy      string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	RenewedAt      *time.Time
	Name           string
	Description    string
	LayerConfig    ShareLayerConfig
	ViewSettings   ShareViewSettings
	Stats          ShareStats
	IsActive       bool
}

// renewalWindow is how close to expiry a share is considered due for
// renewal.
const renewalWindow = 30 * 24 * time.Hour

// IsExpired reports whether the share has passed its expiry time.
func (s *ShareLink) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// NeedsRenewal reports whether the share expires within the renewal
// window.
func (s *ShareLink) NeedsRenewal(now time.Time) bool {
	return s.ExpiresAt.Sub(now) < renewalWindow
}

// TTL returns the remaining lifetime in seconds, clamped at zero.
func (s *ShareLink) TTL(now time.Time) int64 {
	ttl := int64(s.ExpiresAt.Sub(now).Seconds())
	if ttl < 0 {
		return 0
	}
	return ttl
}
