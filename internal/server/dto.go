package server

import (
	"fmt"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

const dateLayout = "2006-01-02"

// ActivityRequest is the write payload for activities.
type ActivityRequest struct {
	Title          string `json:"title"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	TypeKey        string `json:"typeKey"`
	Color          string `json:"color"`
	HighlightColor string `json:"highlightColor"`
	Description    string `json:"description"`
	LayerID        string `json:"layerId"`

	// Repeat fields are honored on create only.
	RepeatInterval string `json:"repeatInterval,omitempty"`
	RepeatCount    int    `json:"repeatCount,omitempty"`
}

func (req ActivityRequest) toDomain(organizationID, userID string) (*domain.Activity, error) {
	start, end, err := req.parseDates()
	if err != nil {
		return nil, err
	}
	return &domain.Activity{
		Title:          req.Title,
		StartDate:      start,
		EndDate:        end,
		TypeKey:        req.TypeKey,
		Color:          req.Color,
		HighlightColor: req.HighlightColor,
		Description:    req.Description,
		LayerID:        req.LayerID,
		OrganizationID: organizationID,
		CreatedBy:      userID,
	}, nil
}

// applyTo copies the request over an existing activity. Identity,
// tenancy and repeat-group fields are not touched.
func (req ActivityRequest) applyTo(a *domain.Activity) error {
	start, end, err := req.parseDates()
	if err != nil {
		return err
	}
	a.Title = req.Title
	a.StartDate = start
	a.EndDate = end
	a.TypeKey = req.TypeKey
	a.Color = req.Color
	a.HighlightColor = req.HighlightColor
	a.Description = req.Description
	if req.LayerID != "" {
		a.LayerID = req.LayerID
	}
	return nil
}

func (req ActivityRequest) parseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate: expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate: expected YYYY-MM-DD")
	}
	return start, end, nil
}

// ActivityView is the read shape for activities.
type ActivityView struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	TypeKey        string `json:"typeKey"`
	Color          string `json:"color"`
	HighlightColor string `json:"highlightColor"`
	Description    string `json:"description,omitempty"`
	LayerID        string `json:"layerId"`
	RepeatGroupID  string `json:"repeatGroupId,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

func toActivityView(a *domain.Activity) ActivityView {
	return ActivityView{
		ID:             a.ID,
		Title:          a.Title,
		StartDate:      a.StartDate.Format(dateLayout),
		EndDate:        a.EndDate.Format(dateLayout),
		TypeKey:        a.TypeKey,
		Color:          a.Color,
		HighlightColor: a.HighlightColor,
		Description:    a.Description,
		LayerID:        a.LayerID,
		RepeatGroupID:  a.RepeatGroupID,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

func toActivityViews(activities []*domain.Activity) []ActivityView {
	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, toActivityView(a))
	}
	return views
}

// LayerRequest is the write payload for layers.
type LayerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	RingIndex   *int   `json:"ringIndex,omitempty"`
	IsVisible   *bool  `json:"isVisible,omitempty"`
}

func (req LayerRequest) toDomain(organizationID, userID string) *domain.Layer {
	l := &domain.Layer{
		Name:           req.Name,
		Description:    req.Description,
		Type:           domain.LayerType(req.Type),
		Color:          req.Color,
		IsVisible:      true,
		OrganizationID: organizationID,
		CreatedBy:      userID,
	}
	if req.RingIndex != nil {
		l.RingIndex = *req.RingIndex
	}
	if req.IsVisible != nil {
		l.IsVisible = *req.IsVisible
	}
	return l
}

// applyTo copies the request over an existing layer, leaving fields
// the payload omitted alone.
func (req LayerRequest) applyTo(l *domain.Layer) {
	l.Name = req.Name
	l.Description = req.Description
	if req.Type != "" {
		l.Type = domain.LayerType(req.Type)
	}
	if req.Color != "" {
		l.Color = req.Color
	}
	if req.RingIndex != nil {
		l.RingIndex = *req.RingIndex
	}
	if req.IsVisible != nil {
		l.IsVisible = *req.IsVisible
	}
}

// LayerView is the read shape for layers.
type LayerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	RingIndex   int    `json:"ringIndex"`
	IsVisible   bool   `json:"isVisible"`
}

func toLayerView(l *domain.Layer) LayerView {
	return LayerView{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Type:        string(l.Type),
		Color:       l.Color,
		RingIndex:   l.RingIndex,
		IsVisible:   l.IsVisible,
	}
}

func toLayerViews(layers []*domain.Layer) []LayerView {
	views := make([]LayerView, 0, len(layers))
	for _, l := range layers {
		views = append(views, toLayerView(l))
	}
	return views
}

// ShareRequest is the write payload for shares.
type ShareRequest struct {
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	Visibility   string                    `json:"visibility"`
	LayerConfig  domain.ShareLayerConfig   `json:"layerConfig"`
	ViewSettings *domain.ShareViewSettings `json:"viewSettings,omitempty"`
}

// ShareView is the read shape for shares. The share key appears only
// in the create response; listings omit it.
type ShareView struct {
	ID           string                   `json:"id"`
	ShortCode    string                   `json:"shortCode"`
	ShareKey     string                   `json:"shareKey,omitempty"`
	ShareURL     string                   `json:"shareUrl,omitempty"`
	Visibility   string                   `json:"visibility"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description,omitempty"`
	LayerConfig  domain.ShareLayerConfig  `json:"layerConfig"`
	ViewSettings domain.ShareViewSettings `json:"viewSettings"`
	Stats        domain.ShareStats        `json:"stats"`
	ExpiresAt    string                   `json:"expiresAt"`
	IsActive     bool                     `json:"isActive"`
	TTLSeconds   int64                    `json:"ttlSeconds"`
}

func toShareView(s *domain.ShareLink, includeKey bool, baseURL string, now time.Time) ShareView {
	v := ShareView{
		ID:           s.ID,
		ShortCode:    s.ShortCode,
		Visibility:   string(s.Visibility),
		Name:         s.Name,
		Description:  s.Description,
		LayerConfig:  s.LayerConfig,
		ViewSettings: s.ViewSettings,
		Stats:        s.Stats,
		ExpiresAt:    s.ExpiresAt.Format(time.RFC3339),
		IsActive:     s.IsActive,
		TTLSeconds:   s.TTL(now),
	}
	if includeKey {
		v.ShareKey = s.ShareKey
		v.ShareURL = baseURL + "/s/" + s.ShortCode + "#" + s.ShareKey
	}
	return v
}

// AccessRequest is the public share access payload.
type AccessRequest struct {
	ShortCode string `json:"shortCode"`
	ShareKey  string `json:"shareKey"`
}

// AccessView is what a public visitor receives.
type AccessView struct {
	Name         string                   `json:"name"`
	ViewSettings domain.ShareViewSettings `json:"viewSettings"`
	Layers       []LayerView              `json:"layers"`
	Activities   []ActivityView           `json:"activities"`
}

// SettingsRequest/View share a shape.
type SettingsPayload struct {
	LayerOrder      []string            `json:"layerOrder"`
	LayerVisibility domain.ScopeFilters `json:"layerVisibility"`
	Theme           string              `json:"theme"`
}

// TypeRequest is the write payload for activity types.
type TypeRequest struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	HighlightColor string `json:"highlightColor"`
	Description    string `json:"description"`
	SortOrder      int    `json:"sortOrder"`
}
