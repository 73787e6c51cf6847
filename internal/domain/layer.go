package domain

import (
	"sort"
	"time"
)

// Layer is a concentric ring on the wheel grouping activities by
// organizational category.
type Layer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        LayerType `json:"type"`
	Color       string    `json:"color"`

	// RingIndex orders layers from the inside out. It is a sort key,
	// not an array index: gaps and duplicates are allowed.
	RingIndex int `json:"ringIndex"`

	IsVisible      bool      `json:"isVisible"`
	OrganizationID string    `json:"-"`
	CreatedBy      string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SortLayers orders layers ascending by ring index. The sort is stable
// so ties keep their input order and repeated calls produce identical
// layouts.
func SortLayers(layers []*Layer) []*Layer {
	sorted := make([]*Layer, len(layers))
	copy(sorted, layers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RingIndex < sorted[j].RingIndex
	})
	return sorted
}

// ScopeFilters maps layer IDs to an explicit include/exclude decision.
// A layer absent from the map falls back to its own IsVisible flag.
type ScopeFilters map[string]bool

// Includes reports whether the given layer should take part in a
// layout pass.
func (f ScopeFilters) Includes(layer *Layer) bool {
	if f != nil {
		if v, ok := f[layer.ID]; ok {
			return v
		}
	}
	return layer.IsVisible
}
