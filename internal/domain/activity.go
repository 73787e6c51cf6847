package domain

import "time"

// Activity is a planned event on the annual wheel. StartDate and EndDate
// are inclusive calendar dates; the time-of-day component is ignored by
// the layout engine.
type Activity struct {
	ID             string
	Title          string
	StartDate      time.Time
	EndDate        time.Time
	TypeKey        string
	Color          string
	HighlightColor string
	Description    string

	// LayerID is the ring ("scope") this activity belongs to.
	LayerID string

	// RepeatGroupID groups the expanded occurrences of a repeating
	// activity so it can be deleted as a whole. Empty for one-offs.
	RepeatGroupID string

	OrganizationID string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DurationDays returns the inclusive span length in whole days.
// Inverted ranges count as a single day.
func (a *Activity) DurationDays() int {
	start := DateOnly(a.StartDate)
	end := DateOnly(a.EndDate)
	if end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateOnly truncates a timestamp to midnight UTC so date arithmetic is
// immune to time-of-day and zone noise.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActivityTypeConfig is an admin-customizable activity category.
type ActivityTypeConfig struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Icon           string `json:"icon,omitempty"`
	Color          string `json:"color"`
	HighlightColor string `json:"highlightColor,omitempty"`
	Description    string `json:"description,omitempty"`
	OrganizationID string `json:"-"`
	IsSystem       bool   `json:"isSystem"`
	SortOrder      int    `json:"sortOrder"`
}

// DefaultActivityTypes returns the built-in type set seeded for every
// new organization.
func DefaultActivityTypes(organizationID string) []ActivityTypeConfig {
	defaults := []struct {
		key, label, icon, color, highlight string
	}{
		{"meeting", "Meeting", "people", "#83a598", "#458588"},
		{"deadline", "Deadline", "flag", "#fb4934", "#cc241d"},
		{"event", "Event", "star", "#fabd2f", "#d79921"},
		{"planning", "Planning", "calendar", "#8ec07c", "#689d6a"},
		{"review", "Review", "search", "#d3869b", "#b16286"},
		{"training", "Training", "school", "#fe8019", "#d65d0e"},
		{"holiday", "Holiday", "sun", "#b8bb26", "#98971a"},
		{"other", "Other", "dot", "#928374", "#7c6f64"},
	}

	types := make([]ActivityTypeConfig, 0, len(defaults))
	for i, d := range defaults {
		types = append(types, ActivityTypeConfig{
			Key:            d.key,
			Label:          d.label,
			Icon:           d.icon,
			Color:          d.color,
			HighlightColor: d.highlight,
			OrganizationID: organizationID,
			IsSystem:       true,
			SortOrder:      i,
		})
	}
	return types
}
