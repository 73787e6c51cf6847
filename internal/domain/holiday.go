package domain

import (
	"fmt"
	"time"
)

// Holiday is one public holiday from the external feed.
type Holiday struct {
	Name      string
	Date      time.Time
	LocalName string
}

// AsActivity converts the holiday into a single-day activity on the
// given holidays layer. The ID is derived from the date so repeated
// feed merges stay stable.
func (h Holiday) AsActivity(layerID, organizationID string) *Activity {
	d := DateOnly(h.Date)
	title := h.LocalName
	if title == "" {
		title = h.Name
	}
	return &Activity{
		ID:             fmt.Sprintf("holiday-%s", d.Format("2006-01-02")),
		Title:          title,
		StartDate:      d,
		EndDate:        d,
		TypeKey:        "holiday",
		Color:          "#b8bb26",
		HighlightColor: "#98971a",
		LayerID:        layerID,
		OrganizationID: organizationID,
	}
}
