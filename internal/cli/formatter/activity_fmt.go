package formatter

import (
	"fmt"
	"strings"

	"github.com/arshjul/yearwheel/internal/domain"
)

// FormatActivityList renders a styled activity table inside a box.
// Layer names are resolved through the provided lookup; unknown layers
// fall back to a truncated ID.
func FormatActivityList(activities []*domain.Activity, layerNames map[string]string) string {
	headers := []string{"ID", "TITLE", "TYPE", "DATES", "LAYER"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		layer, ok := layerNames[a.LayerID]
		if !ok {
			layer = TruncID(a.LayerID)
		}
		title := Bold(a.Title)
		if a.RepeatGroupID != "" {
			title += Dim(" ⟳")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			title,
			TypeBadge(a.TypeKey),
			DateRange(a.StartDate, a.EndDate),
			layer,
		})
	}

	return RenderBox("Activities", RenderTable(headers, rows))
}

// FormatActivityDetail renders a single activity card.
func FormatActivityDetail(a *domain.Activity, layerName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Bold(a.Title))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Type:"), TypeBadge(a.TypeKey))
	fmt.Fprintf(&b, "%s  %s\n", Dim("When:"), DateRange(a.StartDate, a.EndDate))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Layer:"), layerName)
	if a.Description != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Notes:"), a.Description)
	}
	if a.RepeatGroupID != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Repeats:"), Dim("group "+a.RepeatGroupID[:8]))
	}
	fmt.Fprintf(&b, "%s  %s", Dim("ID:"), Dim(a.ID))
	return RenderBox("", b.String())
}
