package formatter

import (
	"fmt"

	"github.com/arshjul/yearwheel/internal/domain"
)

// FormatLayerList renders the ring stack inside-out, one row per layer.
func FormatLayerList(layers []*domain.Layer, counts map[string]int) string {
	headers := []string{"RING", "ID", "NAME", "TYPE", "COLOR", "ACTIVITIES", "VISIBLE"}
	rows := make([][]string, 0, len(layers))

	for _, l := range domain.SortLayers(layers) {
		visible := StyleGreen.Render("yes")
		if !l.IsVisible {
			visible = StyleDim.Render("hidden")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", l.RingIndex),
			TruncID(l.ID),
			Bold(l.Name),
			LayerTypePill(l.Type),
			Swatch(l.Color),
			fmt.Sprintf("%d", counts[l.ID]),
			visible,
		})
	}

	return RenderBox("Layers", RenderTable(headers, rows))
}
