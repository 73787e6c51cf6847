package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/wheel"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testFrame(t *testing.T) Frame {
	t.Helper()
	layer := &domain.Layer{
		ID: "layer-1", Name: "Operations", Color: "#8ec07c",
		IsVisible: true, OrganizationID: "org-test",
	}
	act := &domain.Activity{
		ID: "act-1", Title: "Summer <event>", LayerID: "layer-1",
		TypeKey: "event", Color: "#fabd2f",
		StartDate: date(2025, time.July, 1), EndDate: date(2025, time.July, 10),
	}
	layout := wheel.Layout(wheel.LayoutInput{
		Today:      date(2025, time.June, 15),
		Activities: []*domain.Activity{act},
		Layers:     []*domain.Layer{layer},
	})
	return Frame{Layout: layout, ViewBox: wheel.ViewBox(wheel.ViewportFull)}
}

func TestSVG_ContainsCoreElements(t *testing.T) {
	out := SVG(testFrame(t), DefaultStyle())

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `viewBox="0 0 1000 1000"`)
	assert.Contains(t, out, `data-activity-id="act-1"`)
	assert.Contains(t, out, `fill-rule="evenodd"`)
	// Activity title is escaped.
	assert.Contains(t, out, "Summer &lt;event&gt;")
	assert.NotContains(t, out, "Summer <event>")
	// Month labels from the default English set.
	assert.Contains(t, out, ">July<")
	// Legend carries the layer name.
	assert.Contains(t, out, ">Operations<")
}

func TestSVG_RotationWrapsDateAnchoredGroup(t *testing.T) {
	frame := testFrame(t)
	frame.Rotation = -120.5

	out := SVG(frame, DefaultStyle())
	assert.Contains(t, out, `<g transform="rotate(-120.5 500 500)">`)

	frame.Rotation = 0
	out = SVG(frame, DefaultStyle())
	assert.NotContains(t, out, `<g transform="rotate(`)
}

func TestSVG_StyleTogglesSuppressSections(t *testing.T) {
	style := DefaultStyle()
	style.ShowLegend = false
	style.ShowDayTicks = false
	style.ShowWeekBands = false

	out := SVG(testFrame(t), style)
	assert.NotContains(t, out, "<line x1=\"500\" y1=\"100\"") // no day ticks at top
	assert.NotContains(t, out, ">Operations<")
}

func TestSVG_CompactViewBox(t *testing.T) {
	frame := testFrame(t)
	frame.ViewBox = wheel.ViewBox(wheel.ViewportCompact)

	out := SVG(frame, DefaultStyle())
	assert.Contains(t, out, `viewBox="187.5 40 625 625"`)
}

func TestPathData_EmitsArcCommands(t *testing.T) {
	axis := wheel.Axis{Center: wheel.Point{X: 500, Y: 500}}
	p := axis.AnnularSector(0, 90, 100, 200)

	d := pathData(p)
	assert.True(t, strings.HasPrefix(d, "M "))
	assert.Contains(t, d, "A 200 200 0 0 1")
	assert.Contains(t, d, "A 100 100 0 0 0")
	assert.True(t, strings.HasSuffix(d, "Z"))
}

func TestPathData_LargeArcFlag(t *testing.T) {
	axis := wheel.Axis{Center: wheel.Point{X: 500, Y: 500}}
	p := axis.AnnularSector(0, 270, 100, 200)

	d := pathData(p)
	assert.Contains(t, d, "A 200 200 0 1 1")
}

func TestStyleForTheme(t *testing.T) {
	assert.Equal(t, DefaultStyle(), StyleForTheme(domain.ThemeLight))
	assert.Equal(t, DefaultStyle(), StyleForTheme(domain.ThemeAuto))
	assert.Equal(t, DarkStyle(), StyleForTheme(domain.ThemeDark))
}

func TestLoadStyle_MergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: \"#ffffff\"\nshow_legend: false\n"), 0644))

	s, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", s.Background)
	assert.False(t, s.ShowLegend)
	// Unset fields keep defaults.
	assert.Equal(t, DefaultStyle().FontFamily, s.FontFamily)
	assert.True(t, s.ShowDayTicks)
}

func TestLoadStyle_MissingFile(t *testing.T) {
	_, err := LoadStyle("/nonexistent/style.yaml")
	assert.Error(t, err)
}
