// Package render turns layout frames into SVG documents and PNG
// exports. The layout engine emits technology-neutral geometry; this
// package owns everything SVG-specific: path data syntax, text
// anchoring, theming.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/arshjul/yearwheel/internal/wheel"
)

// Frame is the renderable unit: one layout pass plus its viewport and
// focus rotation.
type Frame struct {
	Layout   wheel.LayoutResult
	ViewBox  wheel.Rect
	Rotation float64
}

const (
	dayTickLength        = 8.0
	monthStartTickLength = 16.0
	weekBandThickness    = 12.0
	monthLabelRadius     = 36.0
)

// SVG renders a frame as a complete SVG document.
func SVG(frame Frame, style Style) string {
	layout := frame.Layout
	axis := wheel.Axis{Center: layout.Center}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" font-family="%s" font-size="%s">`+"\n",
		rectAttr(frame.ViewBox), html.EscapeString(style.FontFamily), f(style.FontSize))
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		f(wheel.CanvasSize), f(wheel.CanvasSize), style.Background)

	// Date-anchored elements rotate together when an activity is
	// focused; the today marker stays pinned at 12 o'clock.
	if frame.Rotation != 0 {
		fmt.Fprintf(&b, `<g transform="rotate(%s %s %s)">`+"\n",
			f(frame.Rotation), f(layout.Center.X), f(layout.Center.Y))
	} else {
		b.WriteString("<g>\n")
	}

	writeRings(&b, layout, style)
	if style.ShowWeekBands {
		writeWeekBands(&b, axis, layout, style)
	}
	writeActivities(&b, layout)
	if style.ShowDayTicks {
		writeDayTicks(&b, axis, layout, style)
	}
	writeMonthLabels(&b, axis, layout, style)

	b.WriteString("</g>\n")

	writeTodayMarker(&b, layout, style)
	if style.ShowLegend {
		writeLegend(&b, layout, style)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeRings(b *strings.Builder, layout wheel.LayoutResult, style Style) {
	for _, ring := range layout.Rings {
		color := ring.Color
		if color == "" {
			color = style.TickColor
		}
		fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="%s" fill-rule="%s"/>`+"\n",
			pathData(ring.Path), color, f(style.RingOpacity), ring.Path.Fill)
	}
}

func writeWeekBands(b *strings.Builder, axis wheel.Axis, layout wheel.LayoutResult, style Style) {
	for _, week := range layout.WeekTicks {
		if !week.IsOddWeek {
			continue
		}
		band := axis.AnnularSector(week.StartAngle, week.EndAngle,
			layout.OuterRadius, layout.OuterRadius+weekBandThickness)
		fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			pathData(band), style.WeekBandColor, f(style.WeekBandOpacity))

		mid := (week.StartAngle + week.EndAngle) / 2
		pos := axis.PointOf(mid, layout.OuterRadius+weekBandThickness/2)
		fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
			f(pos.X), f(pos.Y), style.LabelColor, f(style.FontSize*0.5), week.WeekNumber)
	}
}

func writeActivities(b *strings.Builder, layout wheel.LayoutResult) {
	for _, arc := range layout.Activities {
		fmt.Fprintf(b, `<path d="%s" fill="%s" data-activity-id="%s"><title>%s</title></path>`+"\n",
			pathData(arc.Path), arc.Color, html.EscapeString(arc.ActivityID), html.EscapeString(arc.Title))
	}
}

func writeDayTicks(b *strings.Builder, axis wheel.Axis, layout wheel.LayoutResult, style Style) {
	for _, tick := range layout.DayTicks {
		length := dayTickLength
		if tick.IsMonthStart {
			length = monthStartTickLength
		}
		from := axis.PointOf(tick.Angle, layout.OuterRadius)
		to := axis.PointOf(tick.Angle, layout.OuterRadius+length)
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			f(from.X), f(from.Y), f(to.X), f(to.Y), style.TickColor)
	}
}

func writeMonthLabels(b *strings.Builder, axis wheel.Axis, layout wheel.LayoutResult, style Style) {
	for _, month := range layout.MonthTicks {
		pos := axis.PointOf(month.Angle, layout.OuterRadius+monthLabelRadius)
		fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" text-anchor="middle" dominant-baseline="central" transform="rotate(%s %s %s)">%s</text>`+"\n",
			f(pos.X), f(pos.Y), style.LabelColor, f(month.Rotation), f(pos.X), f(pos.Y),
			html.EscapeString(month.Label))
	}
}

func writeTodayMarker(b *strings.Builder, layout wheel.LayoutResult, style Style) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="3"/>`+"\n",
		f(layout.Today.From.X), f(layout.Today.From.Y),
		f(layout.Today.To.X), f(layout.Today.To.Y), style.TodayColor)
}

func writeLegend(b *strings.Builder, layout wheel.LayoutResult, style Style) {
	const (
		swatch  = 14.0
		rowStep = 22.0
		margin  = 20.0
	)
	for i, ring := range layout.Rings {
		y := margin + float64(i)*rowStep
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			f(margin), f(y), f(swatch), f(swatch), ring.Color)
		fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-size="%s" dominant-baseline="central">%s</text>`+"\n",
			f(margin+swatch+8), f(y+swatch/2), style.LabelColor, f(style.FontSize*0.75),
			html.EscapeString(ring.Name))
	}
}

// pathData converts a generic path into SVG path syntax. Arc segments
// become circular "A" commands; the sweep flag is 1 for clockwise
// because SVG's y axis grows downward.
func pathData(p wheel.Path) string {
	var b strings.Builder
	for _, seg := range p.Segments {
		switch seg.Op {
		case wheel.OpMove:
			fmt.Fprintf(&b, "M %s %s ", f(seg.To.X), f(seg.To.Y))
		case wheel.OpLine:
			fmt.Fprintf(&b, "L %s %s ", f(seg.To.X), f(seg.To.Y))
		case wheel.OpArc:
			fmt.Fprintf(&b, "A %s %s 0 %d %d %s %s ",
				f(seg.Radius), f(seg.Radius), flag(seg.LargeArc), flag(seg.Clockwise),
				f(seg.To.X), f(seg.To.Y))
		case wheel.OpClose:
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func rectAttr(r wheel.Rect) string {
	return fmt.Sprintf("%s %s %s %s", f(r.X), f(r.Y), f(r.Width), f(r.Height))
}

func flag(v bool) int {
	if v {
		return 1
	}
	return 0
}

// f formats coordinates with two decimals, trimming trailing zeros so
// the output stays diff-friendly.
func f(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
