// Package wheel lays out dated, layered activities on a circular
// one-year timeline centered on "today". It is pure geometry: no
// clock reads, no I/O, and identical inputs always produce identical
// output.
package wheel

import (
	"math"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// FullViewDays is the fixed length of the circular axis. The circle is
// exactly 365 days regardless of leap years; the resulting drift is
// bounded and self-corrects because the anchor is always today.
const FullViewDays = 365

// DegreesPerDay is the angular width of one day on the axis.
const DegreesPerDay = 360.0 / float64(FullViewDays)

// Point is a Cartesian coordinate in wheel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Axis maps calendar dates to angles on the wheel. Today is captured
// once when the axis is built so every angle within a layout pass is
// mutually consistent.
type Axis struct {
	Today  time.Time
	Center Point
}

// NewAxis builds an axis anchored at the given date. The time-of-day
// component of today is discarded.
func NewAxis(today time.Time, center Point) Axis {
	return Axis{Today: domain.DateOnly(today), Center: center}
}

// AngleOf converts a date to degrees on the axis. Today is 0°, dates
// after today are positive (clockwise), dates before are negative.
func (a Axis) AngleOf(d time.Time) float64 {
	return float64(daysBetween(a.Today, d)) * DegreesPerDay
}

// PointOf converts polar wheel coordinates to Cartesian. 0° points up
// (12 o'clock), achieved by rotating -90° before the polar conversion.
func (a Axis) PointOf(angle, radius float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: a.Center.X + radius*math.Cos(rad),
		Y: a.Center.Y + radius*math.Sin(rad),
	}
}

// Window is the visible date range of a layout pass, inclusive on both
// ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Window returns the date range covered by the wheel, extending
// halfWidthDays to either side of today.
func (a Axis) Window(halfWidthDays int) Window {
	return Window{
		Start: a.Today.AddDate(0, 0, -halfWidthDays),
		End:   a.Today.AddDate(0, 0, halfWidthDays),
	}
}

// Overlaps reports whether the inclusive date range [start, end]
// intersects the window.
func (w Window) Overlaps(start, end time.Time) bool {
	return !domain.DateOnly(end).Before(w.Start) && !domain.DateOnly(start).After(w.End)
}

// daysBetween counts whole calendar days from a to b; negative when b
// precedes a.
func daysBetween(a, b time.Time) int {
	return int(domain.DateOnly(b).Sub(domain.DateOnly(a)).Hours() / 24)
}
