package wheel

import (
	"fmt"
	"time"
)

// DayTick marks a single day on the axis. Only month starts, today and
// multiple-of-5 days of month are emitted to limit clutter while
// keeping the guaranteed anchors visible.
type DayTick struct {
	Date         time.Time `json:"date"`
	Angle        float64   `json:"angle"`
	IsMonthStart bool      `json:"isMonthStart"`
	IsToday      bool      `json:"isToday"`
}

// MonthTick labels a calendar month, anchored mid-month so the label
// stays unambiguous at window edges.
type MonthTick struct {
	Angle float64 `json:"angle"`
	Label string  `json:"label"`

	// Rotation is the label's upright-corrected text rotation: the raw
	// angle, plus 180° when it would otherwise read upside-down.
	Rotation float64 `json:"rotation"`
}

// WeekTick is one ISO week band.
type WeekTick struct {
	WeekNumber int     `json:"weekNumber"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	IsOddWeek  bool    `json:"isOddWeek"`
}

// DefaultMonthNames is the English month label set used when the
// caller does not inject a localized array.
var DefaultMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayTicks emits the sampled day markers across the window.
func (a Axis) DayTicks(w Window) []DayTick {
	var ticks []DayTick
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		isMonthStart := d.Day() == 1
		isToday := d.Equal(a.Today)
		if !isMonthStart && !isToday && d.Day()%5 != 0 {
			continue
		}
		ticks = append(ticks, DayTick{
			Date:         d,
			Angle:        a.AngleOf(d),
			IsMonthStart: isMonthStart,
			IsToday:      isToday,
		})
	}
	return ticks
}

// MonthTicks emits one label per calendar month overlapping the
// window. Months outside today's year carry a 2-digit year suffix.
func (a Axis) MonthTicks(w Window, monthNames [12]string) []MonthTick {
	var ticks []MonthTick
	currentYear := a.Today.Year()

	month := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(w.End) {
		// Anchor at day 15 to avoid half-month ambiguity at the edges.
		anchor := month.AddDate(0, 0, 14)

		label := monthNames[month.Month()-1]
		if month.Year() != currentYear {
			label = fmt.Sprintf("%s %02d", label, month.Year()%100)
		}

		angle := a.AngleOf(anchor)
		rotation := angle
		if n := normalizeAngle(angle); n > 90 && n < 270 {
			rotation += 180
		}

		ticks = append(ticks, MonthTick{Angle: angle, Label: label, Rotation: rotation})
		month = month.AddDate(0, 1, 0)
	}
	return ticks
}

// WeekTicks emits one band per ISO week, starting from the Monday on
// or before the window start. Week numbers follow the ISO year-anchor
// definition (weeks start Monday, numbered via their Thursday).
func (a Axis) WeekTicks(w Window) []WeekTick {
	var ticks []WeekTick
	for monday := mondayOnOrBefore(w.Start); !monday.After(w.End); monday = monday.AddDate(0, 0, 7) {
		_, week := monday.ISOWeek()
		ticks = append(ticks, WeekTick{
			WeekNumber: week,
			StartAngle: a.AngleOf(monday),
			EndAngle:   a.AngleOf(monday.AddDate(0, 0, 7)),
			IsOddWeek:  week%2 == 1,
		})
	}
	return ticks
}

func mondayOnOrBefore(d time.Time) time.Time {
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
