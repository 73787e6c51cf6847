package wheel

import (
	"sort"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// DefaultWindowHalfWidthDays extends the visible window half a 365-day
// circle to either side of today.
const DefaultWindowHalfWidthDays = 182

// LayoutInput is the immutable snapshot one layout pass consumes.
// Today is injected rather than read from the system clock so that the
// engine stays deterministic and testable.
type LayoutInput struct {
	Today      time.Time
	Activities []*domain.Activity
	Layers     []*domain.Layer
	Filters    domain.ScopeFilters

	// MonthNames is the injected, pre-localized label set. The zero
	// value falls back to DefaultMonthNames.
	MonthNames [12]string

	// WindowHalfWidthDays and MaxSubLanes default to
	// DefaultWindowHalfWidthDays and DefaultMaxSubLanes when zero.
	WindowHalfWidthDays int
	MaxSubLanes         int
}

// RingBackground is the full-annulus color band behind one layer.
type RingBackground struct {
	LayerID     string  `json:"layerId"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`
	Path        Path    `json:"path"`
}

// ActivityArc is one activity's drawable annular sector plus the
// display hints the engine passes through untouched.
type ActivityArc struct {
	ActivityID     string           `json:"activityId"`
	Title          string           `json:"title"`
	LayerID        string           `json:"layerId"`
	TypeKey        string           `json:"typeKey"`
	Color          string           `json:"color"`
	HighlightColor string           `json:"highlightColor"`
	Assignment     LayoutAssignment `json:"assignment"`
	Path           Path             `json:"path"`
}

// TodayMarker is the radial line drawn at 0°.
type TodayMarker struct {
	Angle float64 `json:"angle"`
	From  Point   `json:"from"`
	To    Point   `json:"to"`
}

// LayoutResult carries every geometric artifact needed to render one
// frame of the wheel.
type LayoutResult struct {
	Center      Point            `json:"center"`
	InnerRadius float64          `json:"innerRadius"`
	OuterRadius float64          `json:"outerRadius"`
	Rings       []RingBackground `json:"rings"`
	DayTicks    []DayTick        `json:"dayTicks"`
	MonthTicks  []MonthTick      `json:"monthTicks"`
	WeekTicks   []WeekTick       `json:"weekTicks"`
	Activities  []ActivityArc    `json:"activities"`
	Today       TodayMarker      `json:"today"`
}

// Layout is the single pure function producing a renderable frame from
// an activity/layer snapshot. Malformed but structurally valid input
// (zero layers, zero activities, out-of-window or inverted date
// ranges) degrades visually instead of failing.
func Layout(in LayoutInput) LayoutResult {
	axis := NewAxis(in.Today, WheelCenter)

	halfWidth := in.WindowHalfWidthDays
	if halfWidth == 0 {
		halfWidth = DefaultWindowHalfWidthDays
	}
	maxSubLanes := in.MaxSubLanes
	if maxSubLanes == 0 {
		maxSubLanes = DefaultMaxSubLanes
	}
	monthNames := in.MonthNames
	if monthNames == ([12]string{}) {
		monthNames = DefaultMonthNames
	}

	window := axis.Window(halfWidth)

	// Filter to the visible layers, keeping their activities.
	layers := make([]*domain.Layer, 0, len(in.Layers))
	for _, l := range in.Layers {
		if in.Filters.Includes(l) {
			layers = append(layers, l)
		}
	}
	sorted := domain.SortLayers(layers)

	included := make(map[string]bool, len(sorted))
	for _, l := range sorted {
		included[l.ID] = true
	}
	activities := make([]*domain.Activity, 0, len(in.Activities))
	for _, act := range in.Activities {
		if included[act.LayerID] {
			activities = append(activities, act)
		}
	}

	assignments := axis.Allocate(activities, sorted, InnerRadius, OuterRadius, maxSubLanes, window)

	// Ring backgrounds, inner to outer.
	layerCount := len(sorted)
	if layerCount < 1 {
		layerCount = 1
	}
	bandThickness := (OuterRadius - InnerRadius) / float64(layerCount)

	rings := make([]RingBackground, 0, len(sorted))
	for i, l := range sorted {
		inner := InnerRadius + float64(i)*bandThickness
		outer := inner + bandThickness
		rings = append(rings, RingBackground{
			LayerID:     l.ID,
			Name:        l.Name,
			Color:       l.Color,
			InnerRadius: inner,
			OuterRadius: outer,
			Path:        axis.FullAnnulus(inner, outer),
		})
	}

	byID := make(map[string]*domain.Activity, len(activities))
	for _, act := range activities {
		byID[act.ID] = act
	}

	arcs := make([]ActivityArc, 0, len(assignments))
	for id, asg := range assignments {
		act := byID[id]
		arcs = append(arcs, ActivityArc{
			ActivityID:     act.ID,
			Title:          act.Title,
			LayerID:        act.LayerID,
			TypeKey:        act.TypeKey,
			Color:          act.Color,
			HighlightColor: act.HighlightColor,
			Assignment:     asg,
			Path:           axis.AnnularSector(asg.StartAngle, asg.EndAngle, asg.InnerRadius, asg.OuterRadius),
		})
	}

	// Map iteration order is random; sort so identical inputs yield
	// byte-identical output.
	sort.Slice(arcs, func(i, j int) bool {
		a, b := arcs[i].Assignment, arcs[j].Assignment
		if a.BandIndex != b.BandIndex {
			return a.BandIndex < b.BandIndex
		}
		if a.SubLane != b.SubLane {
			return a.SubLane < b.SubLane
		}
		if a.StartAngle != b.StartAngle {
			return a.StartAngle < b.StartAngle
		}
		return arcs[i].ActivityID < arcs[j].ActivityID
	})

	return LayoutResult{
		Center:      axis.Center,
		InnerRadius: InnerRadius,
		OuterRadius: OuterRadius,
		Rings:       rings,
		DayTicks:    axis.DayTicks(window),
		MonthTicks:  axis.MonthTicks(window, monthNames),
		WeekTicks:   axis.WeekTicks(window),
		Activities:  arcs,
		Today: TodayMarker{
			Angle: 0,
			From:  axis.PointOf(0, InnerRadius),
			To:    axis.PointOf(0, OuterRadius+labelMargin/2),
		},
	}
}
