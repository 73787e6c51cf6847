package wheel

import (
	"testing"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(id, layerID string, start, end time.Time) *domain.Activity {
	return &domain.Activity{ID: id, Title: id, LayerID: layerID, StartDate: start, EndDate: end}
}

func testLayer(id string, ringIndex int) *domain.Layer {
	return &domain.Layer{ID: id, Name: id, RingIndex: ringIndex, IsVisible: true}
}

func TestAllocate_OverlappingActivitiesSplitAcrossSubLanes(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("l1", 0)}
	activities := []*domain.Activity{
		testActivity("A", "l1", date(2025, 6, 1), date(2025, 6, 5)),
		testActivity("B", "l1", date(2025, 6, 3), date(2025, 6, 10)),
		testActivity("C", "l1", date(2025, 7, 1), date(2025, 7, 1)),
	}

	got := axis.Allocate(activities, layers, 120, 400, 3, window)

	require.Len(t, got, 3)
	assert.Equal(t, 0, got["A"].SubLane, "earliest start wins lane 0")
	assert.Equal(t, 1, got["B"].SubLane, "overlapping follower is pushed outward")
	assert.Equal(t, 0, got["C"].SubLane, "non-overlapping activity reuses lane 0")
}

func TestAllocate_ClampsToLastLaneWhenFull(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("l1", 0)}
	// Four mutually overlapping activities but only three lanes.
	activities := []*domain.Activity{
		testActivity("A", "l1", date(2025, 6, 1), date(2025, 6, 30)),
		testActivity("B", "l1", date(2025, 6, 2), date(2025, 6, 30)),
		testActivity("C", "l1", date(2025, 6, 3), date(2025, 6, 30)),
		testActivity("D", "l1", date(2025, 6, 4), date(2025, 6, 30)),
	}

	got := axis.Allocate(activities, layers, 120, 400, 3, window)

	require.Len(t, got, 4)
	assert.Equal(t, 2, got["D"].SubLane, "overflow clamps to the outermost lane")
}

func TestAllocate_SubLaneNoOverlapInvariant(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("l1", 0), testLayer("l2", 1)}
	activities := []*domain.Activity{
		testActivity("A", "l1", date(2025, 2, 1), date(2025, 2, 20)),
		testActivity("B", "l1", date(2025, 2, 10), date(2025, 3, 5)),
		testActivity("C", "l1", date(2025, 2, 25), date(2025, 3, 1)),
		testActivity("D", "l1", date(2025, 4, 1), date(2025, 4, 2)),
		testActivity("E", "l2", date(2025, 2, 1), date(2025, 2, 20)),
	}

	got := axis.Allocate(activities, layers, 120, 400, 3, window)

	byID := map[string]*domain.Activity{}
	for _, act := range activities {
		byID[act.ID] = act
	}

	// Activities sharing a (band, lane) pair must have disjoint date
	// ranges.
	for id1, a1 := range got {
		for id2, a2 := range got {
			if id1 >= id2 || a1.BandIndex != a2.BandIndex || a1.SubLane != a2.SubLane {
				continue
			}
			r1, r2 := byID[id1], byID[id2]
			disjoint := r1.EndDate.Before(r2.StartDate) || r2.EndDate.Before(r1.StartDate)
			assert.True(t, disjoint, "%s and %s share band %d lane %d with overlapping dates", id1, id2, a1.BandIndex, a1.SubLane)
		}
	}
}

func TestAllocate_BandGeometry(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("inner", 0), testLayer("outer", 5)}
	activities := []*domain.Activity{
		testActivity("A", "inner", date(2025, 6, 1), date(2025, 6, 10)),
		testActivity("B", "outer", date(2025, 6, 1), date(2025, 6, 10)),
	}

	got := axis.Allocate(activities, layers, 100, 400, 3, window)

	// Two layers split 300 units into 150-unit bands with 50-unit
	// sub-lanes; the gap comes off the outer edge only.
	a := got["A"]
	assert.Equal(t, 0, a.BandIndex)
	assert.InDelta(t, 100, a.InnerRadius, 1e-9)
	assert.InDelta(t, 148, a.OuterRadius, 1e-9)

	b := got["B"]
	assert.Equal(t, 1, b.BandIndex, "ring index is a sort key, not an array index")
	assert.InDelta(t, 250, b.InnerRadius, 1e-9)
	assert.InDelta(t, 298, b.OuterRadius, 1e-9)
}

func TestAllocate_MinimumArcWidth(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("l1", 0)}
	activities := []*domain.Activity{
		testActivity("single-day", "l1", date(2025, 7, 1), date(2025, 7, 1)),
		testActivity("inverted", "l1", date(2025, 8, 10), date(2025, 8, 1)),
		testActivity("long", "l1", date(2025, 9, 1), date(2025, 10, 1)),
	}

	got := axis.Allocate(activities, layers, 120, 400, 3, window)

	for id, asg := range got {
		assert.GreaterOrEqual(t, asg.EndAngle-asg.StartAngle, MinArcDegrees, "%s must meet the minimum arc width", id)
	}

	// A zero/inverted span expands symmetrically around its start date.
	single := got["single-day"]
	center := axis.AngleOf(date(2025, 7, 1))
	assert.InDelta(t, center, (single.StartAngle+single.EndAngle)/2, 1e-9)

	inverted := got["inverted"]
	assert.InDelta(t, axis.AngleOf(date(2025, 8, 10)), (inverted.StartAngle+inverted.EndAngle)/2, 1e-9)
}

func TestAllocate_MinimumArcWidthEveryDay(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)
	layers := []*domain.Layer{testLayer("l1", 0)}

	// Single-day activities across the whole window hit mid angles at
	// every representable fraction the axis produces; the arc width
	// must never round below the minimum.
	for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
		got := axis.Allocate(
			[]*domain.Activity{testActivity("one", "l1", d, d)},
			layers, 120, 400, 3, window,
		)
		asg, ok := got["one"]
		require.True(t, ok, "day %s", d.Format("2006-01-02"))
		assert.GreaterOrEqual(t, asg.EndAngle-asg.StartAngle, MinArcDegrees,
			"day %s", d.Format("2006-01-02"))
	}
}

func TestAllocate_ExcludesActivitiesOutsideWindow(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	layers := []*domain.Layer{testLayer("l1", 0)}
	// Window(182) around 2025-06-15 spans 2024-12-15 .. 2025-12-14
	// inclusive.
	activities := []*domain.Activity{
		testActivity("past", "l1", date(2024, 12, 1), date(2024, 12, 3)),
		testActivity("future", "l1", date(2026, 1, 10), date(2026, 1, 12)),
		testActivity("straddling", "l1", date(2024, 12, 10), date(2024, 12, 20)),
		testActivity("edge", "l1", date(2024, 12, 13), date(2024, 12, 15)),
		testActivity("justOut", "l1", date(2024, 12, 12), date(2024, 12, 14)),
		testActivity("inside", "l1", date(2025, 6, 1), date(2025, 6, 5)),
	}

	got := axis.Allocate(activities, layers, 120, 400, 3, window)

	assert.NotContains(t, got, "past")
	assert.NotContains(t, got, "future")
	assert.Contains(t, got, "straddling", "partial overlap stays in")
	assert.Contains(t, got, "edge", "window is inclusive at its start")
	assert.NotContains(t, got, "justOut", "ends the day before the window opens")
	assert.Contains(t, got, "inside")
}

func TestAllocate_EmptyInputs(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	assert.Empty(t, axis.Allocate(nil, nil, 120, 400, 3, window))
	assert.Empty(t, axis.Allocate(nil, []*domain.Layer{testLayer("l1", 0)}, 120, 400, 3, window))

	orphan := []*domain.Activity{testActivity("A", "missing-layer", date(2025, 6, 1), date(2025, 6, 2))}
	assert.Empty(t, axis.Allocate(orphan, []*domain.Layer{testLayer("l1", 0)}, 120, 400, 3, window))
}

func TestAllocate_PanicsOnPreconditionViolation(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	window := axis.Window(182)

	assert.Panics(t, func() { axis.Allocate(nil, nil, 120, 400, 0, window) })
	assert.Panics(t, func() { axis.Allocate(nil, nil, -1, 400, 3, window) })
}
