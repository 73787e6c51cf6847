package wheel

import (
	"testing"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_AssemblesFrame(t *testing.T) {
	layers := []*domain.Layer{
		testLayer("org", 0),
		testLayer("team", 1),
	}
	activities := []*domain.Activity{
		testActivity("A", "org", date(2025, 6, 1), date(2025, 6, 5)),
		testActivity("B", "org", date(2025, 6, 3), date(2025, 6, 10)),
		testActivity("C", "org", date(2025, 7, 1), date(2025, 7, 1)),
		testActivity("D", "team", date(2025, 8, 1), date(2025, 8, 14)),
	}

	result := Layout(LayoutInput{
		Today:      date(2025, 6, 15),
		Activities: activities,
		Layers:     layers,
	})

	require.Len(t, result.Rings, 2)
	assert.Equal(t, "org", result.Rings[0].LayerID)
	assert.InDelta(t, InnerRadius, result.Rings[0].InnerRadius, 1e-9)
	assert.InDelta(t, OuterRadius, result.Rings[1].OuterRadius, 1e-9)

	require.Len(t, result.Activities, 4)

	byID := map[string]ActivityArc{}
	for _, arc := range result.Activities {
		byID[arc.ActivityID] = arc
	}
	assert.Equal(t, 0, byID["A"].Assignment.SubLane)
	assert.Equal(t, 1, byID["B"].Assignment.SubLane)
	assert.Equal(t, 0, byID["C"].Assignment.SubLane)
	assert.Equal(t, 1, byID["D"].Assignment.BandIndex)

	assert.NotEmpty(t, result.DayTicks)
	assert.Len(t, result.MonthTicks, 13)
	assert.NotEmpty(t, result.WeekTicks)
	assert.Zero(t, result.Today.Angle)
}

func TestLayout_ScopeFiltersExcludeLayers(t *testing.T) {
	layers := []*domain.Layer{testLayer("shown", 0), testLayer("hidden", 1)}
	activities := []*domain.Activity{
		testActivity("A", "shown", date(2025, 6, 1), date(2025, 6, 5)),
		testActivity("B", "hidden", date(2025, 6, 1), date(2025, 6, 5)),
	}

	result := Layout(LayoutInput{
		Today:      date(2025, 6, 15),
		Activities: activities,
		Layers:     layers,
		Filters:    domain.ScopeFilters{"hidden": false},
	})

	require.Len(t, result.Rings, 1)
	require.Len(t, result.Activities, 1)
	assert.Equal(t, "A", result.Activities[0].ActivityID)

	// With one layer left the whole radial space belongs to it.
	assert.InDelta(t, OuterRadius, result.Rings[0].OuterRadius, 1e-9)
}

func TestLayout_InvisibleLayerDefault(t *testing.T) {
	hidden := testLayer("l1", 0)
	hidden.IsVisible = false

	result := Layout(LayoutInput{
		Today:      date(2025, 6, 15),
		Layers:     []*domain.Layer{hidden},
		Activities: []*domain.Activity{testActivity("A", "l1", date(2025, 6, 1), date(2025, 6, 5))},
	})

	assert.Empty(t, result.Rings)
	assert.Empty(t, result.Activities)
}

func TestLayout_ExcludesOutOfWindowActivity(t *testing.T) {
	layers := []*domain.Layer{testLayer("l1", 0)}
	activities := []*domain.Activity{
		// Ends before the window opens on 2024-12-15.
		testActivity("old", "l1", date(2024, 12, 1), date(2024, 12, 3)),
		testActivity("current", "l1", date(2025, 6, 1), date(2025, 6, 5)),
	}

	result := Layout(LayoutInput{
		Today:               date(2025, 6, 15),
		Activities:          activities,
		Layers:              layers,
		WindowHalfWidthDays: 182,
	})

	require.Len(t, result.Activities, 1)
	assert.Equal(t, "current", result.Activities[0].ActivityID)
}

func TestLayout_EmptySnapshot(t *testing.T) {
	result := Layout(LayoutInput{Today: date(2025, 6, 15)})

	assert.Empty(t, result.Rings)
	assert.Empty(t, result.Activities)
	assert.NotEmpty(t, result.MonthTicks, "ticks render even on an empty wheel")
}

func TestLayout_OutputOrderIsStable(t *testing.T) {
	layers := []*domain.Layer{testLayer("l1", 0)}
	activities := []*domain.Activity{
		testActivity("z", "l1", date(2025, 6, 1), date(2025, 6, 10)),
		testActivity("a", "l1", date(2025, 6, 1), date(2025, 6, 10)),
		testActivity("m", "l1", date(2025, 7, 1), date(2025, 7, 10)),
	}

	result := Layout(LayoutInput{
		Today:      date(2025, 6, 15),
		Activities: activities,
		Layers:     layers,
	})

	require.Len(t, result.Activities, 3)
	// Sorted by lane, then start angle, then id: z keeps lane 0 by
	// input order, a is pushed to lane 1.
	assert.Equal(t, "z", result.Activities[0].ActivityID)
	assert.Equal(t, "m", result.Activities[1].ActivityID)
	assert.Equal(t, "a", result.Activities[2].ActivityID)
}
