package wheel

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSnapshot(rng *rand.Rand) ([]*domain.Activity, []*domain.Layer) {
	numLayers := rng.Intn(5) + 1
	layers := make([]*domain.Layer, numLayers)
	for i := range layers {
		layers[i] = &domain.Layer{
			ID:        fmt.Sprintf("l-%d", i),
			Name:      fmt.Sprintf("Layer %d", i),
			RingIndex: rng.Intn(8), // gaps and duplicates allowed
			IsVisible: true,
		}
	}

	numActivities := rng.Intn(40)
	activities := make([]*domain.Activity, numActivities)
	base := date(2025, 1, 1)
	for i := range activities {
		start := base.AddDate(0, 0, rng.Intn(500)-100)
		end := start.AddDate(0, 0, rng.Intn(30))
		activities[i] = &domain.Activity{
			ID:        fmt.Sprintf("a-%d", i),
			Title:     fmt.Sprintf("Activity %d", i),
			LayerID:   layers[rng.Intn(numLayers)].ID,
			StartDate: start,
			EndDate:   end,
		}
	}
	return activities, layers
}

// TestLayout_Deterministic property-tests the engine's required
// determinism: identical snapshots yield byte-identical output.
func TestLayout_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		activities, layers := randomSnapshot(rng)
		in := LayoutInput{
			Today:      date(2025, 6, 15),
			Activities: activities,
			Layers:     layers,
		}

		first, err := json.Marshal(Layout(in))
		require.NoError(t, err)
		second, err := json.Marshal(Layout(in))
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second), "trial %d: repeated layout passes must match byte for byte", trial)
	}
}

// TestLayout_Invariants property-tests the allocation invariants over
// random snapshots: minimum arc width, lane bounds and radial
// containment within the owning band.
func TestLayout_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		activities, layers := randomSnapshot(rng)
		result := Layout(LayoutInput{
			Today:      date(2025, 6, 15),
			Activities: activities,
			Layers:     layers,
		})

		bandThickness := (OuterRadius - InnerRadius) / float64(max(len(layers), 1))

		for _, arc := range result.Activities {
			asg := arc.Assignment

			assert.GreaterOrEqual(t, asg.EndAngle-asg.StartAngle, MinArcDegrees,
				"trial %d %s: arc narrower than the minimum", trial, arc.ActivityID)

			assert.GreaterOrEqual(t, asg.SubLane, 0, "trial %d %s", trial, arc.ActivityID)
			assert.Less(t, asg.SubLane, DefaultMaxSubLanes, "trial %d %s", trial, arc.ActivityID)

			bandStart := InnerRadius + float64(asg.BandIndex)*bandThickness
			assert.GreaterOrEqual(t, asg.InnerRadius, bandStart-1e-9,
				"trial %d %s: arc leaks below its band", trial, arc.ActivityID)
			assert.LessOrEqual(t, asg.OuterRadius, bandStart+bandThickness+1e-9,
				"trial %d %s: arc leaks above its band", trial, arc.ActivityID)
		}
	}
}

// TestLayout_TimeAdvanceDoesNotDriftAnchor re-anchors the axis at a new
// today and checks the previous anchor date moved by exactly the day
// step, the self-correction behavior of the fixed 365-day circle.
func TestLayout_TimeAdvanceDoesNotDriftAnchor(t *testing.T) {
	today := date(2025, 6, 15)
	tomorrow := today.AddDate(0, 0, 1)

	assert.Zero(t, NewAxis(tomorrow, WheelCenter).AngleOf(tomorrow))
	assert.InDelta(t, -DegreesPerDay, NewAxis(tomorrow, WheelCenter).AngleOf(today), 1e-9)
}
