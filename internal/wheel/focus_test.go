package wheel

import (
	"testing"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRotationFor_NoHighlight(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	activities := []*domain.Activity{
		testActivity("A", "l1", date(2025, 6, 1), date(2025, 6, 5)),
	}

	assert.Zero(t, RotationFor(axis, "", activities, ViewportFull))
	assert.Zero(t, RotationFor(axis, "missing", activities, ViewportFull), "unknown id stays centered")
	assert.Zero(t, RotationFor(axis, "A", nil, ViewportCompact))
}

func TestRotationFor_AlreadyVisible(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	// Midpoint a few days after today: well within both thresholds.
	activities := []*domain.Activity{
		testActivity("near", "l1", date(2025, 6, 20), date(2025, 6, 24)),
	}

	assert.Zero(t, RotationFor(axis, "near", activities, ViewportFull))
	assert.Zero(t, RotationFor(axis, "near", activities, ViewportCompact))
}

func TestRotationFor_RotatesOutOfRangeActivity(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)

	// Midpoint at exactly +150°: 152 days and 2 hours... pick dates so
	// the midpoint lands past both thresholds and verify the formula.
	activities := []*domain.Activity{
		testActivity("far", "l1", date(2025, 11, 10), date(2025, 11, 20)),
	}

	mid := (axis.AngleOf(date(2025, 11, 10)) + axis.AngleOf(date(2025, 11, 20))) / 2

	assert.InDelta(t, -mid*0.85, RotationFor(axis, "far", activities, ViewportFull), 1e-9)
	assert.InDelta(t, -mid, RotationFor(axis, "far", activities, ViewportCompact), 1e-9)
}

func TestRotationFor_ViewportThresholdsDiffer(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)

	// ~80 days ≈ 79° midpoint: inside the 90° full threshold, outside
	// the 70° compact threshold.
	activities := []*domain.Activity{
		testActivity("edge", "l1", date(2025, 9, 3), date(2025, 9, 3)),
	}
	mid := axis.AngleOf(date(2025, 9, 3))

	assert.Zero(t, RotationFor(axis, "edge", activities, ViewportFull))
	assert.InDelta(t, -mid, RotationFor(axis, "edge", activities, ViewportCompact), 1e-9)
}

func TestRotationFor_NegativeMidpoint(t *testing.T) {
	axis := NewAxis(date(2025, 6, 15), WheelCenter)
	activities := []*domain.Activity{
		testActivity("past", "l1", date(2025, 1, 10), date(2025, 1, 20)),
	}

	mid := (axis.AngleOf(date(2025, 1, 10)) + axis.AngleOf(date(2025, 1, 20))) / 2
	rotation := RotationFor(axis, "past", activities, ViewportFull)

	assert.Positive(t, rotation, "rotating a past activity into view spins the wheel forward")
	assert.InDelta(t, -mid*0.85, rotation, 1e-9)
}
