package wheel

import "github.com/arshjul/yearwheel/internal/domain"

// ViewportClass is a coarse classification of available display size.
type ViewportClass string

const (
	ViewportFull    ViewportClass = "full"
	ViewportCompact ViewportClass = "compact"
)

// Focus-rotation thresholds per viewport class. Compact viewports have
// a narrower visible window and recenter fully; full viewports rotate
// only partially so surrounding context stays in place.
const (
	visibleRangeCompact   = 70.0
	visibleRangeFull      = 90.0
	rotationFactorCompact = 1.0
	rotationFactorFull    = 0.85
)

// RotationFor computes the whole-diagram rotation offset that brings
// the highlighted activity into the visible angular window. It returns
// 0 when no activity is highlighted, when the id is absent from the
// set, or when the activity's midpoint is already visible.
func RotationFor(axis Axis, highlightedID string, activities []*domain.Activity, vp ViewportClass) float64 {
	if highlightedID == "" {
		return 0
	}

	var target *domain.Activity
	for _, act := range activities {
		if act.ID == highlightedID {
			target = act
			break
		}
	}
	if target == nil {
		return 0
	}

	visibleRange := visibleRangeFull
	factor := rotationFactorFull
	if vp == ViewportCompact {
		visibleRange = visibleRangeCompact
		factor = rotationFactorCompact
	}

	mid := (axis.AngleOf(target.StartDate) + axis.AngleOf(target.EndDate)) / 2
	if mid >= -visibleRange && mid <= visibleRange {
		return 0
	}
	return -mid * factor
}
