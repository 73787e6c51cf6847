package wheel

import (
	"math"
	"sort"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// MinArcDegrees is the smallest angular span an activity may occupy.
// Shorter arcs are expanded symmetrically around their midpoint so
// zero-length activities stay visible and clickable.
const MinArcDegrees = 3.0

// DefaultMaxSubLanes is the number of concentric sub-lanes available
// inside each layer band for separating overlapping activities.
const DefaultMaxSubLanes = 3

// subLaneGap is the visual separator subtracted from the outer edge of
// every sub-lane.
const subLaneGap = 2.0

// LayoutAssignment places one activity on the wheel: the band of its
// layer, the sub-lane within the band, the angular span and the radial
// extent. Assignments are recomputed from scratch on every pass.
type LayoutAssignment struct {
	ActivityID  string  `json:"activityId"`
	BandIndex   int     `json:"bandIndex"`
	SubLane     int     `json:"subLane"`
	StartAngle  float64 `json:"startAngle"`
	EndAngle    float64 `json:"endAngle"`
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`
}

// Allocate partitions the radial space between innerRadius and
// outerRadius into one band per layer (ordered by ring index) and
// resolves temporal overlap within each band into at most maxSubLanes
// concentric sub-lanes. Activities entirely outside the window are
// excluded. When every lane is occupied by an overlapping activity the
// activity is clamped to the last lane; visual overlap is an accepted
// degradation, not an error.
//
// maxSubLanes must be positive and the radii non-negative; violating
// either is a caller bug and panics.
func (a Axis) Allocate(
	activities []*domain.Activity,
	layers []*domain.Layer,
	innerRadius, outerRadius float64,
	maxSubLanes int,
	window Window,
) map[string]LayoutAssignment {
	if maxSubLanes <= 0 {
		panic("wheel: maxSubLanes must be positive")
	}
	if innerRadius < 0 || outerRadius < 0 {
		panic("wheel: negative radius")
	}

	sorted := domain.SortLayers(layers)

	bandIndexByLayer := make(map[string]int, len(sorted))
	for i, l := range sorted {
		bandIndexByLayer[l.ID] = i
	}

	// Clamp the divisor so an empty layer set yields an empty result
	// instead of dividing by zero.
	layerCount := len(sorted)
	if layerCount < 1 {
		layerCount = 1
	}
	bandThickness := (outerRadius - innerRadius) / float64(layerCount)
	laneThickness := bandThickness / float64(maxSubLanes)

	// Bucket activities per band, keeping input order for stable ties.
	perBand := make([][]*domain.Activity, len(sorted))
	for _, act := range activities {
		band, ok := bandIndexByLayer[act.LayerID]
		if !ok {
			continue
		}
		if !window.Overlaps(act.StartDate, act.EndDate) {
			continue
		}
		perBand[band] = append(perBand[band], act)
	}

	assignments := make(map[string]LayoutAssignment, len(activities))

	for band, bucket := range perBand {
		sort.SliceStable(bucket, func(i, j int) bool {
			return domain.DateOnly(bucket[i].StartDate).Before(domain.DateOnly(bucket[j].StartDate))
		})

		bandStart := innerRadius + float64(band)*bandThickness
		lanes := make([][]dateRange, maxSubLanes)

		for _, act := range bucket {
			span := activitySpan(act)
			lane := maxSubLanes - 1
			for candidate := 0; candidate < maxSubLanes; candidate++ {
				if !overlapsAny(lanes[candidate], span) {
					lane = candidate
					break
				}
			}
			lanes[lane] = append(lanes[lane], span)

			startAngle, endAngle := a.angularSpan(act)

			assignments[act.ID] = LayoutAssignment{
				ActivityID:  act.ID,
				BandIndex:   band,
				SubLane:     lane,
				StartAngle:  startAngle,
				EndAngle:    endAngle,
				InnerRadius: bandStart + float64(lane)*laneThickness,
				OuterRadius: bandStart + float64(lane+1)*laneThickness - subLaneGap,
			}
		}
	}

	return assignments
}

// angularSpan converts an activity's date range to angles, treating an
// inverted range as zero width at the start date and enforcing the
// minimum arc width.
func (a Axis) angularSpan(act *domain.Activity) (float64, float64) {
	startAngle := a.AngleOf(act.StartDate)
	endAngle := a.AngleOf(act.EndDate)
	if endAngle < startAngle {
		endAngle = startAngle
	}
	if endAngle-startAngle < MinArcDegrees {
		mid := (startAngle + endAngle) / 2
		startAngle = mid - MinArcDegrees/2
		endAngle = startAngle + MinArcDegrees
		// startAngle+MinArcDegrees can still round a hair short when
		// the sum lands in a coarser float binade.
		for endAngle-startAngle < MinArcDegrees {
			endAngle = math.Nextafter(endAngle, math.Inf(1))
		}
	}
	return startAngle, endAngle
}

// dateRange is an inclusive occupied interval within a sub-lane.
type dateRange struct {
	start time.Time
	end   time.Time
}

func activitySpan(act *domain.Activity) dateRange {
	start := domain.DateOnly(act.StartDate)
	end := domain.DateOnly(act.EndDate)
	if end.Before(start) {
		end = start
	}
	return dateRange{start: start, end: end}
}

func overlapsAny(occupied []dateRange, r dateRange) bool {
	for _, o := range occupied {
		if !r.start.After(o.end) && !r.end.Before(o.start) {
			return true
		}
	}
	return false
}
