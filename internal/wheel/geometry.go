package wheel

import "math"

// SegmentOp identifies the drawing operation of a path segment.
type SegmentOp string

const (
	OpMove  SegmentOp = "move"
	OpLine  SegmentOp = "line"
	OpArc   SegmentOp = "arc"
	OpClose SegmentOp = "close"
)

// FillRule selects how self-intersecting paths are filled.
type FillRule string

const (
	FillNonZero FillRule = "nonzero"
	FillEvenOdd FillRule = "evenodd"
)

// Segment is one step of a path boundary. Arc segments are circular,
// with the radius and sweep direction carried alongside the endpoint.
type Segment struct {
	Op SegmentOp `json:"op"`
	To Point     `json:"to"`

	// Arc parameters, meaningful only when Op == OpArc.
	Radius    float64 `json:"radius,omitempty"`
	LargeArc  bool    `json:"largeArc,omitempty"`
	Clockwise bool    `json:"clockwise,omitempty"`
}

// Path is a closed boundary expressed as generic segments, independent
// of any rendering technology.
type Path struct {
	Segments []Segment `json:"segments"`
	Fill     FillRule  `json:"fill"`
}

// AnnularSector builds the closed boundary of a ring slice: outer arc
// clockwise from startAngle to endAngle, a radial line inward, the
// inner arc back counter-clockwise, and a closing radial line. The
// large-arc flag is raised only when the swept angle exceeds 180°.
func (a Axis) AnnularSector(startAngle, endAngle, innerRadius, outerRadius float64) Path {
	if innerRadius < 0 || outerRadius < 0 {
		panic("wheel: negative radius")
	}

	largeArc := endAngle-startAngle > 180

	outerStart := a.PointOf(startAngle, outerRadius)
	outerEnd := a.PointOf(endAngle, outerRadius)
	innerEnd := a.PointOf(endAngle, innerRadius)
	innerStart := a.PointOf(startAngle, innerRadius)

	return Path{
		Fill: FillNonZero,
		Segments: []Segment{
			{Op: OpMove, To: outerStart},
			{Op: OpArc, To: outerEnd, Radius: outerRadius, LargeArc: largeArc, Clockwise: true},
			{Op: OpLine, To: innerEnd},
			{Op: OpArc, To: innerStart, Radius: innerRadius, LargeArc: largeArc, Clockwise: false},
			{Op: OpClose},
		},
	}
}

// FullAnnulus builds a complete ring as two concentric circles under
// even-odd fill, so the band between the radii is filled and the inner
// disk is left open. Each circle is emitted as two half arcs because a
// single arc segment cannot sweep a full turn.
func (a Axis) FullAnnulus(innerRadius, outerRadius float64) Path {
	if innerRadius < 0 || outerRadius < 0 {
		panic("wheel: negative radius")
	}

	segments := make([]Segment, 0, 8)
	segments = append(segments, fullCircle(a, outerRadius)...)
	segments = append(segments, fullCircle(a, innerRadius)...)

	return Path{Fill: FillEvenOdd, Segments: segments}
}

func fullCircle(a Axis, radius float64) []Segment {
	top := a.PointOf(0, radius)
	bottom := a.PointOf(180, radius)
	return []Segment{
		{Op: OpMove, To: top},
		{Op: OpArc, To: bottom, Radius: radius, Clockwise: true},
		{Op: OpArc, To: top, Radius: radius, Clockwise: true},
		{Op: OpClose},
	}
}

// normalizeAngle wraps an angle into [0, 360).
func normalizeAngle(angle float64) float64 {
	normalized := math.Mod(angle, 360)
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}
