package wheel

// Rect is a visible coordinate window (viewBox) in wheel space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Wheel canvas constants. The wheel is drawn on a fixed square canvas;
// all radii and viewports are expressed in these units.
const (
	CanvasSize = 1000.0

	// OuterRadius is the outer edge of the outermost layer band;
	// InnerRadius is the open hub in the middle.
	OuterRadius = 400.0
	InnerRadius = 120.0

	// labelMargin leaves room for month labels outside the rings.
	labelMargin = 60.0

	// compactZoomFactor shrinks the visible window on small displays.
	compactZoomFactor = 1.6
)

// WheelCenter is the fixed center of the wheel on the canvas.
var WheelCenter = Point{X: CanvasSize / 2, Y: CanvasSize / 2}

// ViewBox computes the visible coordinate window for a viewport class.
// The full viewport shows the whole circle plus label margins. The
// compact viewport is a smaller square, horizontally centered on the
// wheel and shifted upward so today (always at the top) and the month
// labels remain visible without panning.
func ViewBox(vp ViewportClass) Rect {
	if vp == ViewportCompact {
		size := CanvasSize / compactZoomFactor
		return Rect{
			X:      WheelCenter.X - size/2,
			Y:      WheelCenter.Y - OuterRadius - labelMargin,
			Width:  size,
			Height: size,
		}
	}
	return Rect{X: 0, Y: 0, Width: CanvasSize, Height: CanvasSize}
}
