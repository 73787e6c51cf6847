package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewBox_Full(t *testing.T) {
	box := ViewBox(ViewportFull)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: CanvasSize, Height: CanvasSize}, box)
	assert.Equal(t, box.Width, box.Height, "viewBox stays square")

	// The circle plus label margin fits inside.
	assert.LessOrEqual(t, box.X, WheelCenter.X-OuterRadius-labelMargin)
	assert.GreaterOrEqual(t, box.X+box.Width, WheelCenter.X+OuterRadius+labelMargin)
}

func TestViewBox_Compact(t *testing.T) {
	box := ViewBox(ViewportCompact)
	full := ViewBox(ViewportFull)

	assert.Equal(t, box.Width, box.Height)
	assert.Less(t, box.Width, full.Width, "compact window is zoomed in")

	// Horizontally centered on the wheel.
	assert.InDelta(t, WheelCenter.X, box.X+box.Width/2, 1e-9)

	// Shifted upward: the window top sits above the outer ring so
	// today and the month labels stay visible.
	assert.LessOrEqual(t, box.Y, WheelCenter.Y-OuterRadius)
	assert.Less(t, box.Y+box.Height/2, WheelCenter.Y, "window center is above the wheel center")
}
