package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchPosition(t *testing.T) {
	p, ok := TouchPosition([]Touch{{ClientX: 250.5, ClientY: 80}}, Point{X: 50, Y: 30})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 200.5, Y: 50}, p)

	p, ok = TouchPosition([]Touch{{ClientX: 10, ClientY: 10}}, Point{X: 50, Y: 30})
	assert.True(t, ok)
	assert.Equal(t, Point{X: -40, Y: -20}, p)

	_, ok = TouchPosition(nil, Point{})
	assert.False(t, ok)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "pointerleave", PointerLeave.String())
	assert.Equal(t, "touchcancel", TouchCancel.String())
	assert.Equal(t, "unknown", EventKind(42).String())
	assert.True(t, TouchMove.IsTouch())
	assert.False(t, PointerMove.IsTouch())
}

func TestSurfaceSize(t *testing.T) {
	assert.Equal(t, Size{Width: 900, Height: 700}, SurfaceSize(Size{Width: 1000, Height: 1000}))
	assert.Equal(t, Size{Width: 921, Height: 537}, SurfaceSize(Size{Width: 1024, Height: 768}))
	assert.Equal(t, Size{Width: 1, Height: 1}, SurfaceSize(Size{}))
}
