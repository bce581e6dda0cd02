package paint

import "math"

const (
	surfaceWidthFraction  = 0.9
	surfaceHeightFraction = 0.7
)

// Size is a pixel extent.
type Size struct {
	Width, Height int
}

// SurfaceSize returns the drawable region for a viewport. It is computed
// once when the surface is mounted; later viewport resizes are not tracked.
func SurfaceSize(viewport Size) Size {
	w := fraction(viewport.Width, surfaceWidthFraction)
	h := fraction(viewport.Height, surfaceHeightFraction)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Size{Width: w, Height: h}
}

// fraction truncates like a canvas width/height attribute does, with a
// small epsilon so 0.7*1000 lands on 700 rather than 699.
func fraction(n int, f float64) int {
	return int(math.Floor(float64(n)*f + 1e-9))
}
