package paint

// Point is a surface-local coordinate.
type Point struct{ X, Y float64 }

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

var eventKindNames = [...]string{
	PointerDown:  "pointerdown",
	PointerMove:  "pointermove",
	PointerUp:    "pointerup",
	PointerLeave: "pointerleave",
	TouchStart:   "touchstart",
	TouchMove:    "touchmove",
	TouchEnd:     "touchend",
	TouchCancel:  "touchcancel",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

func (k EventKind) IsTouch() bool {
	return k >= TouchStart
}

// Touch is one active touch point in viewport (client) coordinates.
type Touch struct {
	ClientX, ClientY float64
}

// Event is a host input event. Pointer events carry surface-local X/Y,
// touch events carry the active touches.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Touches []Touch
}

// Locator reports the surface's on-screen bounding box origin in viewport
// coordinates. It is consulted at dispatch time so scrolling and layout
// changes are picked up.
type Locator interface {
	Origin() Point
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func() Point

func (f LocatorFunc) Origin() Point { return f() }

// TouchPosition derives the drawing coordinate of the first touch.
// Only touches[0] is tracked; ok is false when there are no touches.
func TouchPosition(touches []Touch, origin Point) (p Point, ok bool) {
	if len(touches) == 0 {
		return Point{}, false
	}
	t := touches[0]
	return Point{X: t.ClientX - origin.X, Y: t.ClientY - origin.Y}, true
}
