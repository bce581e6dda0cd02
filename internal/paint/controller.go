package paint

import (
	"log"

	"github.com/google/uuid"
)

// Surface is the immediate-mode 2D drawing context the controller paints on.
// It follows the browser canvas model: Stroke renders the accumulated path
// and keeps it, BeginPath discards it.
type Surface interface {
	Configure(style Style)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	ClosePath()
}

// Controller turns press/move/release input into path operations on a
// Surface. It is driven from a single UI thread and does no locking.
type Controller struct {
	surface Surface
	locator Locator
	logger  *log.Logger

	style   Style
	drawing bool

	strokeID string
	last     Point
	// restyled is set when the style changes during a stroke; the next
	// segment starts a fresh surface path at last.
	restyled bool
	segments int
}

type Option func(*Controller)

// WithStyle sets the initial style. Width is clamped; an invalid color
// leaves the default in place.
func WithStyle(s Style) Option {
	return func(c *Controller) {
		if hex, err := ParseColor(s.Color); err == nil {
			c.style.Color = hex
		}
		c.style.Width = ClampWidth(s.Width)
	}
}

// WithLocator supplies the surface origin used for touch coordinates.
func WithLocator(l Locator) Option {
	return func(c *Controller) { c.locator = l }
}

// WithLogger enables stroke lifecycle logging.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController binds a controller to surface and configures it with the
// initial style. surface must not be nil.
func NewController(surface Surface, opts ...Option) *Controller {
	if surface == nil {
		panic("paint: NewController called without a surface")
	}
	c := &Controller{
		surface: surface,
		style:   DefaultStyle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.surface.Configure(c.style)
	return c
}

// Rebind moves the controller onto a fresh surface, e.g. after the old one
// was released. Any stroke in progress is abandoned and the current style is
// applied to the new surface.
func (c *Controller) Rebind(surface Surface) {
	if surface == nil {
		panic("paint: Rebind called without a surface")
	}
	c.surface = surface
	c.drawing = false
	c.restyled = false
	c.surface.Configure(c.style)
}

func (c *Controller) Style() Style     { return c.style }
func (c *Controller) Drawing() bool    { return c.drawing }
func (c *Controller) StrokeID() string { return c.strokeID }

// PressStart begins a new stroke at (x, y). Coordinates outside the surface
// are drawn as given.
func (c *Controller) PressStart(x, y float64) {
	c.surface.BeginPath()
	c.surface.MoveTo(x, y)
	c.drawing = true
	c.restyled = false
	c.segments = 0
	c.last = Point{X: x, Y: y}
	c.strokeID = uuid.NewString()
	c.logf("stroke %s: start at (%.1f, %.1f) with %s", c.strokeID, x, y, c.style)
}

// Move extends the current stroke to (x, y) and renders it. It does nothing
// when no stroke is in progress.
func (c *Controller) Move(x, y float64) {
	if !c.drawing {
		return
	}
	if c.restyled {
		c.surface.BeginPath()
		c.surface.MoveTo(c.last.X, c.last.Y)
		c.restyled = false
	}
	c.surface.LineTo(x, y)
	c.surface.Stroke()
	c.last = Point{X: x, Y: y}
	c.segments++
}

// PressEnd finishes the current stroke. Calling it while idle is a no-op.
func (c *Controller) PressEnd() {
	if !c.drawing {
		return
	}
	c.surface.ClosePath()
	c.drawing = false
	c.logf("stroke %s: end after %d segments", c.strokeID, c.segments)
}

// SetColor changes the pen color for segments drawn from now on.
func (c *Controller) SetColor(hex string) error {
	normalized, err := ParseColor(hex)
	if err != nil {
		return err
	}
	if normalized == c.style.Color {
		return nil
	}
	c.style.Color = normalized
	c.restyle()
	return nil
}

// SetWidth changes the pen width, clamped to [MinWidth, MaxWidth].
func (c *Controller) SetWidth(n int) {
	n = ClampWidth(n)
	if n == c.style.Width {
		return
	}
	c.style.Width = n
	c.restyle()
}

func (c *Controller) restyle() {
	c.surface.Configure(c.style)
	if c.drawing {
		c.restyled = true
	}
	c.logf("style: %s", c.style)
}

// Dispatch routes a host event to the matching operation.
func (c *Controller) Dispatch(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c.PressStart(ev.X, ev.Y)
	case PointerMove:
		c.Move(ev.X, ev.Y)
	case PointerUp, PointerLeave, TouchEnd, TouchCancel:
		c.PressEnd()
	case TouchStart, TouchMove:
		p, ok := TouchPosition(ev.Touches, c.origin())
		if !ok {
			return
		}
		if ev.Kind == TouchStart {
			c.PressStart(p.X, p.Y)
		} else {
			c.Move(p.X, p.Y)
		}
	}
}

func (c *Controller) origin() Point {
	if c.locator == nil {
		return Point{}
	}
	return c.locator.Origin()
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
