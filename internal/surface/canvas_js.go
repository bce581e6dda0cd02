//go:build js && wasm

package surface

import (
	"syscall/js"

	"MyLocalPaint/internal/paint"
)

// Canvas wraps a browser CanvasRenderingContext2D.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

var _ paint.Surface = (*Canvas)(nil)

// NewCanvas binds to the 2d context of a <canvas> element.
func NewCanvas(el js.Value) *Canvas {
	return &Canvas{el: el, ctx: el.Call("getContext", "2d")}
}

func (c *Canvas) Configure(s paint.Style) {
	c.ctx.Set("lineCap", "round")
	c.ctx.Set("lineJoin", "round")
	c.ctx.Set("strokeStyle", s.Color)
	c.ctx.Set("lineWidth", s.Width)
}

func (c *Canvas) BeginPath()          { c.ctx.Call("beginPath") }
func (c *Canvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *Canvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }
func (c *Canvas) Stroke()             { c.ctx.Call("stroke") }
func (c *Canvas) ClosePath()          { c.ctx.Call("closePath") }

// Origin reports the element's bounding box origin in viewport coordinates.
func (c *Canvas) Origin() paint.Point {
	rect := c.el.Call("getBoundingClientRect")
	return paint.Point{X: rect.Get("left").Float(), Y: rect.Get("top").Float()}
}
