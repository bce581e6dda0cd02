package ui

import (
	"image/color"
	"log"

	"MyLocalPaint/internal/paint"
	"MyLocalPaint/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// PaintWidget is a fixed-size drawing surface. Mouse input is forwarded as
// pointer events, touch input as touch events, to a paint.Controller that
// rasterizes into the widget's own surface.
type PaintWidget struct {
	widget.BaseWidget
	raster   *surface.Raster
	ctrl     *paint.Controller
	image    *canvas.Image
	touching bool
	lastMove fyne.Position
	moved    bool

	OnStyleChanged func(paint.Style)
	// OnStrokeChanged receives the ID of a stroke when it starts and ""
	// when it ends.
	OnStrokeChanged func(id string)
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)
var _ desktop.Hoverable = (*PaintWidget)(nil)
var _ mobile.Touchable = (*PaintWidget)(nil)

// NewPaintWidget mounts a surface of the given size. logger may be nil.
func NewPaintWidget(size paint.Size, style paint.Style, logger *log.Logger) *PaintWidget {
	p := &PaintWidget{raster: surface.NewRaster(size)}
	p.ctrl = paint.NewController(p.raster,
		paint.WithStyle(style),
		paint.WithLocator(paint.LocatorFunc(p.origin)),
		paint.WithLogger(logger),
	)
	p.image = canvas.NewImageFromImage(p.raster.Image())
	p.image.FillMode = canvas.ImageFillOriginal
	p.image.ScaleMode = canvas.ImageScalePixels
	p.ExtendBaseWidget(p)
	return p
}

func (p *PaintWidget) Controller() *paint.Controller { return p.ctrl }
func (p *PaintWidget) Style() paint.Style            { return p.ctrl.Style() }

// SetColor accepts a toolkit color, e.g. from a swatch or the picker dialog.
func (p *PaintWidget) SetColor(c color.Color) {
	p.SetHexColor(paint.ColorToHex(c))
}

func (p *PaintWidget) SetHexColor(hex string) {
	if err := p.ctrl.SetColor(hex); err != nil {
		log.Printf("Ignoring color: %v", err)
		return
	}
	p.styleChanged()
}

func (p *PaintWidget) SetWidth(n int) {
	p.ctrl.SetWidth(n)
	p.styleChanged()
}

func (p *PaintWidget) styleChanged() {
	if p.OnStyleChanged != nil {
		p.OnStyleChanged(p.ctrl.Style())
	}
}

// origin is the widget's top-left corner in window coordinates.
func (p *PaintWidget) origin() paint.Point {
	app := fyne.CurrentApp()
	if app == nil {
		return paint.Point{}
	}
	pos := app.Driver().AbsolutePositionForObject(p)
	return paint.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (p *PaintWidget) dispatch(ev paint.Event) {
	wasDrawing, wasID := p.ctrl.Drawing(), p.ctrl.StrokeID()
	p.ctrl.Dispatch(ev)
	drawing := p.ctrl.Drawing()
	if wasDrawing || drawing {
		p.Refresh()
	}
	switch {
	case drawing && (!wasDrawing || p.ctrl.StrokeID() != wasID):
		p.strokeChanged(p.ctrl.StrokeID())
	case wasDrawing && !drawing:
		p.strokeChanged("")
	}
}

func (p *PaintWidget) strokeChanged(id string) {
	if p.OnStrokeChanged != nil {
		p.OnStrokeChanged(id)
	}
}

func (p *PaintWidget) pointer(kind paint.EventKind, pos fyne.Position) {
	p.dispatch(paint.Event{Kind: kind, X: float64(pos.X), Y: float64(pos.Y)})
}

func (p *PaintWidget) touch(kind paint.EventKind, ev fyne.PointEvent) {
	p.dispatch(paint.Event{Kind: kind, Touches: []paint.Touch{{
		ClientX: float64(ev.AbsolutePosition.X),
		ClientY: float64(ev.AbsolutePosition.Y),
	}}})
}

// move drops repeats: the desktop driver can report the same position to
// both Dragged and MouseMoved.
func (p *PaintWidget) move(pos fyne.Position) bool {
	if p.moved && pos == p.lastMove {
		return false
	}
	p.lastMove, p.moved = pos, true
	return true
}

// --- desktop.Mouseable / desktop.Hoverable ---

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.touching = false
	p.lastMove, p.moved = e.Position, true
	p.pointer(paint.PointerDown, e.Position)
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.pointer(paint.PointerUp, e.Position)
}

func (p *PaintWidget) MouseIn(*desktop.MouseEvent) {}

func (p *PaintWidget) MouseMoved(e *desktop.MouseEvent) {
	if p.touching || !p.move(e.Position) {
		return
	}
	p.pointer(paint.PointerMove, e.Position)
}

func (p *PaintWidget) MouseOut() {
	if p.touching {
		return
	}
	p.dispatch(paint.Event{Kind: paint.PointerLeave})
}

// --- mobile.Touchable ---

func (p *PaintWidget) TouchDown(e *mobile.TouchEvent) {
	p.touching = true
	p.touch(paint.TouchStart, e.PointEvent)
}

func (p *PaintWidget) TouchUp(*mobile.TouchEvent) {
	p.dispatch(paint.Event{Kind: paint.TouchEnd})
	p.touching = false
}

func (p *PaintWidget) TouchCancel(*mobile.TouchEvent) {
	p.dispatch(paint.Event{Kind: paint.TouchCancel})
	p.touching = false
}

// --- fyne.Draggable ---

func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	if p.touching {
		p.touch(paint.TouchMove, e.PointEvent)
		return
	}
	if p.move(e.Position) {
		p.pointer(paint.PointerMove, e.Position)
	}
}

func (p *PaintWidget) DragEnd() {
	if p.touching {
		p.dispatch(paint.Event{Kind: paint.TouchEnd})
		p.touching = false
		return
	}
	p.dispatch(paint.Event{Kind: paint.PointerUp})
}

func (p *PaintWidget) MinSize() fyne.Size {
	s := p.raster.Size()
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// CreateRenderer remounts a fresh surface if a previous renderer released
// the old one; earlier drawing is not carried over.
func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	if p.raster.Closed() {
		p.raster = surface.NewRaster(p.raster.Size())
		p.ctrl.Rebind(p.raster)
		p.image.Image = p.raster.Image()
	}
	p.image.SetMinSize(p.MinSize())
	return &paintWidgetRenderer{widget: p}
}

type paintWidgetRenderer struct {
	widget *PaintWidget
}

func (r *paintWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.image}
}

func (r *paintWidgetRenderer) Refresh() {
	r.widget.image.Image = r.widget.raster.Image()
	r.widget.image.Refresh()
}

func (r *paintWidgetRenderer) Layout(fyne.Size) {
	r.widget.image.Move(fyne.NewPos(0, 0))
	r.widget.image.Resize(r.widget.MinSize())
}

func (r *paintWidgetRenderer) MinSize() fyne.Size { return r.widget.MinSize() }

// Destroy releases the surface when the widget is unmounted.
func (r *paintWidgetRenderer) Destroy() {
	if err := r.widget.raster.Close(); err != nil {
		log.Printf("Error releasing surface: %v", err)
	}
}
