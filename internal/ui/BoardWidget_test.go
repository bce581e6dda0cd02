package ui

import (
	"image/color"
	"testing"

	"MyLocalPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(t *testing.T) *PaintWidget {
	t.Helper()
	test.NewApp()
	p := NewPaintWidget(paint.Size{Width: 200, Height: 100}, paint.DefaultStyle(), nil)
	w := test.NewWindow(p)
	t.Cleanup(w.Close)
	return p
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func pixel(p *PaintWidget, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(p.raster.Image().At(x, y)).(color.NRGBA)
}

func TestPaintWidgetMinSize(t *testing.T) {
	p := newTestWidget(t)
	assert.Equal(t, fyne.NewSize(200, 100), p.MinSize())
}

func TestPaintWidgetMouseStroke(t *testing.T) {
	p := newTestWidget(t)

	p.MouseMoved(mouse(10, 50))
	assert.False(t, p.Controller().Drawing())

	p.MouseDown(mouse(10, 50))
	assert.True(t, p.Controller().Drawing())
	p.MouseMoved(mouse(100, 50))
	p.MouseMoved(mouse(190, 50))
	p.MouseUp(mouse(190, 50))
	assert.False(t, p.Controller().Drawing())

	dark := pixel(p, 100, 50)
	assert.Less(t, dark.R, uint8(60))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(p, 100, 10))
}

func TestPaintWidgetSecondaryButtonIgnored(t *testing.T) {
	p := newTestWidget(t)

	ev := mouse(5, 5)
	ev.Button = desktop.MouseButtonSecondary
	p.MouseDown(ev)

	assert.False(t, p.Controller().Drawing())
}

func TestPaintWidgetMouseOutEndsStroke(t *testing.T) {
	p := newTestWidget(t)

	p.MouseDown(mouse(10, 10))
	p.MouseOut()
	assert.False(t, p.Controller().Drawing())

	p.MouseMoved(mouse(50, 50))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(p, 50, 50))
}

func TestPaintWidgetTouchLifecycle(t *testing.T) {
	p := newTestWidget(t)

	touch := &mobile.TouchEvent{PointEvent: fyne.PointEvent{
		Position:         fyne.NewPos(20, 20),
		AbsolutePosition: fyne.NewPos(20, 20),
	}}
	p.TouchDown(touch)
	assert.True(t, p.Controller().Drawing())

	p.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{
		Position:         fyne.NewPos(60, 20),
		AbsolutePosition: fyne.NewPos(60, 20),
	}})
	assert.True(t, p.Controller().Drawing())

	p.TouchUp(touch)
	assert.False(t, p.Controller().Drawing())

	p.TouchDown(touch)
	p.TouchCancel(touch)
	assert.False(t, p.Controller().Drawing())
}

func TestPaintWidgetTouchBelowToolbar(t *testing.T) {
	test.NewApp()
	content, p := NewContent(Config{
		Viewport: paint.Size{Width: 400, Height: 300},
		Style:    paint.DefaultStyle(),
	}, nil)
	w := test.NewWindow(content)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(500, 400))

	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(p)
	require.Greater(t, origin.Y, float32(0), "surface sits below the toolbar")

	at := func(x, y float32) fyne.PointEvent {
		local := fyne.NewPos(x, y)
		return fyne.PointEvent{Position: local, AbsolutePosition: origin.Add(local)}
	}
	p.TouchDown(&mobile.TouchEvent{PointEvent: at(40, 40)})
	p.Dragged(&fyne.DragEvent{PointEvent: at(120, 40)})
	p.TouchUp(&mobile.TouchEvent{PointEvent: at(120, 40)})

	dark := pixel(p, 80, 40)
	assert.Less(t, dark.R, uint8(60))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(p, 80, 120))
}

func TestPaintWidgetRemountAfterDestroy(t *testing.T) {
	p := newTestWidget(t)
	require.NoError(t, p.Controller().SetColor("#ff0000"))
	old := p.raster

	test.WidgetRenderer(p).Destroy()
	assert.True(t, old.Closed())

	p.CreateRenderer()
	assert.NotSame(t, old, p.raster)
	assert.False(t, p.raster.Closed())

	p.MouseDown(mouse(10, 50))
	p.MouseMoved(mouse(150, 50))
	p.MouseUp(mouse(150, 50))

	red := pixel(p, 80, 50)
	assert.Greater(t, red.R, uint8(200))
	assert.Less(t, red.G, uint8(60))
}

func TestPaintWidgetDragEndEndsStroke(t *testing.T) {
	p := newTestWidget(t)

	p.MouseDown(mouse(10, 10))
	p.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 30)}})
	p.DragEnd()

	assert.False(t, p.Controller().Drawing())
}

func TestToolbarControlsStyle(t *testing.T) {
	p := newTestWidget(t)
	tb := NewToolbar(p, nil)

	assert.Equal(t, "#000000  5px", tb.Status.Text)

	tb.Slider.SetValue(14)
	assert.Equal(t, 14, p.Style().Width)

	p.SetColor(color.NRGBA{R: 255, A: 255})
	assert.Equal(t, "#ff0000", p.Style().Color)
	assert.Equal(t, "#ff0000  14px", tb.Status.Text)

	p.SetHexColor("not-a-color")
	assert.Equal(t, "#ff0000", p.Style().Color)

	p.MouseDown(mouse(10, 10))
	id := p.Controller().StrokeID()
	assert.Equal(t, "#ff0000  14px  stroke "+id[:8], tb.Status.Text)
	p.SetWidth(3)
	assert.Equal(t, "#ff0000  3px  stroke "+id[:8], tb.Status.Text)
	p.MouseUp(mouse(10, 10))
	assert.Equal(t, "#ff0000  3px", tb.Status.Text)
}

func TestColorSwatchTapped(t *testing.T) {
	test.NewApp()
	var got color.Color
	s := newColorSwatch(color.White, func(c color.Color) { got = c })

	test.Tap(s)

	assert.Equal(t, color.White, got)
}
