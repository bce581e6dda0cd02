package ui

import (
	"fmt"
	"image/color"

	"MyLocalPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var swatchColors = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the color and width controls that feed a PaintWidget.
type Toolbar struct {
	Content fyne.CanvasObject
	Slider  *widget.Slider
	Status  *widget.Label

	stroke string
}

// NewToolbar builds the controls for board. parent hosts the color picker
// dialog and may be nil in tests.
func NewToolbar(board *PaintWidget, parent fyne.Window) *Toolbar {
	t := &Toolbar{}

	// --- Color Palette ---
	swatches := make([]fyne.CanvasObject, 0, len(swatchColors))
	for _, c := range swatchColors {
		swatches = append(swatches, newColorSwatch(c, board.SetColor))
	}
	colorBox := container.NewHBox(swatches...)

	picker := widget.NewToolbar(
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			if parent == nil {
				return
			}
			d := dialog.NewColorPicker("Pen color", "Choose a stroke color", board.SetColor, parent)
			d.Advanced = true
			d.SetColor(board.Style().NRGBA())
			d.Show()
		}),
	)

	// --- Stroke Width Slider ---
	t.Slider = widget.NewSlider(paint.MinWidth, paint.MaxWidth)
	t.Slider.Step = 1
	t.Slider.SetValue(float64(board.Style().Width))
	t.Slider.OnChanged = func(val float64) {
		board.SetWidth(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.Slider)

	t.Status = widget.NewLabel(styleLabel(board.Style(), ""))
	board.OnStyleChanged = func(s paint.Style) {
		t.stroke = ""
		if board.Controller().Drawing() {
			t.stroke = board.Controller().StrokeID()
		}
		t.Status.SetText(styleLabel(s, t.stroke))
	}
	board.OnStrokeChanged = func(id string) {
		t.stroke = id
		t.Status.SetText(styleLabel(board.Style(), id))
	}

	// --- Assemble everything ---
	t.Content = container.NewHBox(
		widget.NewLabel("Color:"),
		colorBox,
		picker,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		t.Status,
	)
	return t
}

// styleLabel shows the pen and, while drawing, the short ID of the stroke
// that also appears in the stroke log.
func styleLabel(s paint.Style, stroke string) string {
	if stroke == "" {
		return fmt.Sprintf("%s  %dpx", s.Color, s.Width)
	}
	if len(stroke) > 8 {
		stroke = stroke[:8]
	}
	return fmt.Sprintf("%s  %dpx  stroke %s", s.Color, s.Width, stroke)
}
