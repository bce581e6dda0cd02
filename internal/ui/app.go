package ui

import (
	"log"

	"MyLocalPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// Config is what the desktop host needs to mount the paint widget.
type Config struct {
	Viewport paint.Size
	Style    paint.Style
	Logger   *log.Logger // nil disables stroke logging
}

// NewContent builds the window content: toolbar on top, surface centered.
func NewContent(cfg Config, parent fyne.Window) (fyne.CanvasObject, *PaintWidget) {
	board := NewPaintWidget(paint.SurfaceSize(cfg.Viewport), cfg.Style, cfg.Logger)
	toolbar := NewToolbar(board, parent)
	return container.NewBorder(toolbar.Content, nil, nil, nil, container.NewCenter(board)), board
}

func RunApp(cfg Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Paint")
	myWindow.Resize(fyne.NewSize(float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)))

	content, board := NewContent(cfg, myWindow)
	size := board.MinSize()
	log.Printf("Mounted %.0fx%.0f surface, pen %s", size.Width, size.Height, board.Style())

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
