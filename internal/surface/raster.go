//go:build !(js && wasm)

package surface

import (
	"image"
	"log"

	"MyLocalPaint/internal/paint"

	"github.com/gogpu/gg"
)

// Raster is a software-rendered surface backed by a gg context. The path is
// kept across Stroke calls so it behaves like a browser canvas.
type Raster struct {
	dc     *gg.Context
	size   paint.Size
	closed bool
}

var _ paint.Surface = (*Raster)(nil)

// NewRaster allocates a white surface of the given size.
func NewRaster(size paint.Size) *Raster {
	dc := gg.NewContext(size.Width, size.Height)
	dc.ClearWithColor(gg.White)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{dc: dc, size: size}
}

func (r *Raster) Size() paint.Size { return r.size }

func (r *Raster) Configure(s paint.Style) {
	r.dc.SetColor(s.NRGBA())
	r.dc.SetLineWidth(float64(s.Width))
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }
func (r *Raster) ClosePath()          { r.dc.ClosePath() }

func (r *Raster) Stroke() {
	if err := r.dc.StrokePreserve(); err != nil {
		log.Printf("surface: stroke failed: %v", err)
	}
}

// Image returns a snapshot of the pixels drawn so far.
func (r *Raster) Image() image.Image {
	if err := r.dc.FlushGPU(); err != nil {
		log.Printf("surface: flush failed: %v", err)
	}
	return r.dc.Image()
}

func (r *Raster) Closed() bool { return r.closed }

// Close releases the gg context. The surface must not be drawn on afterwards.
func (r *Raster) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.dc.Close()
}
