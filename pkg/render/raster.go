package render

import (
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
)

// Raster is a Canvas over an in-memory RGBA image, used by the export CLI
// to produce PNGs.
type Raster struct {
	dc   *gg.Context
	w, h float64
}

// NewRaster creates a raster canvas of the given pixel size.
func NewRaster(width, height int) *Raster {
	return &Raster{
		dc: gg.NewContext(width, height),
		w:  float64(width),
		h:  float64(height),
	}
}

func std(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

func (r *Raster) Clear(bg Color) {
	r.dc.SetColor(std(bg))
	r.dc.Clear()
}

func (r *Raster) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r.dc.SetColor(std(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) QuadCurve(x1, y1, cx, cy, x2, y2 float64, c Color, width float64) {
	r.dc.SetColor(std(c))
	r.dc.SetLineWidth(width)
	r.dc.MoveTo(x1, y1)
	r.dc.QuadraticTo(cx, cy, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) FillCircle(x, y, radius float64, c Color) {
	r.dc.SetColor(std(c))
	r.dc.DrawCircle(x, y, radius)
	r.dc.Fill()
}

func (r *Raster) StrokeCircle(x, y, radius float64, c Color, width float64) {
	r.dc.SetColor(std(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(x, y, radius)
	r.dc.Stroke()
}

func (r *Raster) FillPolygon(pts []Point, c Color) {
	if len(pts) < 3 {
		return
	}
	r.dc.SetColor(std(c))
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	r.dc.SetColor(std(c))
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func (r *Raster) Text(x, y float64, s string, c Color, size float64, align Align) {
	r.dc.SetColor(std(c))
	ax := 0.0
	if align == AlignCenter {
		ax = 0.5
	}
	r.dc.DrawStringAnchored(s, x, y, ax, 0.5)
}

// EncodePNG writes the rendered image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the rendered image to a file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
