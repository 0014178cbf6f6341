package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Canvas that streams SVG elements to a writer, used by the export
// CLI to produce vector output.
type SVG struct {
	canvas *svg.SVG
	w, h   int
}

// NewSVG starts an SVG document of the given pixel size. Call End to close
// the document.
func NewSVG(out io.Writer, width, height int) *SVG {
	s := svg.New(out)
	s.Start(width, height)
	return &SVG{canvas: s, w: width, h: height}
}

// End closes the SVG document.
func (s *SVG) End() {
	s.canvas.End()
}

func (s *SVG) Size() (float64, float64) { return float64(s.w), float64(s.h) }

func stroke(c Color, width float64) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%.1f;fill:none", c.Hex(), width)
}

func fill(c Color) string {
	return fmt.Sprintf("fill:%s", c.Hex())
}

func (s *SVG) Clear(bg Color) {
	s.canvas.Rect(0, 0, s.w, s.h, fill(bg))
}

func (s *SVG) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	s.canvas.Line(int(x1), int(y1), int(x2), int(y2), stroke(c, width))
}

func (s *SVG) QuadCurve(x1, y1, cx, cy, x2, y2 float64, c Color, width float64) {
	s.canvas.Qbez(int(x1), int(y1), int(cx), int(cy), int(x2), int(y2), stroke(c, width))
}

func (s *SVG) FillCircle(x, y, r float64, c Color) {
	s.canvas.Circle(int(x), int(y), int(r), fill(c))
}

func (s *SVG) StrokeCircle(x, y, r float64, c Color, width float64) {
	s.canvas.Circle(int(x), int(y), int(r), stroke(c, width))
}

func (s *SVG) FillPolygon(pts []Point, c Color) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(p.X)
		ys[i] = int(p.Y)
	}
	s.canvas.Polygon(xs, ys, fill(c))
}

func (s *SVG) FillRect(x, y, w, h float64, c Color) {
	s.canvas.Rect(int(x), int(y), int(w), int(h), fill(c))
}

func (s *SVG) Text(x, y float64, str string, c Color, size float64, align Align) {
	anchor := "start"
	if align == AlignCenter {
		anchor = "middle"
	}
	style := fmt.Sprintf("fill:%s;font-size:%.0fpx;text-anchor:%s;dominant-baseline:middle;font-family:sans-serif", c.Hex(), size, anchor)
	s.canvas.Text(int(x), int(y), str, style)
}
