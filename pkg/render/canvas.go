// Package render draws asset-graph frames onto an abstract 2D surface.
// The Renderer contains all drawing logic; backends (raster PNG, SVG,
// terminal cells, a recording test double) only implement the primitives.
package render

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the #rrggbb form, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Point is a 2D screen-space coordinate.
type Point struct {
	X, Y float64
}

// Align controls horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is the minimal drawing surface the renderer targets. Coordinates
// are screen-space pixels with the origin at the top left. Text y is the
// vertical center of the rendered string.
type Canvas interface {
	// Size returns the drawable width and height in pixels.
	Size() (w, h float64)
	// Clear fills the whole surface with bg.
	Clear(bg Color)
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	// QuadCurve strokes a quadratic bezier from (x1,y1) to (x2,y2) with
	// control point (cx,cy).
	QuadCurve(x1, y1, cx, cy, x2, y2 float64, c Color, width float64)
	// FillCircle fills a disk.
	FillCircle(x, y, r float64, c Color)
	// StrokeCircle strokes a circle outline.
	StrokeCircle(x, y, r float64, c Color, width float64)
	// FillPolygon fills a closed polygon.
	FillPolygon(pts []Point, c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// Text draws s anchored at (x,y) with the given alignment.
	Text(x, y float64, s string, c Color, size float64, align Align)
}
