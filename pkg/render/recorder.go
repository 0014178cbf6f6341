package render

// OpKind tags one recorded drawing call.
type OpKind string

const (
	OpClear        OpKind = "clear"
	OpLine         OpKind = "line"
	OpQuadCurve    OpKind = "quad"
	OpFillCircle   OpKind = "fill-circle"
	OpStrokeCircle OpKind = "stroke-circle"
	OpFillPolygon  OpKind = "fill-polygon"
	OpFillRect     OpKind = "fill-rect"
	OpText         OpKind = "text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	CX, CY         float64
	R              float64
	Color          Color
	Text           string
	Pts            []Point
}

// Recorder is a Canvas test double that records every drawing call so tests
// can assert on renderer output without a real surface.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder creates a recorder of the given pixel size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(bg Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: bg})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) QuadCurve(x1, y1, cx, cy, x2, y2 float64, c Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpQuadCurve, X1: x1, Y1: y1, CX: cx, CY: cy, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X1: x, Y1: y, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius float64, c Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, X1: x, Y1: y, R: radius, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Pts: pts, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X1: x, Y1: y, X2: x + w, Y2: y + h, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c Color, size float64, align Align) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X1: x, Y1: y, Text: s, Color: c})
}

// Count returns the number of recorded calls of one kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
