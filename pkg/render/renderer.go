package render

import (
	"math"
	"strconv"

	"github.com/quaygrc/assetgraph/pkg/graph"
	"github.com/quaygrc/assetgraph/pkg/viewport"
)

// Style holds the visual constants of a frame.
type Style struct {
	Background Color
	Grid       Color
	GridStep   float64 // world-space grid period

	NodeRadius float64 // world-space node radius
	NodeFill   Color
	Label      Color
	SubLabel   Color

	LabelSize     float64
	GlyphSize     float64
	EdgeLabelSize float64

	NameLimit int // rune limit before the name is ellipsized
}

// DefaultStyle returns the dashboard's dark theme.
func DefaultStyle() Style {
	return Style{
		Background:    RGB(0x1e, 0x22, 0x27),
		Grid:          RGB(0x2c, 0x31, 0x3a),
		GridStep:      100,
		NodeRadius:    18,
		NodeFill:      RGB(0x3a, 0x40, 0x4a),
		Label:         RGB(0xdc, 0xdf, 0xe4),
		SubLabel:      RGB(0x8a, 0x91, 0x99),
		LabelSize:     12,
		GlyphSize:     13,
		EdgeLabelSize: 10,
		NameLimit:     22,
	}
}

// Renderer draws one frame of the asset graph. It reads the graph model,
// position table, and viewport but never mutates them.
type Renderer struct {
	style Style
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	if style.GridStep == 0 {
		style.GridStep = 100
	}
	if style.NodeRadius == 0 {
		style.NodeRadius = 18
	}
	if style.NameLimit == 0 {
		style.NameLimit = 22
	}
	return &Renderer{style: style}
}

// NodeRadius returns the world-space node radius, shared with hit-testing.
func (r *Renderer) NodeRadius() float64 { return r.style.NodeRadius }

// Frame clears the canvas and draws the background grid, all edges, and all
// nodes under the current viewport transform.
func (r *Renderer) Frame(c Canvas, g *graph.Graph, pos graph.PositionTable, vp *viewport.Viewport, selected string) {
	c.Clear(r.style.Background)
	r.drawGrid(c, vp)

	for _, e := range g.Edges {
		r.drawEdge(c, e, pos, vp)
	}
	for _, n := range g.Nodes {
		r.drawNode(c, n, pos, vp, n.ID == selected)
	}
}

// drawGrid draws a periodic grid snapped to the current pan/zoom so it
// appears to scroll and scale with the content.
func (r *Renderer) drawGrid(c Canvas, vp *viewport.Viewport) {
	w, h := c.Size()
	step := r.style.GridStep * vp.Zoom
	for step < 24 {
		step *= 2
	}

	for x := math.Mod(vp.PanX, step); x < w; x += step {
		c.Line(x, 0, x, h, r.style.Grid, 1)
	}
	for y := math.Mod(vp.PanY, step); y < h; y += step {
		c.Line(0, y, w, y, r.style.Grid, 1)
	}
}

func (r *Renderer) drawEdge(c Canvas, e graph.Edge, pos graph.PositionTable, vp *viewport.Viewport) {
	pa, pb := pos[e.Source], pos[e.Target]
	if pa == nil || pb == nil || pa == pb {
		return
	}
	x1, y1 := vp.WorldToScreen(pa.X, pa.Y)
	x2, y2 := vp.WorldToScreen(pb.X, pb.Y)

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1 {
		return
	}
	ux, uy := dx/length, dy/length
	// Perpendicular control-point offset, proportional to edge length but
	// capped so long edges do not balloon.
	off := math.Min(length*0.15, 40)
	cx := (x1+x2)/2 - uy*off
	cy := (y1+y2)/2 + ux*off

	color := EdgeColor(e.Type)
	c.QuadCurve(x1, y1, cx, cy, x2, y2, color, 1.5)

	r.drawArrowhead(c, cx, cy, x2, y2, vp, color)
	r.drawEdgeLabel(c, e, x1, y1, cx, cy, x2, y2)
}

// drawArrowhead places a triangle on the curve's end tangent, inset by the
// node radius so it does not overlap the target glyph.
func (r *Renderer) drawArrowhead(c Canvas, cx, cy, x2, y2 float64, vp *viewport.Viewport, color Color) {
	tx, ty := x2-cx, y2-cy
	tl := math.Hypot(tx, ty)
	if tl < 1 {
		return
	}
	tx, ty = tx/tl, ty/tl

	inset := r.style.NodeRadius * vp.Zoom
	tipX, tipY := x2-tx*inset, y2-ty*inset
	size := math.Max(6, 9*vp.Zoom)
	baseX, baseY := tipX-tx*size, tipY-ty*size
	half := size * 0.5

	c.FillPolygon([]Point{
		{X: tipX, Y: tipY},
		{X: baseX - ty*half, Y: baseY + tx*half},
		{X: baseX + ty*half, Y: baseY - tx*half},
	}, color)
}

// drawEdgeLabel writes the relation label at the curve's midpoint over a
// background patch that blocks the grid for legibility.
func (r *Renderer) drawEdgeLabel(c Canvas, e graph.Edge, x1, y1, cx, cy, x2, y2 float64) {
	// Quadratic bezier at t=0.5.
	mx := 0.25*x1 + 0.5*cx + 0.25*x2
	my := 0.25*y1 + 0.5*cy + 0.25*y2

	label := EdgeLabel(e.Type)
	tw := estimateWidth(label, r.style.EdgeLabelSize)
	th := r.style.EdgeLabelSize + 4
	c.FillRect(mx-tw/2-2, my-th/2, tw+4, th, r.style.Background)
	c.Text(mx, my, label, EdgeColor(e.Type), r.style.EdgeLabelSize, AlignCenter)
}

func (r *Renderer) drawNode(c Canvas, n graph.Node, pos graph.PositionTable, vp *viewport.Viewport, selected bool) {
	p := pos[n.ID]
	if p == nil {
		return
	}
	sx, sy := vp.WorldToScreen(p.X, p.Y)
	radius := r.style.NodeRadius * vp.Zoom

	ring := CriticalityColor(n.CriticalityName)
	if selected {
		ring = ColorSelected
	}
	c.FillCircle(sx, sy, radius, r.style.NodeFill)
	c.StrokeCircle(sx, sy, radius, ring, 3)
	c.Text(sx, sy, Glyph(n.AssetTypeName), r.style.Label, r.style.GlyphSize, AlignCenter)

	if n.RiskCount > 0 {
		bx, by := sx+radius*0.8, sy-radius*0.8
		br := math.Max(7, radius*0.4)
		c.FillCircle(bx, by, br, ColorBadge)
		c.Text(bx, by, strconv.Itoa(n.RiskCount), RGB(0xff, 0xff, 0xff), r.style.EdgeLabelSize, AlignCenter)
	}

	labelY := sy + radius + r.style.LabelSize
	c.Text(sx, labelY, truncate(n.Name, r.style.NameLimit), r.style.Label, r.style.LabelSize, AlignCenter)
	line := 2.0
	if n.AssetTypeName != "" {
		c.Text(sx, labelY+line+r.style.LabelSize, n.AssetTypeName, r.style.SubLabel, r.style.LabelSize-2, AlignCenter)
		line += r.style.LabelSize + 2
	}
	if n.CriticalityName != "" {
		c.Text(sx, labelY+line+r.style.LabelSize, n.CriticalityName, r.style.SubLabel, r.style.LabelSize-2, AlignCenter)
	}
}

// truncate cuts s beyond limit runes, appending an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// estimateWidth approximates rendered text width; backends without font
// metrics share this heuristic.
func estimateWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.62
}
