// Package interact turns raw pointer events into node selection, node drag,
// and background pan against the shared viewport and position table.
package interact

import (
	"math"

	"github.com/quaygrc/assetgraph/pkg/graph"
	"github.com/quaygrc/assetgraph/pkg/viewport"
)

// State identifies the active pointer gesture.
type State int

const (
	// Idle means no pointer button is held.
	Idle State = iota
	// Dragging means a node is pinned under the pointer.
	Dragging
	// Panning means the background is being dragged.
	Panning
)

// Controller is the per-view gesture state machine. It owns nothing: the
// graph, position table, and viewport are shared with the frame scheduler
// and mutated synchronously from event handlers.
type Controller struct {
	vp     *viewport.Viewport
	radius float64

	g   *graph.Graph
	pos graph.PositionTable

	state State

	// Dragging
	dragID         string
	dragDX, dragDY float64

	// Panning
	startSX, startSY   float64
	basePanX, basePanY float64

	selected string
}

// New creates a controller over the given viewport. radius is the node hit
// radius in world units.
func New(vp *viewport.Viewport, radius float64) *Controller {
	return &Controller{vp: vp, radius: radius}
}

// Bind points the controller at a freshly loaded graph and position table
// and resets any gesture and selection state.
func (c *Controller) Bind(g *graph.Graph, pos graph.PositionTable) {
	c.abortDrag()
	c.g = g
	c.pos = pos
	c.state = Idle
	c.selected = ""
}

// State returns the active gesture.
func (c *Controller) State() State { return c.state }

// Selected returns the id of the currently inspected node, if any.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// PointerDown begins a gesture at the given screen point: a node hit starts
// a drag and selects the node; a background hit starts a pan and clears the
// selection.
func (c *Controller) PointerDown(sx, sy float64) {
	if c.g == nil {
		return
	}
	wx, wy := c.vp.ScreenToWorld(sx, sy)
	if id, ok := c.hitTest(wx, wy); ok {
		p := c.pos[id]
		c.state = Dragging
		c.dragID = id
		c.dragDX = wx - p.X
		c.dragDY = wy - p.Y
		p.Fixed = true
		c.selected = id
		return
	}
	c.state = Panning
	c.startSX, c.startSY = sx, sy
	c.basePanX, c.basePanY = c.vp.PanX, c.vp.PanY
	c.selected = ""
}

// PointerMove updates the active gesture.
func (c *Controller) PointerMove(sx, sy float64) {
	switch c.state {
	case Dragging:
		p := c.pos[c.dragID]
		if p == nil {
			c.state = Idle
			return
		}
		wx, wy := c.vp.ScreenToWorld(sx, sy)
		p.X = wx - c.dragDX
		p.Y = wy - c.dragDY
	case Panning:
		c.vp.PanX = c.basePanX + (sx - c.startSX)
		c.vp.PanY = c.basePanY + (sy - c.startSY)
	}
}

// PointerUp ends the active gesture. A released node is unpinned with its
// velocity zeroed so it stays where it was dropped.
func (c *Controller) PointerUp() {
	c.abortDrag()
	c.state = Idle
}

// Wheel zooms toward the pointer position regardless of gesture state.
func (c *Controller) Wheel(sx, sy, factor float64) {
	c.vp.ZoomAt(sx, sy, factor)
}

func (c *Controller) abortDrag() {
	if c.state != Dragging {
		return
	}
	if p := c.pos[c.dragID]; p != nil {
		p.Fixed = false
		p.VX = 0
		p.VY = 0
	}
	c.dragID = ""
}

// hitTest returns the nearest node whose center lies within the hit radius
// of the given world point.
func (c *Controller) hitTest(wx, wy float64) (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	for _, n := range c.g.Nodes {
		p := c.pos[n.ID]
		if p == nil {
			continue
		}
		d := math.Hypot(p.X-wx, p.Y-wy)
		if d <= c.radius && d < bestDist {
			best = n.ID
			bestDist = d
		}
	}
	return best, best != ""
}
