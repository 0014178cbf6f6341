package layout

import (
	"math"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

// Physics holds the force-refinement tuning constants.
type Physics struct {
	Repulsion   float64 // pairwise inverse-square repulsion strength
	Spring      float64 // edge spring constant
	IdealLength float64 // desired edge length
	Damping     float64 // velocity decay per tick, < 1
	MinDistance float64 // distance floor guarding the divisors
}

// DefaultPhysics returns the tuning used by the dashboard view.
func DefaultPhysics() Physics {
	return Physics{
		Repulsion:   6000,
		Spring:      0.02,
		IdealLength: 160,
		Damping:     0.85,
		MinDistance: 1,
	}
}

// Refiner nudges a position table toward a visually settled layout, one
// tick per call: pairwise repulsion, edge-spring attraction, then damped
// integration. The caller bounds the number of ticks; the refiner itself
// carries no iteration state.
type Refiner struct {
	phys Physics
}

// NewRefiner creates a force refiner.
func NewRefiner(phys Physics) *Refiner {
	if phys.Repulsion == 0 {
		phys.Repulsion = 6000
	}
	if phys.Spring == 0 {
		phys.Spring = 0.02
	}
	if phys.IdealLength == 0 {
		phys.IdealLength = 160
	}
	if phys.Damping == 0 {
		phys.Damping = 0.85
	}
	if phys.MinDistance == 0 {
		phys.MinDistance = 1
	}
	return &Refiner{phys: phys}
}

// Tick mutates positions in place with one refinement step. Nodes whose
// Fixed flag is set (currently dragged) get their velocity zeroed and are
// never moved.
func (r *Refiner) Tick(g *graph.Graph, positions graph.PositionTable) {
	// Repulsion between all unordered pairs.
	for i := 0; i < len(g.Nodes); i++ {
		a := positions[g.Nodes[i].ID]
		if a == nil {
			continue
		}
		for j := i + 1; j < len(g.Nodes); j++ {
			b := positions[g.Nodes[j].ID]
			if b == nil {
				continue
			}
			dx := a.X - b.X
			dy := a.Y - b.Y
			if dx == 0 && dy == 0 {
				// Coincident nodes have no direction; give them one.
				dx = 0.01
			}
			dist := math.Max(math.Hypot(dx, dy), r.phys.MinDistance)
			force := r.phys.Repulsion / (dist * dist)
			fx := dx / dist * force
			fy := dy / dist * force
			a.VX += fx
			a.VY += fy
			b.VX -= fx
			b.VY -= fy
		}
	}

	// Spring attraction along every edge.
	for _, e := range g.Edges {
		a := positions[e.Source]
		b := positions[e.Target]
		if a == nil || b == nil || a == b {
			continue
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Max(math.Hypot(dx, dy), r.phys.MinDistance)
		force := (dist - r.phys.IdealLength) * r.phys.Spring
		fx := dx / dist * force
		fy := dy / dist * force
		a.VX += fx
		a.VY += fy
		b.VX -= fx
		b.VY -= fy
	}

	// Damping and integration.
	for i := range g.Nodes {
		p := positions[g.Nodes[i].ID]
		if p == nil {
			continue
		}
		if p.Fixed {
			p.VX = 0
			p.VY = 0
			continue
		}
		p.VX *= r.phys.Damping
		p.VY *= r.phys.Damping
		p.X += p.VX
		p.Y += p.VY
	}
}
