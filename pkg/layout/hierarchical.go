// Package layout computes node positions for the asset graph: a
// deterministic layered initial placement per cluster, then an iterative
// force refinement pass over the shared position table.
package layout

import (
	"container/list"
	"math"

	"github.com/quaygrc/assetgraph/pkg/cluster"
	"github.com/quaygrc/assetgraph/pkg/graph"
)

// Config holds the spacing constants of the hierarchical builder.
type Config struct {
	NodeSpacing  float64 // horizontal distance between siblings in a layer
	LayerSpacing float64 // vertical distance between layers
	ClusterGap   float64 // margin between cluster cells on the grid
	MinCell      float64 // minimum grid pitch, keeps tiny clusters apart
}

// DefaultConfig returns the spacing used by the dashboard view.
func DefaultConfig() Config {
	return Config{
		NodeSpacing:  140,
		LayerSpacing: 120,
		ClusterGap:   160,
		MinCell:      600,
	}
}

// Hierarchical computes the initial, non-overlapping placement for every
// node using a layered-tree heuristic, one tree per connected cluster.
type Hierarchical struct {
	cfg Config
}

// NewHierarchical creates a hierarchical layout builder.
func NewHierarchical(cfg Config) *Hierarchical {
	if cfg.NodeSpacing == 0 {
		cfg.NodeSpacing = 140
	}
	if cfg.LayerSpacing == 0 {
		cfg.LayerSpacing = 120
	}
	if cfg.ClusterGap == 0 {
		cfg.ClusterGap = 160
	}
	if cfg.MinCell == 0 {
		cfg.MinCell = 600
	}
	return &Hierarchical{cfg: cfg}
}

// hierarchyPreferred reports whether an edge type expresses containment or
// dependency strongly enough to drive parent assignment in the first pass.
func hierarchyPreferred(t graph.RelationType) bool {
	switch t {
	case graph.RelationContains, graph.RelationDependsOn, graph.RelationSupports:
		return true
	}
	return false
}

// Compute returns a fresh position table covering every node of g. Clusters
// are laid out independently around (0,0) and then arranged on a coarse
// ceil(sqrt(n))-column grid so they never initially overlap.
func (h *Hierarchical) Compute(g *graph.Graph) graph.PositionTable {
	positions := make(graph.PositionTable, len(g.Nodes))
	clusters := cluster.Detect(g)
	if len(clusters) == 0 {
		return positions
	}

	type placed struct {
		rel  map[string][2]float64
		w, h float64
	}
	cells := make([]placed, len(clusters))
	pitchX, pitchY := h.cfg.MinCell, h.cfg.MinCell
	for i, members := range clusters {
		rel, w, hh := h.layoutCluster(g, members)
		cells[i] = placed{rel: rel, w: w, h: hh}
		pitchX = math.Max(pitchX, w+h.cfg.ClusterGap)
		pitchY = math.Max(pitchY, hh+h.cfg.ClusterGap)
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(clusters)))))
	for i, cell := range cells {
		anchorX := float64(i%cols) * pitchX
		anchorY := float64(i/cols) * pitchY
		for id, xy := range cell.rel {
			positions[id] = &graph.Position{
				X: anchorX + xy[0],
				Y: anchorY + xy[1],
			}
		}
	}

	return positions
}

// layoutCluster places one cluster's nodes relative to its centroid at
// (0,0) and returns the placement with its extents.
func (h *Hierarchical) layoutCluster(g *graph.Graph, members []string) (map[string][2]float64, float64, float64) {
	inCluster := make(map[string]bool, len(members))
	for _, id := range members {
		inCluster[id] = true
	}

	// Internal edges only, split by hierarchy preference. Payload order is
	// preserved in both passes: the first edge writing a parent wins.
	var preferred, rest []graph.Edge
	for _, e := range g.Edges {
		if !inCluster[e.Source] || !inCluster[e.Target] || e.Source == e.Target {
			continue
		}
		if hierarchyPreferred(e.Type) {
			preferred = append(preferred, e)
		} else {
			rest = append(rest, e)
		}
	}

	parent := make(map[string]string, len(members))
	for _, pass := range [][]graph.Edge{preferred, rest} {
		for _, e := range pass {
			if _, taken := parent[e.Target]; taken {
				continue
			}
			parent[e.Target] = e.Source
		}
	}

	// Child lists built in member order keep the traversal deterministic.
	children := make(map[string][]string, len(members))
	roots := make([]string, 0, 1)
	for _, id := range members {
		p, ok := parent[id]
		if !ok {
			roots = append(roots, id)
			continue
		}
		children[p] = append(children[p], id)
	}
	if len(roots) == 0 {
		// Pure cycle: designate the first node so layering terminates.
		roots = append(roots, members[0])
	}

	layer := make(map[string]int, len(members))
	queue := list.New()
	for _, r := range roots {
		layer[r] = 0
		queue.PushBack(r)
	}
	for queue.Len() > 0 {
		id := queue.Remove(queue.Front()).(string)
		for _, c := range children[id] {
			if _, seen := layer[c]; seen {
				continue
			}
			layer[c] = layer[id] + 1
			queue.PushBack(c)
		}
	}

	maxLayer := 0
	for _, id := range members {
		l, ok := layer[id]
		if !ok {
			// Unreachable from any root (isolated by a cycle).
			layer[id] = 0
			l = 0
		}
		if l > maxLayer {
			maxLayer = l
		}
	}

	rows := make([][]string, maxLayer+1)
	for _, id := range members {
		l := layer[id]
		rows[l] = append(rows[l], id)
	}

	rel := make(map[string][2]float64, len(members))
	totalH := float64(maxLayer) * h.cfg.LayerSpacing
	maxW := 0.0
	for l, row := range rows {
		y := float64(l)*h.cfg.LayerSpacing - totalH/2
		rowW := float64(len(row)-1) * h.cfg.NodeSpacing
		maxW = math.Max(maxW, rowW)
		for i, id := range row {
			x := float64(i)*h.cfg.NodeSpacing - rowW/2
			rel[id] = [2]float64{x, y}
		}
	}

	return rel, maxW, totalH
}
