package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

func finite(p *graph.Position) bool {
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestTickPullsConnectedNodesTowardIdealLength(t *testing.T) {
	g := depGraph([]string{"a", "b"}, [][2]string{{"a", "b"}})
	positions := graph.PositionTable{
		"a": {X: 0, Y: 0},
		"b": {X: 1000, Y: 0},
	}

	r := NewRefiner(DefaultPhysics())
	for i := 0; i < 150; i++ {
		r.Tick(g, positions)
	}

	dist := math.Hypot(positions["b"].X-positions["a"].X, positions["b"].Y-positions["a"].Y)
	if dist > 900 {
		t.Errorf("spring failed to pull nodes together: dist %f", dist)
	}
	if dist < 1 {
		t.Errorf("nodes collapsed: dist %f", dist)
	}
}

func TestTickSeparatesCoincidentNodes(t *testing.T) {
	g := depGraph([]string{"a", "b"}, nil)
	positions := graph.PositionTable{
		"a": {X: 50, Y: 50},
		"b": {X: 50, Y: 50},
	}

	r := NewRefiner(DefaultPhysics())
	for i := 0; i < 20; i++ {
		r.Tick(g, positions)
	}

	for id, p := range positions {
		if !finite(p) {
			t.Fatalf("node %s not finite: %+v", id, p)
		}
	}
	if positions["a"].X == positions["b"].X && positions["a"].Y == positions["b"].Y {
		t.Error("coincident nodes never separated")
	}
}

func TestFixedNodeNeverMoves(t *testing.T) {
	g := depGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	positions := graph.PositionTable{
		"a": {X: 0, Y: 0},
		"b": {X: 30, Y: 40, Fixed: true},
		"c": {X: 500, Y: 500},
	}

	r := NewRefiner(DefaultPhysics())
	for i := 0; i < 150; i++ {
		r.Tick(g, positions)
		b := positions["b"]
		if b.X != 30 || b.Y != 40 {
			t.Fatalf("fixed node moved on tick %d: (%f, %f)", i, b.X, b.Y)
		}
		if b.VX != 0 || b.VY != 0 {
			t.Fatalf("fixed node kept velocity on tick %d: (%f, %f)", i, b.VX, b.VY)
		}
	}
}

func TestSelfLoopEdgeIsHarmless(t *testing.T) {
	g := depGraph([]string{"a"}, [][2]string{{"a", "a"}})
	positions := graph.PositionTable{"a": {X: 10, Y: 10}}

	r := NewRefiner(DefaultPhysics())
	for i := 0; i < 150; i++ {
		r.Tick(g, positions)
	}

	if !finite(positions["a"]) {
		t.Fatalf("self-loop produced non-finite state: %+v", positions["a"])
	}
}

// TestRefinerStabilityProperty runs the full bounded refinement over random
// graphs, including duplicate positions, and requires every coordinate to
// stay finite.
func TestRefinerStabilityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("positions stay finite after a full run", prop.ForAll(
		func(n int, rawEdges []int, dupes bool) bool {
			ids := make([]string, n)
			nodes := make([]graph.Node, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("n%d", i)
				nodes[i] = graph.Node{ID: ids[i], Name: ids[i]}
			}
			edges := make([]graph.Edge, 0, len(rawEdges)/2)
			for i := 0; i+1 < len(rawEdges); i += 2 {
				edges = append(edges, graph.Edge{
					ID:     fmt.Sprintf("e%d", i),
					Source: ids[rawEdges[i]%n],
					Target: ids[rawEdges[i+1]%n],
					Type:   graph.RelationDependsOn,
				})
			}
			g := graph.New(nodes, edges)

			positions := make(graph.PositionTable, n)
			for i, id := range ids {
				if dupes {
					positions[id] = &graph.Position{X: 7, Y: 7}
				} else {
					positions[id] = &graph.Position{X: float64(i * 3), Y: float64(i % 5)}
				}
			}

			r := NewRefiner(DefaultPhysics())
			for i := 0; i < 150; i++ {
				r.Tick(g, positions)
			}
			for _, p := range positions {
				if !finite(p) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 25),
		gen.SliceOf(gen.IntRange(0, 1<<20)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
