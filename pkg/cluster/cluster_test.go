package cluster

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

func mkGraph(nodeIDs []string, pairs [][2]string) *graph.Graph {
	nodes := make([]graph.Node, len(nodeIDs))
	for i, id := range nodeIDs {
		nodes[i] = graph.Node{ID: id, Name: id}
	}
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{
			ID:     fmt.Sprintf("e%d", i),
			Source: p[0],
			Target: p[1],
			Type:   graph.RelationConnectsTo,
		}
	}
	return graph.New(nodes, edges)
}

func TestDetectChain(t *testing.T) {
	g := mkGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	clusters := Detect(g)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0]) != 3 {
		t.Errorf("cluster size = %d, want 3", len(clusters[0]))
	}
}

func TestDetectDisjointPairs(t *testing.T) {
	g := mkGraph([]string{"a", "b", "c", "d"}, [][2]string{{"a", "b"}, {"c", "d"}})

	clusters := Detect(g)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	for i, c := range clusters {
		if len(c) != 2 {
			t.Errorf("cluster %d size = %d, want 2", i, len(c))
		}
	}
}

func TestDetectIsolatedNodesAreSingletons(t *testing.T) {
	g := mkGraph([]string{"a", "b", "c"}, nil)

	clusters := Detect(g)
	if len(clusters) != 3 {
		t.Fatalf("expected 3 singleton clusters, got %d", len(clusters))
	}
	for _, c := range clusters {
		if len(c) != 1 {
			t.Errorf("expected singleton, got %v", c)
		}
	}
}

func TestDetectSelfLoop(t *testing.T) {
	g := mkGraph([]string{"a"}, [][2]string{{"a", "a"}})

	clusters := Detect(g)
	if len(clusters) != 1 || len(clusters[0]) != 1 {
		t.Fatalf("self-loop produced %v", clusters)
	}
}

func TestDetectEmptyGraph(t *testing.T) {
	if got := Detect(mkGraph(nil, nil)); len(got) != 0 {
		t.Fatalf("empty graph produced %v", got)
	}
}

// TestDetectPartitionProperty verifies that for any random edge set the
// clusters form an exact partition of the node set.
func TestDetectPartitionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("clusters partition the node set", prop.ForAll(
		func(n int, rawPairs []int) bool {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("n%d", i)
			}
			pairs := make([][2]string, 0, len(rawPairs)/2)
			for i := 0; i+1 < len(rawPairs); i += 2 {
				pairs = append(pairs, [2]string{
					ids[rawPairs[i]%n],
					ids[rawPairs[i+1]%n],
				})
			}

			seen := make(map[string]int)
			for _, c := range Detect(mkGraph(ids, pairs)) {
				if len(c) == 0 {
					return false
				}
				for _, id := range c {
					seen[id]++
				}
			}
			if len(seen) != n {
				return false
			}
			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 40),
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.TestingRun(t)
}
