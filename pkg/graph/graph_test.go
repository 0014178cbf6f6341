package graph

import "testing"

func TestNewDropsDanglingEdges(t *testing.T) {
	nodes := []Node{
		{ID: "a", Name: "Core Router"},
		{ID: "b", Name: "Firewall"},
	}
	edges := []Edge{
		{ID: "e1", Source: "a", Target: "b", Type: RelationDependsOn},
		{ID: "e2", Source: "a", Target: "ghost", Type: RelationSupports},
		{ID: "e3", Source: "ghost", Target: "b", Type: RelationContains},
	}

	g := New(nodes, edges)

	if len(g.Edges) != 1 {
		t.Fatalf("expected 1 surviving edge, got %d", len(g.Edges))
	}
	if g.Edges[0].ID != "e1" {
		t.Errorf("wrong edge survived: %s", g.Edges[0].ID)
	}
	if g.DroppedEdges != 2 {
		t.Errorf("expected 2 dropped edges, got %d", g.DroppedEdges)
	}
}

func TestNodeLookup(t *testing.T) {
	g := New([]Node{{ID: "a", Name: "DB Server", RiskCount: 3}}, nil)

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("node a not found")
	}
	if n.RiskCount != 3 {
		t.Errorf("risk count = %d, want 3", n.RiskCount)
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("lookup of missing node succeeded")
	}
}

func TestNeighborsIsUndirected(t *testing.T) {
	g := New(
		[]Node{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}},
		[]Edge{{ID: "e", Source: "a", Target: "b", Type: RelationConnectsTo}},
	)

	adj := g.Neighbors()
	if len(adj["a"]) != 1 || adj["a"][0] != "b" {
		t.Errorf("a neighbors = %v", adj["a"])
	}
	if len(adj["b"]) != 1 || adj["b"][0] != "a" {
		t.Errorf("b neighbors = %v", adj["b"])
	}
}

func TestRelationTypeValid(t *testing.T) {
	for _, rt := range RelationTypes() {
		if !rt.Valid() {
			t.Errorf("%s reported invalid", rt)
		}
	}
	if RelationType("owns").Valid() {
		t.Error("unknown relation type reported valid")
	}
}

func TestPositionTableBounds(t *testing.T) {
	table := PositionTable{
		"a": {X: -10, Y: 5},
		"b": {X: 30, Y: -20},
		"c": {X: 0, Y: 0},
	}

	b, ok := table.Bounds()
	if !ok {
		t.Fatal("bounds not ok for non-empty table")
	}
	if b.MinX != -10 || b.MaxX != 30 || b.MinY != -20 || b.MaxY != 5 {
		t.Errorf("unexpected bounds: %+v", b)
	}
	if b.Width() != 40 || b.Height() != 25 {
		t.Errorf("width/height = %f/%f", b.Width(), b.Height())
	}

	if _, ok := (PositionTable{}).Bounds(); ok {
		t.Error("empty table reported bounds")
	}
}
