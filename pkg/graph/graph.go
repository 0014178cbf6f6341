// Package graph holds the passive data model for the asset-relationship
// view: immutable node/edge snapshots fetched by the surrounding dashboard,
// plus the mutable per-node position state the layout engine works on.
package graph

// RelationType classifies a dependency edge between two assets.
type RelationType string

const (
	RelationDependsOn  RelationType = "depends_on"
	RelationSupports   RelationType = "supports"
	RelationConnectsTo RelationType = "connects_to"
	RelationContains   RelationType = "contains"
	RelationBackupOf   RelationType = "backup_of"
	RelationReplaces   RelationType = "replaces"
)

// RelationTypes returns the fixed enumeration in display order.
func RelationTypes() []RelationType {
	return []RelationType{
		RelationDependsOn,
		RelationSupports,
		RelationConnectsTo,
		RelationContains,
		RelationBackupOf,
		RelationReplaces,
	}
}

// Valid reports whether t is one of the known relation types.
func (t RelationType) Valid() bool {
	switch t {
	case RelationDependsOn, RelationSupports, RelationConnectsTo,
		RelationContains, RelationBackupOf, RelationReplaces:
		return true
	}
	return false
}

// Node is an immutable snapshot of a managed asset. Nullable classification
// fields from the backend arrive as empty strings.
type Node struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	AssetTypeName   string `json:"asset_type_name"`
	CriticalityName string `json:"criticality_name"`
	OrgUnitName     string `json:"org_unit_name"`
	RiskCount       int    `json:"risk_count" validate:"min=0"`
}

// Edge is a directed relationship between two assets, referenced by node id.
type Edge struct {
	ID          string       `json:"id" validate:"required"`
	Source      string       `json:"source" validate:"required"`
	Target      string       `json:"target" validate:"required"`
	Type        RelationType `json:"type" validate:"required,oneof=depends_on supports connects_to contains backup_of replaces"`
	Description string       `json:"description"`
}

// Payload is the raw graph document supplied by the data-fetching layer,
// fetched once per view entry and after any relationship create/delete.
type Payload struct {
	Nodes []Node `json:"nodes" validate:"dive"`
	Edges []Edge `json:"edges" validate:"dive"`
}

// Graph is the node/edge set for the current view. Edges whose source or
// target is absent from the node set are dropped at construction, so every
// edge reaching layout or rendering has both endpoints present.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// DroppedEdges counts dangling edges filtered out of the payload.
	DroppedEdges int

	byID map[string]int
}

// New builds a Graph from a payload's node and edge slices, preserving
// payload order (layout tie-breaks depend on it).
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		Nodes: nodes,
		byID:  make(map[string]int, len(nodes)),
	}
	for i, n := range nodes {
		g.byID[n.ID] = i
	}
	g.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := g.byID[e.Source]; !ok {
			g.DroppedEdges++
			continue
		}
		if _, ok := g.byID[e.Target]; !ok {
			g.DroppedEdges++
			continue
		}
		g.Edges = append(g.Edges, e)
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Has reports whether a node with the given id is present.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Neighbors builds the undirected adjacency relation: every edge
// contributes both directions. Adjacency lists keep edge order.
func (g *Graph) Neighbors() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return adj
}
