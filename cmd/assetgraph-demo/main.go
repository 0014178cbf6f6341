// assetgraph-demo writes a sample asset payload: a small company inventory
// with a web tier, databases, network gear, and a few isolated assets, wired
// together with every relation type so the viewer has something to show.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

func main() {
	out := flag.String("out", "demo-assets.json", "output payload file")
	flag.Parse()

	assets := []struct {
		name        string
		assetType   string
		criticality string
		orgUnit     string
		risks       int
	}{
		{"Customer Portal", "Web Application", "Critical", "Engineering", 3},
		{"Portal API", "Web Service", "High", "Engineering", 1},
		{"Orders Database", "Database", "Critical", "Engineering", 2},
		{"Orders DB Replica", "Database", "High", "Engineering", 0},
		{"Legacy Orders DB", "Database", "Low", "Engineering", 4},
		{"Payments Gateway", "Web Service", "Critical", "Finance", 1},
		{"Core Switch", "Network Device", "High", "IT Operations", 0},
		{"Edge Firewall", "Network Device", "Critical", "IT Operations", 1},
		{"App Server 1", "Server", "High", "IT Operations", 0},
		{"App Server 2", "Server", "High", "IT Operations", 0},
		{"HR System", "Web Application", "Medium", "Human Resources", 2},
		{"HR Database", "Database", "Medium", "Human Resources", 0},
		{"Office Printer", "Peripheral", "Low", "Facilities", 0},
		{"Conference Display", "Peripheral", "Low", "Facilities", 0},
	}

	nodes := make([]graph.Node, len(assets))
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = uuid.NewString()
		nodes[i] = graph.Node{
			ID:              ids[i],
			Name:            a.name,
			AssetTypeName:   a.assetType,
			CriticalityName: a.criticality,
			OrgUnitName:     a.orgUnit,
			RiskCount:       a.risks,
		}
	}

	relations := []struct {
		from, to int
		relType  graph.RelationType
		desc     string
	}{
		{0, 1, graph.RelationDependsOn, "portal calls the API"},
		{1, 2, graph.RelationDependsOn, "API reads order data"},
		{1, 5, graph.RelationConnectsTo, "payment capture"},
		{3, 2, graph.RelationBackupOf, "streaming replica"},
		{2, 4, graph.RelationReplaces, "migrated off the legacy schema"},
		{8, 1, graph.RelationSupports, "primary app host"},
		{9, 1, graph.RelationSupports, "secondary app host"},
		{6, 8, graph.RelationConnectsTo, ""},
		{6, 9, graph.RelationConnectsTo, ""},
		{7, 6, graph.RelationContains, "firewall zone"},
		{10, 11, graph.RelationDependsOn, "employee records"},
	}

	edges := make([]graph.Edge, len(relations))
	for i, r := range relations {
		edges[i] = graph.Edge{
			ID:          uuid.NewString(),
			Source:      ids[r.from],
			Target:      ids[r.to],
			Type:        r.relType,
			Description: r.desc,
		}
	}

	payload := graph.Payload{Nodes: nodes, Edges: edges}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		log.Fatalf("encode payload: %v", err)
	}

	fmt.Printf("wrote %d assets and %d relationships to %s\n", len(nodes), len(edges), *out)
}
