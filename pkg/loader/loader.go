// Package loader reads graph payload documents produced by the dashboard's
// data-fetching layer and derives the summary counts shown next to the view.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

var validate = validator.New()

// Read decodes and validates a graph payload. Unknown relation types and
// negative risk counts are validation errors; dangling edges are not (they
// are filtered later, silently).
func Read(r io.Reader) (*graph.Payload, error) {
	var p graph.Payload
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return &p, nil
}

// ReadFile reads a payload from a JSON file.
func ReadFile(path string) (*graph.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Summary holds the headline counts displayed beside the graph.
type Summary struct {
	TotalAssets        int
	TotalRelationships int
	ConnectedAssets    int
	IsolatedAssets     int
}

// Summarize computes the summary for a payload. Relationship and
// connectivity counts ignore dangling edges, matching what the view draws.
func Summarize(p *graph.Payload) Summary {
	g := graph.New(p.Nodes, p.Edges)
	touched := make(map[string]bool)
	for _, e := range g.Edges {
		touched[e.Source] = true
		touched[e.Target] = true
	}
	return Summary{
		TotalAssets:        len(g.Nodes),
		TotalRelationships: len(g.Edges),
		ConnectedAssets:    len(touched),
		IsolatedAssets:     len(g.Nodes) - len(touched),
	}
}
