// Package cluster partitions the asset graph into connected components.
package cluster

import (
	"container/list"

	"github.com/quaygrc/assetgraph/pkg/graph"
)

// Detect returns the connected components of g as lists of node ids.
// Traversal is an iterative BFS over the undirected adjacency relation, so
// arbitrarily large graphs cannot blow the stack. The returned clusters
// partition the node set exactly: every node appears in one cluster, a node
// with no edges forms a singleton. Cluster order and the order of ids within
// a cluster follow the payload node order.
func Detect(g *graph.Graph) [][]string {
	adj := g.Neighbors()
	visited := make(map[string]bool, len(g.Nodes))
	clusters := make([][]string, 0)

	for _, start := range g.Nodes {
		if visited[start.ID] {
			continue
		}
		visited[start.ID] = true

		members := make([]string, 0, 1)
		queue := list.New()
		queue.PushBack(start.ID)

		for queue.Len() > 0 {
			id := queue.Remove(queue.Front()).(string)
			members = append(members, id)

			for _, next := range adj[id] {
				if visited[next] {
					continue
				}
				visited[next] = true
				queue.PushBack(next)
			}
		}

		clusters = append(clusters, members)
	}

	return clusters
}
