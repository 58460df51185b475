// Package components: sentinel errors and call-scoped adjacency indexes.
package components

import (
	"errors"

	"github.com/katalvlaran/conncomp/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any
	// component operation.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrUndirectedGraph is returned when strongly-connected components are
	// requested on a purely undirected graph (undirected default and no
	// per-edge direction overrides).
	ErrUndirectedGraph = errors.New("components: strong components require a directed graph")
)

// undirectedIndex builds a per-call adjacency index in the undirected sense:
// every edge connects both endpoints regardless of its Directed flag.
// Neighbor order follows core.Edges() (edge ID asc), keeping traversal
// deterministic. Duplicates from parallel edges are harmless: traversal
// skips visited vertices.
// Complexity: O(V + E).
func undirectedIndex(g *core.Graph) map[string][]string {
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// outboundIndex builds a per-call adjacency index in the directed sense:
// directed edges connect From → To only; undirected edges (possible in
// mixed graphs) connect both ways. Neighbor order follows core.Edges().
// Complexity: O(V + E).
func outboundIndex(g *core.Graph) map[string][]string {
	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if !e.Directed && e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}
