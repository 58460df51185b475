// File: clone.go
// Role: Cloning graph instances.
package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration flags but no
// vertices and no edges: the "empty graph of the same kind" factory used by
// subgraph extraction. The textual edge-ID sequence starts fresh.
// Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return NewGraph(opts...)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Vertex Metadata maps are shared, not deep-copied. Edge IDs
// are preserved, and the ID counter is carried over so future AddEdge calls
// on the clone cannot collide with copied IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muVert.RLock()
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return clone
}
