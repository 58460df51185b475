// File: edges.go
// Role: Edge lifecycle and queries, plus adjacency bucket helpers.
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID ascending.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps generated edge IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = "e"

// nextEdgeID atomically reserves the next textual edge identifier.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return edgeIDPrefix + strconv.FormatUint(n, 10)
}

// AddEdge creates a new edge from → to and returns its generated ID.
// Missing endpoints are created implicitly via AddVertex.
//
// Constraints, checked in order:
//   - empty endpoint IDs        ⇒ ErrEmptyVertexID
//   - non-zero weight, unweighted graph ⇒ ErrBadWeight
//   - self-loop, loops disabled ⇒ ErrLoopNotAllowed
//   - per-edge options, mixed mode disabled ⇒ ErrMixedEdgesNotAllowed
//   - duplicate endpoints, multi-edges disabled ⇒ ErrMultiEdgeNotAllowed
//
// Undirected edges are mirrored in the adjacency structure; directed edges
// appear only under their From endpoint.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	// 1. Validate inputs against configuration.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 2. Ensure endpoints exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3. Insert under the edge lock.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if bucket := g.adjacency[from][to]; len(bucket) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}

	// Mirror undirected non-loop edges for O(1) reverse lookups.
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge (and its undirected mirror).
// Returns ErrEdgeNotFound if eid is absent.
// Complexity: O(1) removal plus bucket cleanup.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is read-only by convention.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the current number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ensureAdjacency initializes adjacency[from] and adjacency[from][to] buckets.
// Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from its adjacency buckets, including the
// mirrored bucket for undirected non-loop edges.
// Must be called under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals.
// Must be called under the muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacency {
		for v, bucket := range toMap {
			if len(bucket) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacency, u)
		}
	}
}
