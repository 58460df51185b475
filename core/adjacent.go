// File: adjacent.go
// Role: Neighborhood queries.
//
// Neighborhood policy:
//   - Directed edges: included only as outgoing (e.From == id).
//   - Undirected edges: included from either endpoint; self-loops appear once.
package core

import "sort"

// Neighbors returns all edges incident to id under the neighborhood policy,
// sorted by Edge.ID ascending.
// Returns ErrEmptyVertexID / ErrVertexNotFound on bad input.
// Complexity: O(d log d) where d is the incident-edge count.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order matches mutators (muVert → muEdgeAdj) so the vertex cannot
	// vanish between validation and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			// Directed policy: outgoing only.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted lex asc.
// For directed edges only outgoing neighbors are included, consistent with
// the Neighbors policy.
// Complexity: O(d + k log k) for d incident edges and k unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
