// File: subgraph.go
// Role: Subgraph extraction and in-place cropping built atop component
// membership.
package components

import "github.com/katalvlaran/conncomp/core"

// LargestWeakComponentSubgraph builds a new graph of the same kind as g
// (same directedness, weight, loop, multi-edge and mixed-mode flags)
// containing only the largest weak component: every member vertex with its
// metadata, and every edge of g whose source endpoint is a member, with
// weight and directedness preserved. Because a weak component is closed
// under reachability in both directions, such an edge always has its target
// inside the component too — the result has no dangling edges.
//
// Edge IDs are identity, not an attribute: the new graph assigns its own.
// The source graph is never mutated. An empty source yields an empty result.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E).
func LargestWeakComponentSubgraph(g *core.Graph) (*core.Graph, error) {
	component, err := LargestWeakComponent(g)
	if err != nil {
		return nil, err
	}

	out := g.CloneEmpty()
	member := make(map[string]struct{}, len(component))

	// 1. Copy member vertices with their metadata.
	for _, id := range component {
		member[id] = struct{}{}
		if err = out.AddVertex(id); err != nil {
			return nil, err
		}
		src, verr := g.Vertex(id)
		if verr != nil {
			return nil, verr
		}
		dst, verr := out.Vertex(id)
		if verr != nil {
			return nil, verr
		}
		for k, v := range src.Metadata {
			dst.Metadata[k] = v
		}
	}

	// 2. Copy edges rooted inside the component.
	for _, e := range g.Edges() {
		if _, ok := member[e.From]; !ok {
			continue
		}
		if out.MixedEdges() {
			_, err = out.AddEdge(e.From, e.To, e.Weight, core.WithEdgeDirected(e.Directed))
		} else {
			_, err = out.AddEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// CropToLargestWeakComponent deletes every vertex outside the largest weak
// component from g, in place. Incident edges cascade away with each removed
// vertex (core.RemoveVertex's contract). The mutation is irreversible; take
// a Clone first if the original topology still matters.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V·E) worst case from per-vertex cascade scans.
func CropToLargestWeakComponent(g *core.Graph) error {
	component, err := LargestWeakComponent(g)
	if err != nil {
		return err
	}

	member := make(map[string]struct{}, len(component))
	for _, id := range component {
		member[id] = struct{}{}
	}

	for _, id := range g.Vertices() {
		if _, ok := member[id]; ok {
			continue
		}
		if err = g.RemoveVertex(id); err != nil {
			return err
		}
	}

	return nil
}
