// File: strong.go
// Role: Strongly-connected components via a path-based single-pass walk.
//
// Algorithm: two stacks replace Tarjan's low-link numbers. P holds the
// vertices on the current search path; S holds vertices visited but not yet
// assigned to a component. When a neighbor with a preorder index is found
// unassigned, P is popped down to that index, collapsing the path segment
// into the emerging component. A vertex whose frame finishes while it still
// tops P roots a finished component, which is popped off S. Each vertex is
// visited exactly once; components emerge in reverse topological order of
// the condensation graph.
package components

import "github.com/katalvlaran/conncomp/core"

// sccFrame is one entry of the explicit call stack: a vertex and a cursor
// into its outbound-neighbor snapshot. Frames replace recursion so search
// paths as deep as V cannot exhaust the goroutine stack.
type sccFrame struct {
	node string   // vertex being expanded
	nbs  []string // outbound neighbors, fixed at discovery
	next int      // index of the next neighbor to examine
}

// sccWalker holds the call-scoped state of one SCC computation.
type sccWalker struct {
	adj      map[string][]string // outbound adjacency snapshot
	preorder map[string]int      // vertex → discovery index
	assigned map[string]struct{} // vertices already placed in a component
	counter  int                 // next preorder index

	path  []string // P: vertices on the current search path
	unfin []string // S: visited but not yet assigned, in discovery order

	comps [][]string
}

// StronglyConnectedComponents partitions a directed graph into maximal sets
// of mutually reachable vertices. Undirected edges of a mixed graph count in
// both directions; a purely undirected graph is rejected with
// ErrUndirectedGraph before any traversal state is created.
//
// Special cases: a graph with zero vertices yields no components; a graph
// with vertices but zero edges yields one singleton per vertex without
// traversal. Self-loops and parallel edges are harmless.
//
// Components are emitted in reverse topological order of the condensation
// graph and together partition the vertex set.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E); recursion-free.
func StronglyConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() && !g.MixedEdges() {
		return nil, ErrUndirectedGraph
	}

	order := g.Vertices()
	if len(order) == 0 {
		return nil, nil
	}

	// Zero edges: every vertex is its own component, no traversal needed.
	if g.EdgeCount() == 0 {
		comps := make([][]string, 0, len(order))
		for _, id := range order {
			comps = append(comps, []string{id})
		}

		return comps, nil
	}

	w := &sccWalker{
		adj:      outboundIndex(g),
		preorder: make(map[string]int, len(order)),
		assigned: make(map[string]struct{}, len(order)),
	}

	for _, root := range order {
		if _, seen := w.preorder[root]; !seen {
			w.visit(root)
		}
	}

	return w.comps, nil
}

// visit runs the path-based walk from root using explicit frames.
func (w *sccWalker) visit(root string) {
	w.discover(root)
	frames := []sccFrame{{node: root, nbs: w.adj[root]}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]

		if f.next < len(f.nbs) {
			nb := f.nbs[f.next]
			f.next++

			if _, seen := w.preorder[nb]; !seen {
				// Tree edge: descend into the neighbor.
				w.discover(nb)
				frames = append(frames, sccFrame{node: nb, nbs: w.adj[nb]})

				continue
			}
			if _, done := w.assigned[nb]; !done {
				// Back or cross edge into the open part of the walk:
				// collapse the path down to the neighbor's preorder index.
				for len(w.path) > 0 && w.preorder[w.path[len(w.path)-1]] > w.preorder[nb] {
					w.path = w.path[:len(w.path)-1]
				}
			}

			continue
		}

		// All neighbors examined. If the vertex still tops the path, no back
		// edge pulled it down: it roots a finished component.
		if len(w.path) > 0 && w.path[len(w.path)-1] == f.node {
			w.path = w.path[:len(w.path)-1]
			w.emit(f.node)
		}
		frames = frames[:len(frames)-1]
	}
}

// discover assigns the next preorder index and pushes the vertex onto both
// stacks.
func (w *sccWalker) discover(id string) {
	w.preorder[id] = w.counter
	w.counter++
	w.path = append(w.path, id)
	w.unfin = append(w.unfin, id)
}

// emit pops the unfinished stack down to root (inclusive), marking each
// popped vertex assigned, and records the finished component.
func (w *sccWalker) emit(root string) {
	var comp []string
	for {
		n := len(w.unfin) - 1
		id := w.unfin[n]
		w.unfin = w.unfin[:n]
		w.assigned[id] = struct{}{}
		comp = append(comp, id)
		if id == root {
			break
		}
	}
	w.comps = append(w.comps, comp)
}
