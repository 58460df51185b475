// File: largest.go
// Role: Largest-weak-component selection with early exit.
package components

import "github.com/katalvlaran/conncomp/core"

// LargestWeakComponent returns the weakly-connected component of g with the
// most vertices. Ties break toward the component discovered first in vertex
// enumeration order: a later component must be strictly larger to replace
// the champion.
//
// Early exit: after each finished component, if the champion is larger than
// the number of still-unvisited vertices, the remaining vertices could not
// form a bigger component even if they were all connected, so traversal
// halts there.
//
// A graph with zero vertices yields a nil component.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E) worst case, often less via early exit.
func LargestWeakComponent(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	total := g.VertexCount()
	seen := 0
	var best []string

	walkWeak(g, true, func(component []string, size int) bool {
		seen += size
		if size > len(best) {
			best = component
		}

		// Keep walking only while the unvisited remainder could still win.
		return len(best) <= total-seen
	})

	return best, nil
}
