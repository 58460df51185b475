// File: weak.go
// Role: Weak-component enumeration (push- and pull-style).
//
// Algorithm: iterative depth-first traversal with an explicit stack over the
// undirected-sense adjacency, seeded from core.Vertices() in order. Each
// vertex lands in exactly one component (partition property).
package components

import "github.com/katalvlaran/conncomp/core"

// walkWeak is the traversal primitive every weak-component operation derives
// from. It emits one callback per finished component; returning false from
// visit stops enumeration immediately. When collect is false the membership
// slice is never materialized and visit receives a nil slice.
//
// All working state (visited set, stack, adjacency index) is scoped to this
// call; nothing survives the return.
// Complexity: Time O(V + E), Memory O(V + E).
func walkWeak(g *core.Graph, collect bool, visit func(component []string, size int) bool) {
	order := g.Vertices()
	adj := undirectedIndex(g)

	visited := make(map[string]struct{}, len(order))
	stack := make([]string, 0, 64)

	for _, root := range order {
		if _, ok := visited[root]; ok {
			continue
		}

		var component []string
		size := 0

		// Explicit stack keeps deep components off the call stack.
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[n]; ok {
				continue // pushed more than once before first pop
			}
			visited[n] = struct{}{}
			size++
			if collect {
				component = append(component, n)
			}
			for _, nb := range adj[n] {
				if _, ok := visited[nb]; !ok {
					stack = append(stack, nb)
				}
			}
		}

		if !visit(component, size) {
			return
		}
	}
}

// ForEachWeakComponent invokes visit once per weakly-connected component of
// g, passing the component's member vertex IDs in discovery order. Returning
// false from visit stops enumeration early. A graph with zero vertices
// yields no invocations. The graph itself is never mutated.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E).
func ForEachWeakComponent(g *core.Graph, visit func(component []string) bool) error {
	if g == nil {
		return ErrGraphNil
	}

	walkWeak(g, true, func(component []string, _ int) bool {
		return visit(component)
	})

	return nil
}

// ForEachWeakComponentSize invokes visit once per weakly-connected component
// with the component's vertex count only, never materializing membership
// slices. Returning false from visit stops enumeration early.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E).
func ForEachWeakComponentSize(g *core.Graph, visit func(size int) bool) error {
	if g == nil {
		return ErrGraphNil
	}

	walkWeak(g, false, func(_ []string, size int) bool {
		return visit(size)
	})

	return nil
}

// WeakComponents returns all weakly-connected components of g. The returned
// slices partition the vertex set: every vertex appears in exactly one
// component. A graph with zero vertices yields a nil slice.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E).
func WeakComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var comps [][]string
	walkWeak(g, true, func(component []string, _ int) bool {
		comps = append(comps, component)

		return true
	})

	return comps, nil
}

// WeakComponentCount returns the number of weakly-connected components of g
// without materializing any of them.
// Returns ErrGraphNil if g is nil.
// Complexity: Time O(V + E), Memory O(V + E).
func WeakComponentCount(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	count := 0
	walkWeak(g, false, func(_ []string, _ int) bool {
		count++

		return true
	})

	return count, nil
}
