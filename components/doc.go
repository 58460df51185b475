// Package components discovers the connectivity structure of a core.Graph:
// weakly-connected components for any graph, and strongly-connected
// components (SCCs) for directed graphs.
//
// What:
//
//   - ForEachWeakComponent / ForEachWeakComponentSize: push-style enumeration
//     of weak components (full membership, or size only).
//   - WeakComponents / WeakComponentCount: pull-style collection and counting,
//     derived from the callback primitive.
//   - LargestWeakComponent: the single biggest weak component, with an
//     early-exit bound that halts traversal once no undiscovered component
//     can unseat the current champion.
//   - LargestWeakComponentSubgraph: a fresh graph of the same kind holding
//     only the largest weak component (vertices with metadata, edges with
//     weight and directedness preserved).
//   - CropToLargestWeakComponent: in-place deletion of every vertex outside
//     the largest weak component.
//   - StronglyConnectedComponents: path-based single-pass SCC partitioning
//     of a directed graph, each vertex visited exactly once.
//
// Why:
//
//   - Isolate the "giant component" before running expensive analyses
//   - Detect unreachable islands in dependency or communication graphs
//   - Collapse directed cycles (SCCs emerge in reverse topological order
//     of the condensation, ready for condensation-style processing)
//
// Determinism:
//
//	All walkers seed from core.Vertices() (sorted lex asc) and expand
//	neighbors in core.Edges() order (sorted by edge ID), so component
//	discovery order — and therefore the largest-component tie-break
//	("first found wins") — is stable across runs. Traversal is strictly
//	sequential; there is no parallel enumeration to disturb it.
//
// Concurrency:
//
//	Every call owns its visited set, stacks, and adjacency index
//	exclusively; nothing is shared across calls. Independent traversals may
//	run concurrently on graphs that are not mutated meanwhile. There is no
//	cancellation: a call runs to completion or to its early-exit condition.
//
// Complexity:
//
//   - Weak walkers:  Time O(V + E), Memory O(V + E) for the per-call index.
//   - Strong walker: Time O(V + E), Memory O(V + E); recursion-free.
//
// Errors:
//
//	ErrGraphNil        - the graph argument is nil (checked before any
//	                     traversal state is allocated).
//	ErrUndirectedGraph - strong components requested on a purely undirected
//	                     graph; on such a graph mutual reachability is just
//	                     the weak-component answer, and conflating the two
//	                     would hide caller bugs.
//
// Both are fatal to the call: no partial results are returned.
package components
