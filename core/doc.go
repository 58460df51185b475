// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// What:
//
//   - Graph: in-memory adjacency structure supporting directed, undirected,
//     and per-edge mixed-direction edges, optional weights, self-loops, and
//     parallel edges — all chosen at construction time via GraphOption.
//   - Vertex: identifier plus free-form Metadata map.
//   - Edge: identified connection From→To with Weight and a Directed flag.
//
// Why:
//
//	The component walkers in package components consume this surface: stable
//	vertex enumeration, neighbor queries, counts, directionality classifiers,
//	a same-kind empty-graph factory (CloneEmpty), and cascading vertex removal.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending; this is the
//     natural enumeration order traversals seed from.
//   - Edges() and Neighbors() return edges sorted by Edge.ID ascending.
//
// Concurrency:
//
//	Two sync.RWMutex locks guard state (muVert for vertices, muEdgeAdj for
//	edges and adjacency), acquired in that order everywhere. Mutating a graph
//	while a traversal over it is in progress is the caller's race to lose.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed- per-edge direction override when mixed mode is off.
package core
