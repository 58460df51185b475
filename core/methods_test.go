package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/conncomp/core"
)

// TestGraph_VertexLifecycle exercises AddVertex/HasVertex/Vertex/RemoveVertex
// contracts: empty-ID rejection, idempotent insertion, sentinel errors.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(empty) = %v; want ErrEmptyVertexID", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A) failed: %v", err)
	}
	if !g.HasVertex("A") {
		t.Fatal("HasVertex(A) = false after AddVertex")
	}
	// Duplicate insert is a no-op.
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("duplicate AddVertex(A) = %v; want nil", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount = %d; want 1", got)
	}

	v, err := g.Vertex("A")
	if err != nil {
		t.Fatalf("Vertex(A) failed: %v", err)
	}
	if v.Metadata == nil {
		t.Fatal("Vertex(A).Metadata is nil; want initialized map")
	}
	if _, err = g.Vertex("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Vertex(missing) = %v; want ErrVertexNotFound", err)
	}

	if err = g.RemoveVertex("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("RemoveVertex(missing) = %v; want ErrVertexNotFound", err)
	}
	if err = g.RemoveVertex("A"); err != nil {
		t.Fatalf("RemoveVertex(A) failed: %v", err)
	}
	if g.HasVertex("A") {
		t.Fatal("HasVertex(A) = true after RemoveVertex")
	}
}

// TestGraph_VerticesSorted locks in the deterministic enumeration order the
// component walkers seed from.
func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s) failed: %v", id, err)
		}
	}

	want := []string{"alpha", "bravo", "charlie", "delta"}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v; want %v", got, want)
	}
}

// TestGraph_AddEdgeConstraints verifies the constraint sentinels in order:
// weight, loop, mixed-override, multi-edge.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.AddEdge("A", "B", 7); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("weighted edge on unweighted graph = %v; want ErrBadWeight", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("self-loop = %v; want ErrLoopNotAllowed", err)
	}
	if _, err := g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)); !errors.Is(err, core.ErrMixedEdgesNotAllowed) {
		t.Fatalf("per-edge override = %v; want ErrMixedEdgesNotAllowed", err)
	}

	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge(A,B) failed: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("parallel edge = %v; want ErrMultiEdgeNotAllowed", err)
	}
	// Undirected mirror: the reverse duplicate is rejected too.
	if _, err := g.AddEdge("B", "A", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("mirrored parallel edge = %v; want ErrMultiEdgeNotAllowed", err)
	}
}

// TestGraph_AddEdgeAutoVertices verifies endpoints are created implicitly.
func TestGraph_AddEdgeAutoVertices(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("U", "V", 0)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if !g.HasVertex("U") || !g.HasVertex("V") {
		t.Fatal("AddEdge did not create endpoints")
	}
	if e, gerr := g.GetEdge(eid); gerr != nil || e.From != "U" || e.To != "V" {
		t.Fatalf("GetEdge(%s) = %+v, %v", eid, e, gerr)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d; want 1", g.EdgeCount())
	}
}

// TestGraph_NeighborPolicy verifies the outgoing-only policy for directed
// edges and mirroring for undirected ones.
func TestGraph_NeighborPolicy(t *testing.T) {
	g := core.NewMixedGraph()
	if _, err := g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)); err != nil {
		t.Fatalf("AddEdge(A→B) failed: %v", err)
	}
	if _, err := g.AddEdge("B", "C", 0, core.WithEdgeDirected(false)); err != nil {
		t.Fatalf("AddEdge(B–C) failed: %v", err)
	}

	// B sees outgoing C and undirected-mirrored nothing from A (A→B is
	// directed, so it is A's neighbor view, not B's).
	got, err := g.NeighborIDs("B")
	if err != nil {
		t.Fatalf("NeighborIDs(B) failed: %v", err)
	}
	if want := []string{"C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("NeighborIDs(B) = %v; want %v", got, want)
	}

	// C sees B through the undirected edge's mirror.
	got, err = g.NeighborIDs("C")
	if err != nil {
		t.Fatalf("NeighborIDs(C) failed: %v", err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("NeighborIDs(C) = %v; want %v", got, want)
	}

	if _, err = g.NeighborIDs("ghost"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("NeighborIDs(ghost) = %v; want ErrVertexNotFound", err)
	}
}

// TestGraph_RemoveVertexCascades verifies incident edges disappear with
// their vertex — the contract crop-in-place relies on.
func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	if _, err := g.AddEdge("hub", "a", 0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if _, err := g.AddEdge("b", "hub", 0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	if err := g.RemoveVertex("hub"); err != nil {
		t.Fatalf("RemoveVertex(hub) failed: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount after cascade = %d; want 1", g.EdgeCount())
	}
	if !g.HasEdge("a", "b") {
		t.Fatal("unrelated edge a→b vanished")
	}
}

// TestGraph_RemoveEdge verifies single-edge removal and its sentinel.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err = g.RemoveEdge(eid); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	if g.HasEdge("A", "B") || g.HasEdge("B", "A") {
		t.Fatal("edge still visible after RemoveEdge")
	}
	if err = g.RemoveEdge(eid); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("second RemoveEdge = %v; want ErrEdgeNotFound", err)
	}
}

// TestGraph_EdgesSorted locks in the deterministic edge enumeration order.
func TestGraph_EdgesSorted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"x", "y"}, {"y", "z"}, {"z", "x"}} {
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge(%v) failed: %v", pair, err)
		}
	}

	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("Edges() length = %d; want 3", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID >= edges[i].ID {
			t.Fatalf("Edges() not sorted by ID: %s before %s", edges[i-1].ID, edges[i].ID)
		}
	}
}
