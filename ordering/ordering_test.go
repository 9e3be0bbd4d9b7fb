package ordering_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/ordering"
)

func TestOrder_Errors(t *testing.T) {
	if _, err := ordering.Order(nil); !errors.Is(err, ordering.ErrGraphNil) {
		t.Fatalf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := ordering.Order(core.NewGraph()); !errors.Is(err, ordering.ErrEmptyGraph) {
		t.Fatalf("empty graph: want ErrEmptyGraph, got %v", err)
	}
}

// TestOrder_PathGraph exercises the 3-vertex path scenario: a balanced
// vertex b already splits its neighbors 1/1, so no move should fire and the
// insertion order a, b, c should survive unchanged.
func TestOrder_PathGraph(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		g.AddVertex(id)
	}
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	res, err := ordering.Order(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if res.Order[i] != id {
			t.Fatalf("Order = %v, want %v", res.Order, want)
		}
	}
	if len(res.Steps) != 0 {
		t.Fatalf("path graph is already balanced, want 0 steps, got %v", res.Steps)
	}
}

// TestOrder_StarGraph exercises a degree-4 hub with all leaves inserted
// after it: the hub's neighbors start entirely on the succ side, the
// maximal imbalance the worklist has to repair, and the ordering must still
// terminate with a permutation of all five vertices.
func TestOrder_StarGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("hub")
	for _, leaf := range []string{"a", "b", "c", "d"} {
		g.AddVertex(leaf)
		g.AddEdge("hub", leaf)
	}

	res, err := ordering.Order(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 5 {
		t.Fatalf("want 5 vertices in result, got %d", len(res.Order))
	}
	seen := make(map[string]bool, 5)
	for _, id := range res.Order {
		seen[id] = true
	}
	for _, id := range []string{"hub", "a", "b", "c", "d"} {
		if !seen[id] {
			t.Fatalf("Order missing vertex %q: %v", id, res.Order)
		}
	}
}
