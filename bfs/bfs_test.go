package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthodraw/bfs"
	"github.com/katalvlaran/orthodraw/core"
)

func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "a"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Fatalf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Fatalf("missing start: want ErrStartVertexNotFound, got %v", err)
	}

	g.AddVertex("a")
	if _, err := bfs.BFS(g, "a", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Fatalf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

func TestBFS_PathGraph(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		g.AddVertex(id)
	}
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	res, err := bfs.BFS(g, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if res.Order[i] != id {
			t.Fatalf("Order = %v, want %v", res.Order, want)
		}
	}
	if res.Depth["c"] != 2 {
		t.Fatalf("Depth[c] = %d, want 2", res.Depth["c"])
	}
}

func TestConnectedComponents(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddVertex(id)
	}
	g.AddEdge("a", "b")
	g.AddEdge("c", "d")

	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("want 2 components, got %d: %v", len(comps), comps)
	}
}
