package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthodraw/builder"
	"github.com/katalvlaran/orthodraw/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	if _, err := builder.BuildGraph(nil, nil); !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("want ErrConstructFailed, got %v", err)
	}
}

func TestPath(t *testing.T) {
	if _, err := builder.BuildGraph(nil, builder.Path(1)); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Fatalf("n=1: want ErrTooFewVertices, got %v", err)
	}

	g, err := builder.BuildGraph(nil, builder.Path(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 4 {
		t.Fatalf("VertexCount = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("EdgeCount = %d, want 3", g.EdgeCount())
	}
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 5 {
		t.Fatalf("EdgeCount = %d, want 5", g.EdgeCount())
	}
}

func TestStar_RejectsOversizedHub(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Star(9))
	if !errors.Is(err, core.ErrDegreeExceeded) {
		t.Fatalf("want ErrDegreeExceeded, got %v", err)
	}
}

func TestStar_MaxHub(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 7 || g.EdgeCount() != 6 {
		t.Fatalf("got V=%d E=%d, want V=7 E=6", g.VertexCount(), g.EdgeCount())
	}
}

func TestWheel(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// C_5 contributes 5 edges, plus 5 spokes.
	if g.EdgeCount() != 10 {
		t.Fatalf("EdgeCount = %d, want 10", g.EdgeCount())
	}
}

func TestComplete_RejectsOversized(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Complete(8))
	if !errors.Is(err, core.ErrDegreeExceeded) {
		t.Fatalf("want ErrDegreeExceeded, got %v", err)
	}
}

func TestComplete_K4(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 6 {
		t.Fatalf("EdgeCount = %d, want 6", g.EdgeCount())
	}
}

func TestPlatonicSolid_Tetrahedron(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Tetrahedron, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 4 || g.EdgeCount() != 6 {
		t.Fatalf("got V=%d E=%d, want V=4 E=6", g.VertexCount(), g.EdgeCount())
	}
}

func TestPlatonicSolid_IcosahedronWithCenter(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Icosahedron, true))
	if !errors.Is(err, core.ErrDegreeExceeded) {
		t.Fatalf("icosahedron shell has 12 vertices, a hub must be rejected: got %v", err)
	}
}

func TestPlatonicSolid_OctahedronWithCenter(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Octahedron, true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 7 {
		t.Fatalf("VertexCount = %d, want 7 (6 shell + hub)", g.VertexCount())
	}
}

func TestPlatonicSolid_Unknown(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.PlatonicName(99), false))
	if !errors.Is(err, builder.ErrUnknownSolid) {
		t.Fatalf("want ErrUnknownSolid, got %v", err)
	}
}

func TestRandomRegular_NeedsRand(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomRegular(6, 3))
	if !errors.Is(err, builder.ErrNeedRandSource) {
		t.Fatalf("want ErrNeedRandSource, got %v", err)
	}
}

func TestRandomRegular_OddProduct(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, err := builder.BuildGraph(opts, builder.RandomRegular(5, 3))
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("n*d=15 is odd: want ErrConstructFailed, got %v", err)
	}
}

func TestRandomRegular_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(6, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 6 {
		t.Fatalf("VertexCount = %d, want 6", g.VertexCount())
	}
	if g.EdgeCount() != 9 {
		t.Fatalf("EdgeCount = %d, want 9 (6*3/2)", g.EdgeCount())
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, err := builder.BuildGraph(opts, builder.RandomSparse(5, 1.5))
	if !errors.Is(err, builder.ErrInvalidProbability) {
		t.Fatalf("want ErrInvalidProbability, got %v", err)
	}
}

func TestRandomSparse_ZeroProbabilityIsEmpty(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	g, err := builder.BuildGraph(opts, builder.RandomSparse(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestRandomSparse_FullProbabilityRespectsMaxDegree(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3)}
	g, err := builder.BuildGraph(opts, builder.RandomSparse(10, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// p=1 would want K_10 (degree 9 each), which core.Graph cannot hold;
	// every vertex must have been capped at MaxDegree instead.
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			t.Fatalf("Degree(%s): %v", id, err)
		}
		if d > core.MaxDegree {
			t.Fatalf("vertex %s degree %d exceeds MaxDegree", id, d)
		}
	}
}

func TestWithPrefixedIDs(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithPrefixedIDs("v")}
	g, err := builder.BuildGraph(opts, builder.Path(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"v0", "v1", "v2"} {
		if !g.HasVertex(id) {
			t.Fatalf("missing vertex %s", id)
		}
	}
}
