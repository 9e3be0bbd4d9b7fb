package portassign_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/ordering"
	"github.com/katalvlaran/orthodraw/portassign"
	"github.com/katalvlaran/orthodraw/roles"
)

func buildPath(t *testing.T) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		g.AddVertex(id)
	}
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	res, err := ordering.Order(g)
	if err != nil {
		t.Fatalf("ordering.Order: %v", err)
	}
	if err := roles.Label(g, res.Order); err != nil {
		t.Fatalf("roles.Label: %v", err)
	}

	return g, res.Order
}

func TestAssign_Errors(t *testing.T) {
	if err := portassign.Assign(nil, nil); !errors.Is(err, portassign.ErrGraphNil) {
		t.Fatalf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := core.NewGraph()
	g.AddVertex("a")
	if err := portassign.Assign(g, []string{"a", "b"}); !errors.Is(err, portassign.ErrOrderMismatch) {
		t.Fatalf("mismatched order: want ErrOrderMismatch, got %v", err)
	}
}

// TestAssign_PathGraph exercises the low-degree general case of table3
// end to end: every arc should come out with a non-zero orientation and a
// valid color in {0,1,2}.
func TestAssign_PathGraph(t *testing.T) {
	g, order := buildPath(t)

	if err := portassign.Assign(g, order); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	for _, arc := range g.Arcs() {
		if arc.Orientation == core.OrientationUnset {
			t.Fatalf("arc %s->%s left with unset orientation", arc.Start, arc.End)
		}
		if arc.Color < 0 || arc.Color > 2 {
			t.Fatalf("arc %s->%s has invalid color %d", arc.Start, arc.End, arc.Color)
		}
	}
}

// TestAssign_StarGraph exercises table3's named [4,0]/[0,4] layout and the
// auxiliary-graph clique construction for a degree-4 hub.
func TestAssign_StarGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("hub")
	for _, leaf := range []string{"a", "b", "c", "d"} {
		g.AddVertex(leaf)
		g.AddEdge("hub", leaf)
	}
	order := []string{"hub", "a", "b", "c", "d"}
	if err := roles.Label(g, order); err != nil {
		t.Fatalf("roles.Label: %v", err)
	}

	if err := portassign.Assign(g, order); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	// table3's [4,0] layout puts the hub's nearest successor (a) in the lone
	// negative slot and the rest (b, c, d) in the positive slots.
	wantOrientation := map[string]core.Orientation{"a": -1, "b": 1, "c": 1, "d": 1}
	colors := map[int]bool{}
	for _, leaf := range []string{"a", "b", "c", "d"} {
		arc, err := g.GetArc("hub", leaf)
		if err != nil {
			t.Fatalf("GetArc: %v", err)
		}
		if arc.Orientation != wantOrientation[leaf] {
			t.Fatalf("hub->%s orientation = %d, want %d", leaf, arc.Orientation, wantOrientation[leaf])
		}
		colors[int(arc.Color)] = true
	}
	if len(colors) < 3 {
		t.Fatalf("expected the hub's 4 arcs to need all 3 colors via clique constraints, got %v", colors)
	}
}
