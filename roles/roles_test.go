package roles_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/roles"
)

func TestLabel_Errors(t *testing.T) {
	if err := roles.Label(nil, nil); !errors.Is(err, roles.ErrGraphNil) {
		t.Fatalf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := core.NewGraph()
	g.AddVertex("a")
	if err := roles.Label(g, []string{"a", "b"}); !errors.Is(err, roles.ErrOrderMismatch) {
		t.Fatalf("mismatched order: want ErrOrderMismatch, got %v", err)
	}
}

// TestLabel_Type40MarksFirstSuccessorMovement builds a 4-leaf star with the
// hub first in the order, giving the hub type [4,0] (all neighbors on the
// succ side): the arc to its immediate successor should be flagged Movement.
func TestLabel_Type40MarksFirstSuccessorMovement(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("hub")
	for _, leaf := range []string{"a", "b", "c", "d"} {
		g.AddVertex(leaf)
		g.AddEdge("hub", leaf)
	}
	order := []string{"hub", "a", "b", "c", "d"}

	if err := roles.Label(g, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arc, err := g.GetArc("hub", "a")
	if err != nil {
		t.Fatalf("GetArc: %v", err)
	}
	if !arc.Movement {
		t.Fatalf("hub->a should be flagged Movement for type [4,0]")
	}
	if arc.Special {
		t.Fatalf("hub->a should not be flagged Special")
	}

	for _, leaf := range []string{"b", "c", "d"} {
		other, err := g.GetArc("hub", leaf)
		if err != nil {
			t.Fatalf("GetArc(hub,%s): %v", leaf, err)
		}
		if other.Movement || other.Special {
			t.Fatalf("hub->%s should not be flagged for type [4,0]", leaf)
		}
	}
}
