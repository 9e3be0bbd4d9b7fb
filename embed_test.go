package orthodraw_test

import (
	"errors"
	"testing"

	orthodraw "github.com/katalvlaran/orthodraw"
	"github.com/katalvlaran/orthodraw/builder"
)

func TestEmbed_NilGraph(t *testing.T) {
	if _, err := orthodraw.Embed(nil); !errors.Is(err, orthodraw.ErrGraphNil) {
		t.Fatalf("want ErrGraphNil, got %v", err)
	}
}

func TestEmbed_PathGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	res, err := orthodraw.Embed(g)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(res.Order) != 5 {
		t.Fatalf("Order length = %d, want 5", len(res.Order))
	}

	for _, id := range g.Vertices() {
		if _, ok := g.Position(id); !ok {
			t.Fatalf("vertex %s has no Position after Embed", id)
		}
	}
	for _, e := range g.Edges() {
		if len(e.Route) == 0 {
			t.Fatalf("edge %s-%s has no Route after Embed", e.Arcs[0].Start, e.Arcs[0].End)
		}
	}
}

func TestEmbed_WheelGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	if _, err := orthodraw.Embed(g); err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for _, e := range g.Edges() {
		if len(e.Route) == 0 {
			t.Fatalf("edge %s-%s has no Route after Embed", e.Arcs[0].Start, e.Arcs[0].End)
		}
	}
}
