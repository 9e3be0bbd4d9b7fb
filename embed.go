package orthodraw

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
	"github.com/katalvlaran/orthodraw/drawing"
	"github.com/katalvlaran/orthodraw/ordering"
	"github.com/katalvlaran/orthodraw/portassign"
	"github.com/katalvlaran/orthodraw/roles"
)

// ErrGraphNil indicates Embed was called with a nil graph.
var ErrGraphNil = errors.New("orthodraw: graph is nil")

// Result holds the intermediate and final state of an Embed run: the
// balanced order the rest of the pipeline is keyed on, and the ordering
// stage's move log for diagnostics.
type Result struct {
	// Order is the balanced vertex ordering stage B produced.
	Order []string

	// Steps lists every non-trivial move ordering applied while balancing.
	Steps []ordering.Step
}

// Embed runs the full pipeline (B ordering, C roles, D port assignment,
// E drawing) over g, mutating it in place: every vertex gets a Position,
// every arc gets a Color/Orientation, and every edge gets a Route free of
// crossings with any other edge's route.
func Embed(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ord, err := ordering.Order(g)
	if err != nil {
		return nil, fmt.Errorf("orthodraw: stage B ordering: %w", err)
	}

	if err := roles.Label(g, ord.Order); err != nil {
		return nil, fmt.Errorf("orthodraw: stage C roles: %w", err)
	}

	if err := portassign.Assign(g, ord.Order); err != nil {
		return nil, fmt.Errorf("orthodraw: stage D portassign: %w", err)
	}

	if err := drawing.Place(g, ord.Order); err != nil {
		return nil, fmt.Errorf("orthodraw: stage E place: %w", err)
	}

	if err := drawing.Route(g); err != nil {
		return nil, fmt.Errorf("orthodraw: stage E route: %w", err)
	}

	if err := drawing.RemoveCrossings(g); err != nil {
		return nil, fmt.Errorf("orthodraw: stage E crossing removal: %w", err)
	}

	return &Result{Order: ord.Order, Steps: ord.Steps}, nil
}
