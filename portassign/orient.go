package portassign

import (
	"github.com/katalvlaran/orthodraw/core"
)

// assignOrientations walks every vertex's table3 layout and writes -1/+1
// orientation onto each arc (slots 0-2 get one sign, slots 3-5 the other,
// flipped when pred > succ), then cross-checks the total against the
// graph's arc count — the same two sanity checks port_assignment raises
// ValueError on in the original source.
func assignOrientations(g *core.Graph, order []string, pos map[string]int) error {
	total := 0
	for _, v := range g.Vertices() {
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return err
		}
		t := vertexTypeOf(v, orderedV)
		nodes, filled := table3(v, t, orderedV)

		negSide, posSide := core.Orientation(-1), core.Orientation(1)
		if t.succ < t.pred {
			negSide, posSide = 1, -1
		}

		worked := 0
		for i := 0; i < 3; i++ {
			if !filled[i] {
				continue
			}
			arc, err := g.GetArc(v, nodes[i])
			if err != nil {
				return err
			}
			arc.Orientation = negSide
			total++
			worked++
		}
		for i := 3; i < 6; i++ {
			if !filled[i] {
				continue
			}
			arc, err := g.GetArc(v, nodes[i])
			if err != nil {
				return err
			}
			arc.Orientation = posSide
			total++
			worked++
		}

		if worked != len(orderedV)-1 {
			return ErrOrientationCount
		}
	}

	if total != len(g.Arcs()) {
		return ErrArcCount
	}

	return nil
}
