package drawing

import "github.com/katalvlaran/orthodraw/core"

// Route computes the polyline for every edge of g, dispatching on whether
// each arc's orientation already "points toward" its end vertex along its
// own color axis and whether the two arcs are perpendicular (differently
// colored). Ported from edge_construction.py.
func Route(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, e := range g.Edges() {
		route, err := routeEdge(g, e)
		if err != nil {
			return err
		}
		e.Route = route
	}

	return nil
}

func perpendicular(a1, a2 *core.Arc) bool {
	return a1.Color != a2.Color
}

// missing returns the one axis in {0,1,2} that is neither a nor b.
func missing(a, b core.Color) core.Color {
	for _, c := range [3]core.Color{0, 1, 2} {
		if c != a && c != b {
			return c
		}
	}

	return core.ColorUnset
}

// pointsToward reports whether arc's orientation already agrees with the
// direction from its start vertex's position to its end vertex's, along
// arc's own color axis.
func pointsToward(g *core.Graph, arc *core.Arc) (bool, error) {
	start, ok := g.Position(arc.Start)
	if !ok {
		return false, ErrPositionUnset
	}
	end, ok := g.Position(arc.End)
	if !ok {
		return false, ErrPositionUnset
	}
	c := arc.Color
	if c < 0 || c > 2 {
		return false, ErrColorUnset
	}

	switch arc.Orientation {
	case 1:
		return end[c] > start[c], nil
	case -1:
		return end[c] < start[c], nil
	}

	return false, nil
}

func routeEdge(g *core.Graph, e *core.Edge) ([][3]int, error) {
	arc1, arc2 := e.Arcs[0], e.Arcs[1]

	perp := perpendicular(arc1, arc2)
	toward1, err := pointsToward(g, arc1)
	if err != nil {
		return nil, err
	}
	toward2, err := pointsToward(g, arc2)
	if err != nil {
		return nil, err
	}

	switch {
	case perp && toward1 && toward2:
		return edgeRoute1(g, arc1, arc2)
	case !toward1 && toward2:
		return edgeRoute2(g, arc1, arc2)
	case !toward2 && toward1:
		route, err := edgeRoute2(g, arc2, arc1)
		if err != nil {
			return nil, err
		}

		return reverseRoute(route), nil
	case !perp && toward1 && toward2:
		return edgeRoute3(g, arc1, arc2)
	case !toward1 && !toward2:
		return edgeRoute4(g, arc1, arc2)
	}

	return nil, nil
}

func reverseRoute(route [][3]int) [][3]int {
	out := make([][3]int, len(route))
	for i, p := range route {
		out[len(route)-1-i] = p
	}

	return out
}

// edgeRoute1 is the direct route: two axis-aligned bends, neither arc
// anchored. Used when both arcs already point toward their targets and
// are perpendicular.
func edgeRoute1(g *core.Graph, arc1, arc2 *core.Arc) ([][3]int, error) {
	start, _ := g.Position(arc1.Start)
	end, _ := g.Position(arc1.End)

	step1 := start
	step1[arc1.Color] = end[arc1.Color]
	step2 := step1
	c2 := missing(arc1.Color, arc2.Color)
	step2[c2] = end[c2]

	arc1.Anchor, arc2.Anchor = false, false

	return [][3]int{start, step1, step2, end}, nil
}

// edgeRoute2 anchors arc1 at its start (one bend away from start along
// arc1's own axis, in arc1's orientation) before proceeding toward end.
func edgeRoute2(g *core.Graph, arc1, arc2 *core.Arc) ([][3]int, error) {
	start, _ := g.Position(arc1.Start)
	end, _ := g.Position(arc1.End)

	step1 := start
	step1[arc1.Color] += int(arc1.Orientation)

	var route [][3]int
	if perpendicular(arc1, arc2) {
		step2 := step1
		c2 := missing(arc1.Color, arc2.Color)
		step2[c2] = end[c2]
		step3 := step2
		step3[arc1.Color] = end[arc1.Color]
		route = [][3]int{start, step1, step2, step3, end}
	} else {
		step2 := step1
		c2 := missing(arc1.Color, arc2.Color)
		step2[c2] = end[c2]
		step3 := step2
		c3 := missing(arc1.Color, c2)
		step3[c3] = end[c3]
		route = [][3]int{start, step1, step2, step3, end}
	}

	arc1.Anchor, arc2.Anchor = true, false

	return route, nil
}

// edgeRoute3 is edgeRoute2's non-perpendicular branch, used unconditionally
// when both arcs point toward their targets and they share a color.
func edgeRoute3(g *core.Graph, arc1, arc2 *core.Arc) ([][3]int, error) {
	start, _ := g.Position(arc1.Start)
	end, _ := g.Position(arc1.End)

	step1 := start
	step1[arc1.Color] += int(arc1.Orientation)
	step2 := step1
	c2 := missing(arc1.Color, arc2.Color)
	step2[c2] = end[c2]
	step3 := step2
	c3 := missing(arc1.Color, c2)
	step3[c3] = end[c3]

	arc1.Anchor, arc2.Anchor = true, false

	return [][3]int{start, step1, step2, step3, end}, nil
}

// edgeRoute4 anchors both arcs: used when neither points toward its target.
func edgeRoute4(g *core.Graph, arc1, arc2 *core.Arc) ([][3]int, error) {
	start, _ := g.Position(arc1.Start)
	end, _ := g.Position(arc1.End)

	step1 := start
	step1[arc1.Color] += int(arc1.Orientation)

	var route [][3]int
	if perpendicular(arc1, arc2) {
		step2 := step1
		step2[arc2.Color] = end[arc2.Color] + int(arc2.Orientation)
		step3 := step2
		c3 := missing(arc1.Color, arc2.Color)
		step3[c3] = end[c3]
		step4 := end
		step4[arc2.Color] += int(arc2.Orientation)
		route = [][3]int{start, step1, step2, step3, step4, end}
	} else {
		step2 := step1
		c2 := missing(arc1.Color, arc2.Color)
		step2[c2] = end[c2]
		step3 := step2
		step3[arc2.Color] = end[arc2.Color] + int(arc2.Orientation)
		step4 := end
		step4[arc2.Color] += int(arc2.Orientation)
		route = [][3]int{start, step1, step2, step3, step4, end}
	}

	arc1.Anchor, arc2.Anchor = true, true

	return route, nil
}
