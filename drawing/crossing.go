package drawing

import "github.com/katalvlaran/orthodraw/core"

// RemoveCrossings runs the two-phase crossing-removal procedure over every
// routed edge of g: phase 1 is worklist-driven and repairs class-3 and
// class-2.2 crossings (which can chain through further swaps); phase 2 is a
// single pass that repairs the remaining class-1 and class-2.1 crossings,
// which cannot chain once the first two classes are gone. Ported from
// crossing_removal.py.
func RemoveCrossings(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	queue := append([]string(nil), g.Vertices()...)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}

		actionTaken := false
		for i, u := range neighbors {
			for _, w := range neighbors[i+1:] {
				swapped, err := resolvePair(g, v, u, w, cross22, cross3)
				if err != nil {
					return err
				}
				if swapped {
					queue = append(queue, u, w)
					actionTaken = true
				}
			}
		}
		if actionTaken {
			queue = append(queue, v)
		}
	}

	for _, v := range g.Vertices() {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for i, u := range neighbors {
			for _, w := range neighbors[i+1:] {
				if _, err := resolvePair(g, v, u, w, cross1, cross21); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// resolvePair checks the crossing class between edges (v,u) and (v,w) at
// shared vertex v; if it matches either target class it swaps the two
// v-incident arcs' color and orientation and re-routes both edges.
func resolvePair(g *core.Graph, v, u, w string, targets ...crossKind) (bool, error) {
	vu, err := g.Edge(v, u)
	if err != nil {
		return false, nil
	}
	vw, err := g.Edge(v, w)
	if err != nil {
		return false, nil
	}

	kind := crossCheck(g, vu, vw, v)
	matched := false
	for _, t := range targets {
		if kind == t {
			matched = true

			break
		}
	}
	if !matched {
		return false, nil
	}

	arc1, ok1 := arcAt(vu, v)
	arc2, ok2 := arcAt(vw, v)
	if !ok1 || !ok2 {
		return false, nil
	}

	arc1.Color, arc2.Color = arc2.Color, arc1.Color
	arc1.Orientation, arc2.Orientation = arc2.Orientation, arc1.Orientation

	routeVU, err := routeEdge(g, vu)
	if err != nil {
		return false, err
	}
	vu.Route = routeVU

	routeVW, err := routeEdge(g, vw)
	if err != nil {
		return false, err
	}
	vw.Route = routeVW

	return true, nil
}

// arcAt returns the arc of e whose Start is v.
func arcAt(e *core.Edge, v string) (*core.Arc, bool) {
	if e.Arcs[0].Start == v {
		return e.Arcs[0], true
	}
	if e.Arcs[1].Start == v {
		return e.Arcs[1], true
	}

	return nil, false
}

// routeFrom returns e's route oriented to start at v.
func routeFrom(e *core.Edge, v string) [][3]int {
	if len(e.Route) == 0 {
		return nil
	}
	if e.Arcs[0].Start == v {
		return e.Route
	}

	return reverseRoute(e.Route)
}

// crossCheck classifies the crossing, if any, between e1 and e2 at their
// shared vertex v, following the case table keyed by each arc's anchor flag
// (spec.md §4.E). Grounded on crossing_removal.py's cross_check, specialized
// to a known shared vertex rather than searching all four start-field
// combinations — spec.md is explicit that the arcs in question are "their
// arcs starting at v", which every call site here already knows.
func crossCheck(g *core.Graph, e1, e2 *core.Edge, v string) crossKind {
	arc1, ok1 := arcAt(e1, v)
	arc2, ok2 := arcAt(e2, v)
	if !ok1 || !ok2 {
		return crossNone
	}

	route1 := routeFrom(e1, v)
	route2 := routeFrom(e2, v)
	if len(route1) < 4 || len(route2) < 4 {
		return crossNone
	}

	switch {
	case arc1.Anchor && arc2.Anchor:
		if segmentCross([2][3]int{route1[1], route1[2]}, [2][3]int{route2[1], route2[2]}) {
			return cross1
		}
		if segmentCross([2][3]int{route1[2], route1[3]}, [2][3]int{route2[1], route2[2]}) {
			return cross22
		}
		if segmentCross([2][3]int{route1[2], route1[3]}, [2][3]int{route2[2], route2[3]}) {
			return cross3
		}
	case arc1.Anchor && !arc2.Anchor:
		if segmentCross([2][3]int{route1[2], route1[3]}, [2][3]int{route2[0], route2[1]}) {
			return cross21
		}
		if segmentCross([2][3]int{route1[2], route1[3]}, [2][3]int{route2[1], route2[2]}) {
			return cross3
		}
	case !arc1.Anchor && arc2.Anchor:
		if segmentCross([2][3]int{route1[1], route1[2]}, [2][3]int{route2[1], route2[2]}) {
			return cross22
		}
		if segmentCross([2][3]int{route1[1], route1[2]}, [2][3]int{route2[2], route2[3]}) {
			return cross3
		}
	default:
		if segmentCross([2][3]int{route1[1], route1[2]}, [2][3]int{route2[1], route2[2]}) {
			return cross3
		}
	}

	return crossNone
}

// segmentCross reports whether two axis-aligned segments in 3-D space
// cross: one travels along x while the other travels along y sharing a
// common z, or the equivalent for the other two axis pairs.
func segmentCross(s1, s2 [2][3]int) bool {
	x1, y1, z1 := s1[0][0], s1[0][1], s1[0][2]
	x2, y2, z2 := s1[1][0], s1[1][1], s1[1][2]
	x3, y3, z3 := s2[0][0], s2[0][1], s2[0][2]
	x4, y4, z4 := s2[1][0], s2[1][1], s2[1][2]

	switch {
	case x1 == x2 && y3 == y4 && z1 == z3:
		return between(x3, x1, x2) && between(y1, y3, y4)
	case y1 == y2 && z3 == z4 && x1 == x3:
		return between(y3, y1, y2) && between(z1, z3, z4)
	case z1 == z2 && x3 == x4 && y1 == y3:
		return between(z3, z1, z2) && between(x1, x3, x4)
	}

	return false
}

func between(x, a, b int) bool {
	if a > b {
		a, b = b, a
	}

	return a <= x && x <= b
}
