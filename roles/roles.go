package roles

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orthodraw/core"
)

// Label mutates g's arcs in place, setting Movement and/or Special to true
// on the arcs that a vertex's (succ, pred) type singles out per table. order
// must contain exactly g's vertex set (as produced by ordering.Order).
func Label(g *core.Graph, order []string) error {
	if g == nil {
		return ErrGraphNil
	}
	pos, err := positionsOf(g, order)
	if err != nil {
		return err
	}

	for _, v := range g.Vertices() {
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return fmt.Errorf("roles: neighbors of %q: %w", v, err)
		}
		idx := indexOfString(orderedV, v)
		succ, pred := len(orderedV)-1-idx, idx

		rules, ok := table[[2]int{succ, pred}]
		if !ok {
			continue
		}
		for _, r := range rules {
			target := idx + r.offset
			if target < 0 || target >= len(orderedV) {
				return fmt.Errorf("roles: vertex %q type (%d,%d) rule offset %d out of range", v, succ, pred, r.offset)
			}
			arc, err := g.GetArc(v, orderedV[target])
			if err != nil {
				return fmt.Errorf("roles: arc %q->%q: %w", v, orderedV[target], err)
			}
			switch r.flag {
			case movementFlag:
				arc.Movement = true
			case specialFlag:
				arc.Special = true
			}
		}
	}

	return nil
}

func positionsOf(g *core.Graph, order []string) (map[string]int, error) {
	if len(order) != g.VertexCount() {
		return nil, ErrOrderMismatch
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		if !g.HasVertex(id) {
			return nil, ErrOrderMismatch
		}
		pos[id] = i
	}
	if len(pos) != len(order) {
		return nil, ErrOrderMismatch
	}

	return pos, nil
}

func orderedNeighbors(g *core.Graph, v string, pos map[string]int) ([]string, error) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(nbrs)+1)
	list = append(list, nbrs...)
	list = append(list, v)
	sort.Slice(list, func(i, j int) bool { return pos[list[i]] < pos[list[j]] })

	return list, nil
}

func indexOfString(list []string, x string) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return -1
}
