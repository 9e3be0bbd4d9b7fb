package portassign

import (
	"sort"

	"github.com/katalvlaran/orthodraw/core"
)

// orderedNeighbors returns v's neighbors plus v itself, sorted by pos.
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

func vertexTypeOf(v string, ordered []string) excess {
	idx := indexOfString(ordered, v)

	return excess{succ: len(ordered) - 1 - idx, pred: idx}
}

func indexOfString(list []string, x string) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return -1
}

func positionsOf(order []string) map[string]int {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	return pos
}

func validateOrder(g *core.Graph, order []string) (map[string]int, error) {
	if len(order) != g.VertexCount() {
		return nil, ErrOrderMismatch
	}
	for _, id := range order {
		if !g.HasVertex(id) {
			return nil, ErrOrderMismatch
		}
	}

	return positionsOf(order), nil
}
