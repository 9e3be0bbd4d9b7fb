package ordering

import (
	"sort"

	"github.com/katalvlaran/orthodraw/core"
)

// orderedNeighbors returns v's neighbors plus v itself, sorted by pos. This
// mirrors order_neighbor(order, neighbors) from the original source: a
// vertex's local view of where it sits relative to its own neighbors.
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

// vertexTypeOf computes (succ, pred) for v relative to its own
// neighbor-ordered sublist.
func vertexTypeOf(v string, ordered []string) excess {
	idx := indexOf(ordered, v)

	return excess{succ: len(ordered) - 1 - idx, pred: idx}
}

func indexOf(list []string, x string) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return -1
}

// opposite reports whether v wants to move later (positive excess) while w
// wants to move earlier (negative excess), and w already sits after v in
// the global order.
func opposite(v, w string, tv, tw excess, pos map[string]int) bool {
	return pos[w] > pos[v] && tv.diff() > 0 && tw.diff() < 0
}

// succDistance returns index(x)-index(v) in ordered, and whether it's
// strictly positive (x appears after v).
func succDistance(v, x string, ordered []string) (int, bool) {
	d := indexOf(ordered, x) - indexOf(ordered, v)

	return d, d > 0
}

// predDistance returns index(v)-index(x) in ordered, and whether it's
// strictly positive (x appears before v).
func predDistance(v, x string, ordered []string) (int, bool) {
	d := indexOf(ordered, v) - indexOf(ordered, x)

	return d, d > 0
}

func between(pos map[string]int, lo, x, hi string) bool {
	return pos[lo] < pos[x] && pos[x] < pos[hi]
}
