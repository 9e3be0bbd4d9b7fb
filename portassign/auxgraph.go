package portassign

import (
	"sort"

	"github.com/katalvlaran/orthodraw/core"
)

// auxGraph is the conflict graph H: one vertex per arc of the original
// graph, an edge between two arcs meaning they must not share a color.
type auxGraph struct {
	order []arcKey
	in    map[arcKey]bool
	adj   map[arcKey]map[arcKey]bool
}

func newAuxGraph() *auxGraph {
	return &auxGraph{in: map[arcKey]bool{}, adj: map[arcKey]map[arcKey]bool{}}
}

func (h *auxGraph) addVertex(k arcKey) {
	if h.in[k] {
		return
	}
	h.in[k] = true
	h.order = append(h.order, k)
	h.adj[k] = map[arcKey]bool{}
}

func (h *auxGraph) hasVertex(k arcKey) bool { return h.in[k] }

func (h *auxGraph) hasEdge(a, b arcKey) bool { return h.adj[a] != nil && h.adj[a][b] }

func (h *auxGraph) addEdge(a, b arcKey) {
	if a == b || h.hasEdge(a, b) {
		return
	}
	h.adj[a][b] = true
	h.adj[b][a] = true
}

// neighbors returns a's neighbors in stable sorted order.
func (h *auxGraph) neighbors(a arcKey) []arcKey {
	out := make([]arcKey, 0, len(h.adj[a]))
	for k := range h.adj[a] {
		out = append(out, k)
	}
	sortArcKeys(out)

	return out
}

func (h *auxGraph) degree(a arcKey) int { return len(h.adj[a]) }

// removeVertex deletes a and every edge touching it.
func (h *auxGraph) removeVertex(a arcKey) {
	if !h.in[a] {
		return
	}
	for nb := range h.adj[a] {
		delete(h.adj[nb], a)
	}
	delete(h.adj, a)
	delete(h.in, a)
	for i, k := range h.order {
		if k == a {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// clone deep-copies H; used once by cleanUp, which needs a destructively
// modifiable copy separate from the graph used by transferColoring.
func (h *auxGraph) clone() *auxGraph {
	c := newAuxGraph()
	for _, v := range h.order {
		c.addVertex(v)
	}
	for _, v := range h.order {
		for nb := range h.adj[v] {
			c.addEdge(v, nb)
		}
	}

	return c
}

func filterNames(names []string, filled []bool) []string {
	out := make([]string, 0, 3)
	for i, ok := range filled {
		if ok {
			out = append(out, names[i])
		}
	}

	return out
}

// addClique links v's own arcs to the same-slot-group neighbors: a 2-clique
// for two filled slots, a triangle for three, nothing for zero or one.
func addClique(h *auxGraph, v string, names []string) {
	switch len(names) {
	case 2:
		h.addEdge(arcKey{v, names[0]}, arcKey{v, names[1]})
	case 3:
		h.addEdge(arcKey{v, names[0]}, arcKey{v, names[1]})
		h.addEdge(arcKey{v, names[0]}, arcKey{v, names[2]})
		h.addEdge(arcKey{v, names[1]}, arcKey{v, names[2]})
	}
}

func allArcs(g *core.Graph) []*core.Arc {
	return append([]*core.Arc(nil), g.Arcs()...)
}

// buildAuxGraph constructs H per the four clique/edge rules: (a) same-slot
// cliques from table3, (b) non-special edge pairs, (c) movement-chain
// edges, (d) the extra edge for the degree-5/6 "all on one side" types.
func buildAuxGraph(g *core.Graph, pos map[string]int) (*auxGraph, error) {
	h := newAuxGraph()
	for _, arc := range allArcs(g) {
		h.addVertex(arcKey{arc.Start, arc.End})
	}

	for _, v := range g.Vertices() {
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return nil, err
		}
		t := vertexTypeOf(v, orderedV)
		nodes, filled := table3(v, t, orderedV)

		addClique(h, v, filterNames(nodes[:3], filled[:3]))
		addClique(h, v, filterNames(nodes[3:], filled[3:]))

		idx := indexOfString(orderedV, v)
		switch {
		case (t.succ == 6 || t.succ == 5) && t.pred == 0:
			h.addEdge(arcKey{v, orderedV[idx+2]}, arcKey{orderedV[idx+1], v})
		case (t.pred == 6 || t.pred == 5) && t.succ == 0:
			h.addEdge(arcKey{v, orderedV[idx-2]}, arcKey{orderedV[idx-1], v})
		}
	}

	for _, e := range g.Edges() {
		a1, a2 := e.Arcs[0], e.Arcs[1]
		if !a1.Special && !a2.Special {
			h.addEdge(arcKey{a1.Start, a1.End}, arcKey{a2.Start, a2.End})
		}
	}

	for _, arc1 := range allArcs(g) {
		if !arc1.Movement {
			continue
		}
		k1 := arcKey{arc1.Start, arc1.End}
		for _, arc2 := range allArcs(g) {
			k2 := arcKey{arc2.Start, arc2.End}
			if k2 == k1 || !arc2.Movement {
				continue
			}
			if arc2.Start == arc1.End {
				h.addEdge(k1, k2)
			}
		}
	}

	return h, nil
}

func sortedKeys(m map[arcKey]bool) []arcKey {
	out := make([]arcKey, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}
