package core

import "sort"

// AddEdge adds an undirected edge between u and v, auto-creating its two
// default-attributed arcs (u→v) and (v→u). Both endpoints must already
// exist (ErrVertexNotFound), u must differ from v (ErrSelfLoop), no edge
// may already connect them (ErrDuplicateEdge), and neither endpoint may
// exceed MaxDegree afterwards (ErrDegreeExceeded).
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrSelfLoop
	}

	g.muVert.Lock()
	uv, uok := g.vertices[u]
	vv, vok := g.vertices[v]
	if !uok || !vok {
		g.muVert.Unlock()

		return ErrVertexNotFound
	}
	if uv.Degree+1 > MaxDegree || vv.Degree+1 > MaxDegree {
		g.muVert.Unlock()

		return ErrDegreeExceeded
	}

	g.muEdgeAdj.Lock()
	key := edgeKey(u, v)
	if _, exists := g.edges[key]; exists {
		g.muEdgeAdj.Unlock()
		g.muVert.Unlock()

		return ErrDuplicateEdge
	}

	arcUV := &Arc{Start: u, End: v, Color: ColorUnset}
	arcVU := &Arc{Start: v, End: u, Color: ColorUnset}
	edge := &Edge{Arcs: [2]*Arc{arcUV, arcVU}}
	g.edges[key] = edge
	g.edgeKeys = append(g.edgeKeys, key)

	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[string]*Arc)
	}
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[string]*Arc)
	}
	g.adjacency[u][v] = arcUV
	g.adjacency[v][u] = arcVU

	uv.Degree++
	vv.Degree++

	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	return nil
}

// HasEdge reports whether an edge connects u and v.
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[edgeKey(u, v)]

	return ok
}

// Edge returns the edge between u and v, or ErrEdgeNotFound.
func (g *Graph) Edge(u, v string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeKey(u, v)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in stable insertion order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edgeKeys))
	for _, k := range g.edgeKeys {
		out = append(out, g.edges[k])
	}

	return out
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// GetArc returns the arc oriented start→end, or ErrArcNotFound.
func (g *Graph) GetArc(start, end string) (*Arc, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs, ok := g.adjacency[start]
	if !ok {
		return nil, ErrArcNotFound
	}
	arc, ok := nbrs[end]
	if !ok {
		return nil, ErrArcNotFound
	}

	return arc, nil
}

// Arcs returns both arcs of every edge, in edge insertion order, each
// edge contributing (Arcs[0], Arcs[1]) consecutively.
func (g *Graph) Arcs() []*Arc {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Arc, 0, 2*len(g.edgeKeys))
	for _, k := range g.edgeKeys {
		e := g.edges[k]
		out = append(out, e.Arcs[0], e.Arcs[1])
	}

	return out
}

// Neighbors returns the IDs of vertices adjacent to id, sorted
// lexicographically for deterministic downstream ordering construction.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}
