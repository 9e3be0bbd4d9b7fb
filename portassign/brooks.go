package portassign

// connectedSub reports whether the non-excluded vertices of h form a single
// connected component. An empty or singleton set is trivially connected.
func connectedSub(h *auxGraph, active map[arcKey]bool) bool {
	vs := sortedKeys(active)
	if len(vs) <= 1 {
		return true
	}
	seen := bfsReach(h, active, vs[0])

	return len(seen) == len(vs)
}

func bfsReach(h *auxGraph, active map[arcKey]bool, start arcKey) map[arcKey]bool {
	seen := map[arcKey]bool{start: true}
	queue := []arcKey{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range h.neighbors(cur) {
			if active[nb] && !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return seen
}

// biconnectedSub reports whether the active subgraph stays connected after
// removing any single vertex. Graphs of size ≤ 2 are trivially biconnected.
func biconnectedSub(h *auxGraph, active map[arcKey]bool) bool {
	if !connectedSub(h, active) {
		return false
	}
	vs := sortedKeys(active)
	if len(vs) <= 2 {
		return true
	}
	for _, cut := range vs {
		trial := withoutVertex(active, cut)
		if !connectedSub(h, trial) {
			return false
		}
	}

	return true
}

func withoutVertex(active map[arcKey]bool, v arcKey) map[arcKey]bool {
	out := make(map[arcKey]bool, len(active))
	for k := range active {
		if k != v {
			out[k] = true
		}
	}

	return out
}

func withoutVertices(active map[arcKey]bool, vs ...arcKey) map[arcKey]bool {
	drop := make(map[arcKey]bool, len(vs))
	for _, v := range vs {
		drop[v] = true
	}
	out := make(map[arcKey]bool, len(active))
	for k := range active {
		if !drop[k] {
			out[k] = true
		}
	}

	return out
}

func neighborsIn(h *auxGraph, v arcKey, active map[arcKey]bool) []arcKey {
	out := make([]arcKey, 0, h.degree(v))
	for _, nb := range h.neighbors(v) {
		if active[nb] {
			out = append(out, nb)
		}
	}

	return out
}

func maxDegreeIn(h *auxGraph, active map[arcKey]bool) int {
	max := 0
	for v := range active {
		if d := len(neighborsIn(h, v, active)); d > max {
			max = d
		}
	}

	return max
}

// lowerColoring greedily colors a subgraph known to have max degree < 3.
func lowerColoring(h *auxGraph, active map[arcKey]bool) (map[arcKey]int, error) {
	vs := sortedKeys(active)
	colors := map[arcKey]int{}
	if len(vs) == 0 {
		return colors, nil
	}
	colors[vs[0]] = 0
	for _, v := range vs[1:] {
		used := map[int]bool{}
		for _, nb := range neighborsIn(h, v, active) {
			if c, ok := colors[nb]; ok {
				used[c] = true
			}
		}
		assigned := false
		for c := 0; c < 3; c++ {
			if !used[c] {
				colors[v] = c
				assigned = true

				break
			}
		}
		if !assigned {
			return nil, ErrColoring
		}
	}

	return colors, nil
}

// colorRemaining colors vs (already known not yet colored) in the given
// order, each against whatever neighbor colors are already assigned.
func colorRemaining(h *auxGraph, active map[arcKey]bool, colors map[arcKey]int, vs []arcKey) error {
	for _, v := range vs {
		used := map[int]bool{}
		for _, nb := range neighborsIn(h, v, active) {
			if c, ok := colors[nb]; ok {
				used[c] = true
			}
		}
		assigned := false
		for c := 0; c < 3; c++ {
			if !used[c] {
				colors[v] = c
				assigned = true

				break
			}
		}
		if !assigned {
			return ErrColoring
		}
	}

	return nil
}

// lovasz3Coloring 3-colors the active subgraph of h, grounded on the
// Brooks'-theorem construction in lovasz_3_coloring.py: below degree 3, a
// greedy pass suffices; otherwise pick two non-adjacent vertices a, b with
// a common neighbor v1 such that deleting {a, b} preserves connectivity
// (falling back to a biconnected degree-3 cut vertex, then to recursing on
// the components left by a genuine cut vertex), color a and b first, then
// color everything else in reverse BFS order from v1.
func lovasz3Coloring(h *auxGraph, active map[arcKey]bool) (map[arcKey]int, error) {
	vs := sortedKeys(active)
	if len(vs) == 0 {
		return map[arcKey]int{}, nil
	}

	maxDeg := maxDegreeIn(h, active)
	if maxDeg < 3 {
		return lowerColoring(h, active)
	}

	for _, v := range vs {
		nbrs := neighborsIn(h, v, active)
		if len(nbrs) != maxDeg {
			continue
		}
		clique := true
		for i := range nbrs {
			for j := i + 1; j < len(nbrs); j++ {
				if !h.hasEdge(nbrs[i], nbrs[j]) {
					clique = false
				}
			}
		}
		if clique {
			return nil, ErrKTooLarge
		}
	}

	if !connectedSub(h, active) {
		colors := map[arcKey]int{}
		for _, comp := range componentsOf(h, active) {
			sub, err := lovasz3Coloring(h, comp)
			if err != nil {
				return nil, err
			}
			for k, v := range sub {
				colors[k] = v
			}
		}

		return colors, nil
	}

	if a, b, v1, ok := findDeletionPair(h, active, vs); ok {
		return colorAroundPair(h, active, a, b, v1)
	}

	if biconnectedSub(h, active) {
		if a, b, v1, ok := findBiconnectedPair(h, active, vs); ok {
			return colorAroundPair(h, active, a, b, v1)
		}

		return nil, ErrColoring
	}

	// Not biconnected: some single vertex is a genuine cut vertex. Color
	// each component of its removal independently, then color the cut
	// vertex itself, rotating the whole sub-coloring by one color if the
	// first attempt leaves it with no free color.
	cut, ok := findCutVertex(h, active, vs)
	if !ok {
		return nil, ErrColoring
	}
	rest := withoutVertex(active, cut)
	colors := map[arcKey]int{}
	var subColoring map[arcKey]int
	for _, comp := range componentsOf(h, rest) {
		sub, err := lovasz3Coloring(h, comp)
		if err != nil {
			return nil, err
		}
		subColoring = sub
		for k, v := range sub {
			colors[k] = v
		}
	}

	if !tryColorFromNeighbors(h, active, colors, cut) {
		for k, v := range subColoring {
			colors[k] = (v + 1) % 3
		}
		if !tryColorFromNeighbors(h, active, colors, cut) {
			return nil, ErrColoring
		}
	}

	return colors, nil
}

func tryColorFromNeighbors(h *auxGraph, active map[arcKey]bool, colors map[arcKey]int, v arcKey) bool {
	used := map[int]bool{}
	for _, nb := range neighborsIn(h, v, active) {
		if c, ok := colors[nb]; ok {
			used[c] = true
		}
	}
	for c := 0; c < 3; c++ {
		if !used[c] {
			colors[v] = c

			return true
		}
	}

	return false
}

// findDeletionPair looks for adjacent v1 with two non-adjacent neighbors a,
// b of v1 such that removing {a, b} keeps the graph connected.
func findDeletionPair(h *auxGraph, active map[arcKey]bool, vs []arcKey) (a, b, v1 arcKey, ok bool) {
	for _, cand := range vs {
		candNeighbors := neighborsIn(h, cand, active)
		candSet := map[arcKey]bool{}
		for _, n := range candNeighbors {
			candSet[n] = true
		}
		for _, nb := range candNeighbors {
			for _, two := range neighborsIn(h, nb, active) {
				if two == cand || candSet[two] {
					continue
				}
				trial := withoutVertices(active, cand, two)
				if connectedSub(h, trial) {
					return cand, two, nb, true
				}
			}
		}
	}

	return arcKey{}, arcKey{}, arcKey{}, false
}

// findBiconnectedPair mirrors the biconnected branch of the original:
// prefer a degree-3 vertex whose removal stays biconnected and search from
// there; for a degree-3 vertex whose removal does not stay biconnected,
// search directly among that vertex's own neighbor pairs.
func findBiconnectedPair(h *auxGraph, active map[arcKey]bool, vs []arcKey) (a, b, v1 arcKey, ok bool) {
	for _, v0 := range vs {
		if len(neighborsIn(h, v0, active)) != 3 {
			continue
		}
		trial := withoutVertex(active, v0)
		if biconnectedSub(h, trial) {
			for _, nb := range neighborsIn(h, v0, active) {
				for _, two := range neighborsIn(h, nb, active) {
					if two != v0 && !containsKey(neighborsIn(h, v0, active), two) {
						return v0, two, nb, true
					}
				}
			}

			continue
		}

		nbrs := neighborsIn(h, v0, active)
		for i := range nbrs {
			for j := range nbrs {
				if i == j {
					continue
				}
				trial := withoutVertices(active, nbrs[i], nbrs[j])
				if connectedSub(h, trial) {
					return nbrs[i], nbrs[j], v0, true
				}
			}
		}
	}

	return arcKey{}, arcKey{}, arcKey{}, false
}

func containsKey(vs []arcKey, x arcKey) bool {
	for _, v := range vs {
		if v == x {
			return true
		}
	}

	return false
}

// findCutVertex returns the first vertex whose removal disconnects active.
func findCutVertex(h *auxGraph, active map[arcKey]bool, vs []arcKey) (arcKey, bool) {
	for _, v := range vs {
		if !connectedSub(h, withoutVertex(active, v)) {
			return v, true
		}
	}

	return arcKey{}, false
}

func componentsOf(h *auxGraph, active map[arcKey]bool) []map[arcKey]bool {
	remaining := map[arcKey]bool{}
	for k := range active {
		remaining[k] = true
	}
	var comps []map[arcKey]bool
	for len(remaining) > 0 {
		start := sortedKeys(remaining)[0]
		seen := bfsReach(h, active, start)
		comp := map[arcKey]bool{}
		for k := range seen {
			comp[k] = true
			delete(remaining, k)
		}
		comps = append(comps, comp)
	}

	return comps
}

// colorAroundPair colors a and b with color 0, then BFS-orders the rest of
// active from v1 and colors it in reverse BFS order.
func colorAroundPair(h *auxGraph, active map[arcKey]bool, a, b, v1 arcKey) (map[arcKey]int, error) {
	colors := map[arcKey]int{a: 0, b: 0}

	remaining := withoutVertices(active, a, b, v1)
	bfsOrder := []arcKey{v1}
	visited := map[arcKey]bool{a: true, b: true, v1: true}
	queue := []arcKey{v1}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range neighborsIn(h, cur, active) {
			if !visited[nb] {
				visited[nb] = true
				bfsOrder = append(bfsOrder, nb)
				queue = append(queue, nb)
			}
		}
	}
	if len(bfsOrder)-1 != len(remaining) {
		return nil, ErrColoring
	}

	for i, j := 0, len(bfsOrder)-1; i < j; i, j = i+1, j-1 {
		bfsOrder[i], bfsOrder[j] = bfsOrder[j], bfsOrder[i]
	}

	if err := colorRemaining(h, active, colors, bfsOrder); err != nil {
		return nil, err
	}

	return colors, nil
}
