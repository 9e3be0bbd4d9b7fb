package portassign

import "github.com/katalvlaran/orthodraw/core"

func isType(t excess, succ, pred int) bool { return t.succ == succ && t.pred == pred }

// cleanUp simplifies H into H', removing vertices whose port slot is
// structurally forced and merging vertices that must share a color, so
// that the remaining graph has max degree ≤ 3 and is cheap to 3-color.
// layer1 and layer2 record removed vertices in the order they must be
// colored back in (layer2 before layer1) once H' itself is colored.
//
// The Open Question in spec.md §9 about a stray local-variable reassignment
// in this routine resolves to a no-op either way: the reassignment in the
// original source has no observable effect on control flow once translated,
// so the branch semantics below follow the move table as written.
func cleanUp(h *auxGraph, g *core.Graph, pos map[string]int) (*auxGraph, map[arcKey]arcKey, []arcKey, []arcKey, error) {
	cleaned := h.clone()
	merged := map[arcKey]arcKey{}
	var layer1, layer2 []arcKey

	vertices := g.Vertices()

	for _, v := range vertices {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if deg != 6 {
			continue
		}
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		t := vertexTypeOf(v, orderedV)
		nodes, filled := table3(v, t, orderedV)
		if t.succ != t.pred && filled[2] {
			k := arcKey{v, nodes[2]}
			if cleaned.hasVertex(k) {
				layer1 = append(layer1, k)
				cleaned.removeVertex(k)
			}
		}
	}

	for _, v := range vertices {
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		t := vertexTypeOf(v, orderedV)
		nodes, _ := table3(v, t, orderedV)

		switch {
		case isType(t, 0, 5) || isType(t, 0, 6) || isType(t, 5, 0) || isType(t, 6, 0):
			v1, v2 := nodes[0], nodes[1]
			orderedV1, err := orderedNeighbors(g, v1, pos)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			typeV1 := vertexTypeOf(v1, orderedV1)
			orderedV2, err := orderedNeighbors(g, v2, pos)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			typeV2 := vertexTypeOf(v2, orderedV2)

			if isType(typeV1, 1, 4) || isType(typeV1, 1, 5) || isType(typeV1, 4, 1) || isType(typeV1, 5, 1) {
				nodesV1, _ := table3(v1, typeV1, orderedV1)
				rep := arcKey{v1, nodesV1[1]}
				if cleaned.hasVertex(rep) {
					target := arcKey{v, v2}
					merged[target] = rep
					for _, nb := range cleaned.neighbors(rep) {
						cleaned.addEdge(target, nb)
					}
					cleaned.removeVertex(rep)
				}
				if k := (arcKey{v1, v}); cleaned.hasVertex(k) {
					layer2 = append(layer2, k)
					cleaned.removeVertex(k)
				}
				if k := (arcKey{v, v1}); cleaned.hasVertex(k) {
					layer2 = append(layer2, k)
					cleaned.removeVertex(k)
				}
				if isType(typeV2, 1, 4) || isType(typeV2, 1, 5) || isType(typeV2, 4, 1) || isType(typeV2, 5, 1) {
					if k := (arcKey{v2, v}); cleaned.hasVertex(k) {
						layer2 = append(layer2, k)
						cleaned.removeVertex(k)
					}
				}
			} else if k := (arcKey{v, v1}); cleaned.hasVertex(k) {
				layer2 = append(layer2, k)
				cleaned.removeVertex(k)
			}

		case isType(t, 1, 4) || isType(t, 1, 5) || isType(t, 4, 1) || isType(t, 5, 1):
			vm1 := nodes[0]
			orderedVM1, err := orderedNeighbors(g, vm1, pos)
			if err != nil {
				return nil, nil, nil, nil, err
			}
			typeVM1 := vertexTypeOf(vm1, orderedVM1)
			idxVM1 := indexOfString(orderedVM1, vm1)
			var vm11 string
			if typeVM1.succ >= typeVM1.pred {
				vm11 = orderedVM1[idxVM1+1]
			} else {
				vm11 = orderedVM1[idxVM1-1]
			}
			if !(isType(typeVM1, 0, 5) || isType(typeVM1, 5, 0)) && vm11 != v {
				if k := (arcKey{v, vm1}); cleaned.hasVertex(k) {
					layer2 = append(layer2, k)
					cleaned.removeVertex(k)
				}
			}

		case isType(t, 0, 4) || isType(t, 4, 0):
			if k := (arcKey{v, nodes[0]}); cleaned.hasVertex(k) {
				layer2 = append(layer2, k)
				cleaned.removeVertex(k)
			}
		}
	}

	return cleaned, merged, layer1, layer2, nil
}
