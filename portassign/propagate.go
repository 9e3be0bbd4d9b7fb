package portassign

// transferColoring maps H-cleaned's coloring back onto every vertex of the
// original conflict graph H: unmerged vertices keep H-cleaned's color
// directly, and each merged pair takes the color H-cleaned gave the vertex
// that absorbed the pair. cleanUp removes layer1 vertices before layer2
// ones; they are colored back in the reverse order of layers (all of
// layer2, then all of layer1), each layer in its own slice order, against
// whatever neighbor colors in H are already known.
func transferColoring(h, cleaned *auxGraph, merged map[arcKey]arcKey, cleanedColors map[arcKey]int, layer1, layer2 []arcKey) (map[arcKey]int, error) {
	colors := make(map[arcKey]int, len(h.order))

	for _, v := range cleaned.order {
		colors[v] = cleanedColors[v]
	}

	for target, rep := range merged {
		colors[rep] = cleanedColors[target]
		colors[target] = cleanedColors[target]
	}

	allVertices := func() map[arcKey]bool {
		all := make(map[arcKey]bool, len(h.order))
		for _, v := range h.order {
			all[v] = true
		}

		return all
	}()

	for _, v := range layer2 {
		if !tryColorFromNeighbors(h, allVertices, colors, v) {
			return nil, ErrColoring
		}
	}
	for _, v := range layer1 {
		if !tryColorFromNeighbors(h, allVertices, colors, v) {
			return nil, ErrColoring
		}
	}

	return colors, nil
}
