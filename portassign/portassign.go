package portassign

import (
	"github.com/katalvlaran/orthodraw/core"
)

// Assign runs the full stage-D pipeline on g: orientation assignment via
// table3, auxiliary graph construction and cleanup, Brooks/Lovász
// 3-coloring, and color propagation back onto every arc.
func Assign(g *core.Graph, order []string) error {
	if g == nil {
		return ErrGraphNil
	}
	pos, err := validateOrder(g, order)
	if err != nil {
		return err
	}

	if err := assignOrientations(g, order, pos); err != nil {
		return err
	}

	h, err := buildAuxGraph(g, pos)
	if err != nil {
		return err
	}
	cleaned, merged, layer1, layer2, err := cleanUp(h, g, pos)
	if err != nil {
		return err
	}

	cleanedActive := map[arcKey]bool{}
	for _, v := range cleaned.order {
		cleanedActive[v] = true
	}
	cleanedColors, err := lovasz3Coloring(cleaned, cleanedActive)
	if err != nil {
		return err
	}

	finalColors, err := transferColoring(h, cleaned, merged, cleanedColors, layer1, layer2)
	if err != nil {
		return err
	}

	for _, arc := range allArcs(g) {
		k := arcKey{arc.Start, arc.End}
		c, ok := finalColors[k]
		if !ok {
			return ErrColoring
		}
		arc.Color = core.Color(c)
	}

	return nil
}
