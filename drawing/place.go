package drawing

import "github.com/katalvlaran/orthodraw/core"

// Place computes the initial 3-D lattice position of every vertex of g from
// its balanced order, then applies the movement displacement: every arc
// flagged Movement by stage C pulls its start vertex, on its own color axis
// only, to sit immediately after its end vertex in that axis's list.
//
// The three axis lists start out identical copies of order. The insertion
// index for a displaced vertex is looked up in the axis list as it stands
// after the start vertex's own removal, so a chain of several movement arcs
// on the same axis each land immediately after their (possibly already
// relocated) end vertex.
func Place(g *core.Graph, order []string) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(order) != g.VertexCount() {
		return ErrOrderMismatch
	}

	axes := [3][]string{
		append([]string(nil), order...),
		append([]string(nil), order...),
		append([]string(nil), order...),
	}

	for _, arc := range g.Arcs() {
		if !arc.Movement {
			continue
		}
		axis := int(arc.Color)
		if axis < 0 || axis > 2 {
			return ErrColorUnset
		}

		list := axes[axis]
		from := indexOf(list, arc.Start)
		if from < 0 {
			continue
		}
		list = append(list[:from], list[from+1:]...)

		target := indexOf(list, arc.End) + 1
		if target > len(list) {
			target = len(list)
		}
		grown := make([]string, 0, len(list)+1)
		grown = append(grown, list[:target]...)
		grown = append(grown, arc.Start)
		grown = append(grown, list[target:]...)
		axes[axis] = grown
	}

	for axis := 0; axis < 3; axis++ {
		for i, id := range axes[axis] {
			pos, _ := g.Position(id)
			pos[axis] = 3 * (i + 1)
			if err := g.SetPosition(id, pos); err != nil {
				return err
			}
		}
	}

	return nil
}

func indexOf(list []string, id string) int {
	for i, v := range list {
		if v == id {
			return i
		}
	}

	return -1
}
