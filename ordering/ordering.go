package ordering

import (
	"github.com/katalvlaran/orthodraw/core"
)

type edgePair struct{ v, w string }

func pairKey(a, b string) string {
	if a < b {
		return a + "\x00" + b
	}

	return b + "\x00" + a
}

// Order computes a balanced vertex permutation for g. The worklist starts
// from every edge of g and repairs local imbalances move-by-move until no
// edge has an applicable move left.
//
// Open Question resolution (spec.md §9): on a successful move, the edges
// incident to v's and w's neighbors are (re-)enqueued for inspection — not a
// second copy of the edge just processed, which is what the original source
// literally does (a copy-paste slip: it appends the outer `edge` variable
// inside a loop that was clearly meant to append the inner `e`). The edge
// just processed is never dropped from the front of the worklist while it
// still has an applicable move, so it keeps being reprocessed regardless.
func Order(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrEmptyGraph
	}

	seq := newSequence(verts)
	maxDegree := g.MaxDegreeObserved()

	var worklist []edgePair
	inWork := map[string]bool{}
	enqueue := func(a, b string) {
		k := pairKey(a, b)
		if inWork[k] {
			return
		}
		inWork[k] = true
		worklist = append(worklist, edgePair{a, b})
	}

	for _, e := range g.Edges() {
		enqueue(e.Arcs[0].Start, e.Arcs[0].End)
	}

	var steps []Step
	for len(worklist) > 0 {
		edge := worklist[0]
		v, w := edge.v, edge.w

		pos := seq.positions()
		orderedV, err := orderedNeighbors(g, v, pos)
		if err != nil {
			return nil, err
		}
		orderedW, err := orderedNeighbors(g, w, pos)
		if err != nil {
			return nil, err
		}
		typeV := vertexTypeOf(v, orderedV)
		typeW := vertexTypeOf(w, orderedW)
		c := &moveCtx{
			seq: seq, pos: pos,
			v: v, w: w,
			orderedV: orderedV, orderedW: orderedW,
			typeV: typeV, typeW: typeW,
		}

		var applied Move
		switch {
		case tryMove1(c):
			applied = Move1
		case tryMove1Opp(c):
			applied = Move1Opp
		case tryMove2(c):
			applied = Move2
		case tryMove2Opp(c):
			applied = Move2Opp
		case tryMove3(c):
			applied = Move3
		case tryMove3Opp(c):
			applied = Move3Opp
		case tryMove4(c, v, orderedV, typeV, maxDegree):
			applied = Move4
		case tryMove4(c, w, orderedW, typeW, maxDegree):
			applied = Move4Opp
		default:
			applied = MoveNone
		}

		if applied == MoveNone {
			worklist = worklist[1:]
			delete(inWork, pairKey(v, w))
			continue
		}

		steps = append(steps, Step{Edge: [2]string{v, w}, Move: applied})

		affected := map[string]bool{}
		if nv, err := g.Neighbors(v); err == nil {
			for _, x := range nv {
				affected[x] = true
			}
		}
		if nw, err := g.Neighbors(w); err == nil {
			for _, x := range nw {
				affected[x] = true
			}
		}
		for x := range affected {
			nbrs, err := g.Neighbors(x)
			if err != nil {
				continue
			}
			for _, y := range nbrs {
				enqueue(x, y)
			}
		}
	}

	return &Result{Order: seq.slice(), Steps: steps}, nil
}
