package ordering

// moveCtx bundles the per-edge state every move predicate/applier needs,
// recomputed once per worklist iteration.
type moveCtx struct {
	seq               *sequence
	pos               map[string]int
	v, w              string
	orderedV, orderedW []string
	typeV, typeW      excess
}

// tryMove1: v is strictly between its neighbor w and the excess-side slack
// bound; slide v to sit right after w.
func tryMove1(c *moveCtx) bool {
	if !opposite(c.v, c.w, c.typeV, c.typeW, c.pos) {
		return false
	}
	i, ok := succDistance(c.v, c.w, c.orderedV)
	if !ok || i < 1 || i > c.typeV.k() {
		return false
	}
	c.seq.insertAfter(c.v, c.w)

	return true
}

// tryMove1Opp is move1's mirror: w sits before v in v's neighbor list, and
// v slides to sit right before w.
func tryMove1Opp(c *moveCtx) bool {
	if !opposite(c.w, c.v, c.typeW, c.typeV, c.pos) {
		return false
	}
	i, ok := predDistance(c.v, c.w, c.orderedV)
	if !ok || i < 1 || i > c.typeW.k() {
		return false
	}
	c.seq.insertBefore(c.v, c.w)

	return true
}

// tryMove2 looks for a pair (vi, wj): vi strictly between v and w in v's
// neighbor list, wj strictly before w in w's neighbor list, with
// pos(v) < pos(wj) < pos(vi) in the global order. On a match, v slides to
// just before vi and w slides to just after wj.
func tryMove2(c *moveCtx) bool {
	if !opposite(c.v, c.w, c.typeV, c.typeW, c.pos) {
		return false
	}
	vIdx, wInV := indexOf(c.orderedV, c.v), indexOf(c.orderedV, c.w)
	if wInV <= vIdx+2 {
		return false
	}
	wIdx := indexOf(c.orderedW, c.w)

	for vi := vIdx + 1; vi < wInV; vi++ {
		viID := c.orderedV[vi]
		for wj := 0; wj < wIdx; wj++ {
			wjID := c.orderedW[wj]
			if !between(c.pos, c.v, wjID, viID) {
				continue
			}
			i, iok := succDistance(c.v, viID, c.orderedV)
			j, jok := predDistance(c.w, wjID, c.orderedW)
			if !iok || !jok || i < 1 || i > c.typeV.k() || j < 1 || j > c.typeW.k() {
				continue
			}
			c.seq.insertBefore(c.v, viID)
			c.seq.insertAfter(c.w, wjID)

			return true
		}
	}

	return false
}

// tryMove2Opp mirrors tryMove2 with v and w's roles swapped.
func tryMove2Opp(c *moveCtx) bool {
	if !opposite(c.w, c.v, c.typeW, c.typeV, c.pos) {
		return false
	}
	wIdx, vInW := indexOf(c.orderedW, c.w), indexOf(c.orderedW, c.v)
	if vInW <= wIdx+2 {
		return false
	}
	vIdx := indexOf(c.orderedV, c.v)

	for wj := wIdx + 1; wj < vInW; wj++ {
		wjID := c.orderedW[wj]
		for vi := 0; vi < vIdx; vi++ {
			viID := c.orderedV[vi]
			if !between(c.pos, c.w, viID, wjID) {
				continue
			}
			j, jok := succDistance(c.w, wjID, c.orderedW)
			i, iok := predDistance(c.v, viID, c.orderedV)
			if !iok || !jok || j < 1 || j > c.typeW.k() || i < 1 || i > c.typeV.k() {
				continue
			}
			c.seq.insertBefore(c.w, wjID)
			c.seq.insertAfter(c.v, viID)

			return true
		}
	}

	return false
}

// tryMove3 looks for a common neighbor vi of v and w, strictly between them
// in v's neighbor list, that lets v slide after vi and w slide before vi.
func tryMove3(c *moveCtx) bool {
	if !opposite(c.v, c.w, c.typeV, c.typeW, c.pos) {
		return false
	}
	vIdx, wInV := indexOf(c.orderedV, c.v), indexOf(c.orderedV, c.w)
	if wInV <= vIdx+1 {
		return false
	}

	for idx := vIdx + 1; idx < wInV; idx++ {
		viID := c.orderedV[idx]
		if indexOf(c.orderedW, viID) < 0 {
			continue
		}
		i, iok := succDistance(c.v, viID, c.orderedV)
		j, jok := predDistance(c.w, viID, c.orderedW)
		if !iok || !jok || i < 1 || i > c.typeV.k()-1 || j < 1 || j > c.typeW.k()-1 {
			continue
		}
		c.seq.insertAfter(c.v, viID)
		c.seq.insertBefore(c.w, viID)

		return true
	}

	return false
}

// tryMove3Opp mirrors tryMove3 with v and w's roles swapped.
func tryMove3Opp(c *moveCtx) bool {
	if !opposite(c.w, c.v, c.typeW, c.typeV, c.pos) {
		return false
	}
	wIdx, vInW := indexOf(c.orderedW, c.w), indexOf(c.orderedW, c.v)
	if vInW <= wIdx+1 {
		return false
	}

	for idx := wIdx + 1; idx < vInW; idx++ {
		viID := c.orderedW[idx]
		if indexOf(c.orderedV, viID) < 0 {
			continue
		}
		j, jok := succDistance(c.w, viID, c.orderedW)
		i, iok := predDistance(c.v, viID, c.orderedV)
		if !iok || !jok || j < 1 || j > c.typeW.k()-1 || i < 1 || i > c.typeV.k()-1 {
			continue
		}
		c.seq.insertAfter(c.w, viID)
		c.seq.insertBefore(c.v, viID)

		return true
	}

	return false
}

// tryMove4 applies when x already holds the graph's maximum observed
// degree: if none of its k nearest neighbors in its excess direction are
// themselves balanced, x slides k positions in that direction.
func tryMove4(c *moveCtx, x string, ordered []string, t excess, maxDegree int) bool {
	if len(ordered)-1 != maxDegree || t.diff() == 0 {
		return false
	}
	k := t.k()
	if k == 0 {
		return false
	}
	idx := indexOf(ordered, x)

	if t.diff() > 0 {
		// Excess is on the succ side: look at the k neighbors after x.
		for s := 1; s <= k; s++ {
			nbr := ordered[idx+s]
			if vertexTypeOf(nbr, ordered).diff() == 0 {
				return false
			}
		}
		target := ordered[idx+k]
		c.seq.insertAfter(x, target)
	} else {
		for s := 1; s <= k; s++ {
			nbr := ordered[idx-s]
			if vertexTypeOf(nbr, ordered).diff() == 0 {
				return false
			}
		}
		target := ordered[idx-k]
		c.seq.insertBefore(x, target)
	}

	return true
}
