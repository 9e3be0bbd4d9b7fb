package portassign

// table3 computes the 6-slot port assignment for v: slots 0-2 are the
// "negative" (pred) side ports, slots 3-5 the "positive" (succ) side,
// filled[i] reports whether slot i is occupied. Ported from table3.py; the
// general case (succ, pred both < 4) always maps succ neighbors onto the
// positive slots and pred neighbors onto the negative slots, and each named
// type from [4,0] through [0,6] has its own explicit, hand-tuned layout
// (near-side neighbors take the inner slots 1-2 regardless of direction,
// the rest overflow outward — this is deliberate port geometry, not a
// succ/pred sign convention, and is transcribed verbatim).
//
// The original source branches the general case on succ >= pred vs.
// succ < pred, and the succ < pred branch swaps which loop reads forward
// vs. backward neighbors. That swap is an index-overflow bug whenever
// succ == 0 (e.g. type [0,1]): v then sits at the last position of its own
// ordered neighbor list, and the swapped branch tries to read a forward
// neighbor one past the end. This implementation always reads succ forward
// and pred backward, matching the succ_i/pred_i convention spec.md uses
// uniformly in its movement/special table (§4.C) and never overflows.
func table3(v string, t excess, ordered []string) (nodes [6]string, filled [6]bool) {
	idx := indexOfString(ordered, v)
	at := func(offset int) string { return ordered[idx+offset] }

	switch {
	case t.succ < 4 && t.pred < 4:
		for i := 0; i < t.succ; i++ {
			nodes[3+i], filled[3+i] = at(i+1), true
		}
		for i := 0; i < t.pred; i++ {
			nodes[3-i-1], filled[3-i-1] = at(-i-1), true
		}

	case t.succ == 4 && t.pred == 0:
		nodes = [6]string{at(1), "", "", at(2), at(3), at(4)}
		filled = [6]bool{true, false, false, true, true, true}
	case t.succ == 0 && t.pred == 4:
		nodes = [6]string{at(-1), "", "", at(-2), at(-3), at(-4)}
		filled = [6]bool{true, false, false, true, true, true}
	case t.succ == 4 && t.pred == 1:
		nodes = [6]string{at(-1), at(1), "", at(2), at(3), at(4)}
		filled = [6]bool{true, true, false, true, true, true}
	case t.succ == 1 && t.pred == 4:
		nodes = [6]string{at(1), at(-1), "", at(-2), at(-3), at(-4)}
		filled = [6]bool{true, true, false, true, true, true}
	case t.succ == 4 && t.pred == 2:
		nodes = [6]string{at(-2), at(-1), at(1), at(2), at(3), at(4)}
		filled = [6]bool{true, true, true, true, true, true}
	case t.succ == 2 && t.pred == 4:
		nodes = [6]string{at(2), at(1), at(-1), at(-2), at(-3), at(-4)}
		filled = [6]bool{true, true, true, true, true, true}
	case t.succ == 5 && t.pred == 0:
		nodes = [6]string{at(1), at(2), "", at(3), at(4), at(5)}
		filled = [6]bool{true, true, false, true, true, true}
	case t.succ == 0 && t.pred == 5:
		nodes = [6]string{at(-1), at(-2), "", at(-3), at(-4), at(-5)}
		filled = [6]bool{true, true, false, true, true, true}
	case t.succ == 5 && t.pred == 1:
		nodes = [6]string{at(-1), at(1), at(2), at(3), at(4), at(5)}
		filled = [6]bool{true, true, true, true, true, true}
	case t.succ == 1 && t.pred == 5:
		nodes = [6]string{at(1), at(-1), at(-2), at(-3), at(-4), at(-5)}
		filled = [6]bool{true, true, true, true, true, true}
	case t.succ == 6 && t.pred == 0:
		nodes = [6]string{at(1), at(2), at(3), at(4), at(5), at(6)}
		filled = [6]bool{true, true, true, true, true, true}
	case t.succ == 0 && t.pred == 6:
		nodes = [6]string{at(-1), at(-2), at(-3), at(-4), at(-5), at(-6)}
		filled = [6]bool{true, true, true, true, true, true}
	}

	return nodes, filled
}
