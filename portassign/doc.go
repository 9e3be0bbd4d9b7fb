// Package portassign implements stage D of the orthogonal embedding
// pipeline: assigning each arc an orientation (+1/-1) and a color (one of
// the three coordinate axes).
//
// Orientation comes straight from table3, a per-vertex lookup keyed by
// (succ, pred) type. Color requires more care: arcs sharing a port slot, or
// chained through a movement relationship, must never receive the same
// color, so the package builds an auxiliary conflict graph H (one vertex per
// arc of the original graph), simplifies it into H' (dropping vertices whose
// slot is structurally unambiguous, merging vertices that must share a
// color), 3-colors H' with a Brooks'-theorem-grounded algorithm (max degree
// in H is always ≤ 3), and propagates the result back through H to the
// original arcs.
package portassign
