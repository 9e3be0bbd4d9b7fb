package portassign

import (
	"errors"
	"sort"
)

// Sentinel errors for Assign.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("portassign: graph is nil")

	// ErrOrderMismatch is returned when order does not match the graph's
	// vertex set.
	ErrOrderMismatch = errors.New("portassign: order does not match graph vertices")

	// ErrOrientationCount is returned when a vertex's arcs did not all
	// receive an orientation (an internal consistency check mirroring the
	// original source's ValueError).
	ErrOrientationCount = errors.New("portassign: orientation count mismatch")

	// ErrArcCount is returned when the total number of oriented arcs does
	// not match the graph's arc count.
	ErrArcCount = errors.New("portassign: total arc count mismatch")

	// ErrColoring is returned when the auxiliary graph could not be
	// 3-colored (a structural precondition failure: H should always have
	// max degree ≤ 3 and never contain K4).
	ErrColoring = errors.New("portassign: failed to 3-color the auxiliary graph")

	// ErrKTooLarge is returned if the auxiliary graph unexpectedly contains
	// a complete subgraph on max-degree+1 vertices.
	ErrKTooLarge = errors.New("portassign: auxiliary graph contains a complete subgraph larger than its chromatic bound")
)

// arcKey identifies a directed arc (start, end) — H's vertex identity. Using
// a small comparable struct as a map key is the Go-idiomatic substitute for
// the original's tuples-as-dict-keys.
type arcKey struct {
	start, end string
}

func (a arcKey) less(b arcKey) bool {
	if a.start != b.start {
		return a.start < b.start
	}

	return a.end < b.end
}

// excess is a vertex's (succ, pred) split, computed the same way ordering
// and roles compute it: relative to the neighbor-ordered sublist.
type excess struct {
	succ, pred int
}

func sortArcKeys(keys []arcKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
}
