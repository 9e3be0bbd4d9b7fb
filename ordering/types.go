package ordering

import "errors"

// Sentinel errors for Order.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ordering: graph is nil")

	// ErrEmptyGraph is returned for a graph with no vertices.
	ErrEmptyGraph = errors.New("ordering: graph has no vertices")
)

// Move identifies which repair rule a worklist step applied, recorded for
// diagnostics and testing. MoveNone means the edge under inspection needed
// no repair.
type Move int

const (
	MoveNone Move = iota
	Move1
	Move1Opp
	Move2
	Move2Opp
	Move3
	Move3Opp
	Move4
	Move4Opp
)

// String renders a Move as its table name.
func (m Move) String() string {
	switch m {
	case Move1:
		return "move1"
	case Move1Opp:
		return "move1opp"
	case Move2:
		return "move2"
	case Move2Opp:
		return "move2opp"
	case Move3:
		return "move3"
	case Move3Opp:
		return "move3opp"
	case Move4:
		return "move4"
	case Move4Opp:
		return "move4opp"
	default:
		return "none"
	}
}

// Step records one worklist iteration that produced a non-trivial move.
type Step struct {
	Edge [2]string
	Move Move
}

// Result holds the outcome of Order.
type Result struct {
	// Order is the final vertex permutation.
	Order []string

	// Steps lists, in application order, every non-trivial move taken.
	Steps []Step
}

// excess is a vertex's (succ, pred) split relative to a neighbor-ordered
// sublist: succ counts neighbors positioned after it, pred counts neighbors
// positioned before it.
type excess struct {
	succ, pred int
}

// diff is the signed imbalance succ-pred; positive means "wants to move
// later", negative means "wants to move earlier".
func (e excess) diff() int {
	return e.succ - e.pred
}

// k is floor(|succ-pred|/2), the maximum single-move correction distance.
// SPEC_FULL.md defines every move threshold in terms of this absolute value;
// the original Python occasionally omits the absolute value for case 2/2'/3/
// 3' (an apparent sign bug there that would make those cases unreachable
// whenever the mirrored vertex's excess is negative), so this package follows
// the spec's explicit, consistent definition instead of the literal source.
func (e excess) k() int {
	d := e.diff()
	if d < 0 {
		d = -d
	}

	return d / 2
}
