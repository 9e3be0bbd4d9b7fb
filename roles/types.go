package roles

import "errors"

// Sentinel errors for Label.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("roles: graph is nil")

	// ErrOrderMismatch is returned when order does not contain exactly the
	// graph's vertex set.
	ErrOrderMismatch = errors.New("roles: order does not match graph vertices")
)

type flagKind int

const (
	movementFlag flagKind = iota
	specialFlag
)

// rule places a flag on the arc reached by walking offset positions (signed,
// relative to v's own index) into v's neighbor-ordered sublist.
type rule struct {
	offset int
	flag   flagKind
}

// table maps a vertex's (succ, pred) type to the rules it triggers, ported
// directly from the type-by-type dispatch in movement_special.py.
var table = map[[2]int][]rule{
	{4, 0}: {{1, movementFlag}},
	{0, 4}: {{-1, movementFlag}},
	{4, 1}: {{1, movementFlag}},
	{1, 4}: {{-1, movementFlag}},
	{5, 0}: {{1, movementFlag}, {2, movementFlag}},
	{0, 5}: {{-1, movementFlag}, {-2, movementFlag}},
	{4, 2}: {{1, specialFlag}},
	{2, 4}: {{-1, specialFlag}},
	{5, 1}: {{1, movementFlag}, {2, specialFlag}},
	{1, 5}: {{-1, movementFlag}, {-2, specialFlag}},
	{6, 0}: {{1, movementFlag}, {2, movementFlag}, {3, specialFlag}},
	{0, 6}: {{-1, movementFlag}, {-2, movementFlag}, {-3, specialFlag}},
}
