package drawing

import "errors"

// Sentinel errors for the drawing stage. Compare with errors.Is.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("drawing: graph is nil")

	// ErrOrderMismatch indicates the supplied order does not list exactly
	// the graph's vertices.
	ErrOrderMismatch = errors.New("drawing: order does not match graph vertices")

	// ErrColorUnset indicates an arc reached the drawing stage without a
	// color assigned by port assignment (stage D).
	ErrColorUnset = errors.New("drawing: arc has no assigned color")

	// ErrPositionUnset indicates a vertex reached routing without a
	// position assigned by Place.
	ErrPositionUnset = errors.New("drawing: vertex has no assigned position")
)

// crossKind identifies the class of a detected crossing between two routed
// edges at a shared vertex, per the case table (spec.md §4.E).
type crossKind int

const (
	crossNone crossKind = iota
	cross1
	cross21
	cross22
	cross3
)
