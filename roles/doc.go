// Package roles labels graph arcs with Movement and Special flags, stage C
// of the orthogonal embedding pipeline. A vertex's (succ, pred) type,
// computed the same way ordering.Order computes it internally, determines
// which of its arcs (if any) get flagged; stage D (portassign) uses these
// flags to decide how a vertex's arcs share ports.
package roles
