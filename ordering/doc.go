// Package ordering computes a balanced vertex ordering for a core.Graph: a
// permutation of vertex IDs such that every vertex's neighbors split as
// evenly as possible between "comes before me" (pred) and "comes after me"
// (succ) in the permutation. This is stage B of the orthogonal embedding
// pipeline, feeding stage C (roles) and stage D (port assignment).
//
// The algorithm starts from the graph's natural insertion order and repairs
// local imbalances with a worklist of edges, applying one of eight moves
// (1, 1', 2, 2', 3, 3', 4, 4') per repair step. Each move strictly reduces a
// local imbalance measure, so the worklist drains in finite time for any
// finite graph.
package ordering
