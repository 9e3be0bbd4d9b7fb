// Package orthodraw embeds a bounded-degree simple graph into 3-space as an
// orthogonal drawing: every vertex lands on an integer lattice point and
// every edge is routed as a short axis-aligned polyline, with no two routed
// edges crossing.
//
// Embed runs the five pipeline stages in order:
//
//	A. core       - graph store, max-degree-6 invariant
//	B. ordering   - balanced vertex ordering
//	C. roles      - movement/special arc labeling
//	D. portassign - color/orientation assignment per vertex
//	E. drawing    - placement, routing, crossing removal
//
// The builder subpackage generates bounded-degree topologies (paths, cycles,
// wheels, Platonic solids, random regular/sparse graphs) to feed Embed;
// cmd/orthodraw wraps the whole pipeline as a CLI.
package orthodraw
