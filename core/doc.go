// Package core defines the central Graph, Vertex, Edge, and Arc types used
// throughout orthodraw, and provides a thread-safe store for building and
// querying a simple undirected graph of maximum degree six.
//
// Vertices carry a 3-D integer Position (unset until the drawing stage
// runs) and a fixed Degree. Every undirected Edge owns exactly two Arcs —
// the two oriented "half-edge" views (u→v) and (v→u) — which the port
// assignment and drawing stages annotate with a color (coordinate axis), an
// orientation, and a handful of role flags (Movement, Special, Anchor).
//
// core itself never decides colors, orientations, or positions: it is pure
// storage plus the handful of structural operations (AddVertex, AddEdge,
// Contract, enumeration) that every later stage depends on.
//
// Determinism:
//   - Vertices(), Edges(), and Arcs() return results in stable insertion
//     order, not map iteration order.
//
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards edges and
//     adjacency. The orthodraw pipeline itself runs single-threaded and
//     synchronous (stages never overlap), but the store is safe to share
//     across goroutines the way the rest of this corpus's graph stores are.
package core
