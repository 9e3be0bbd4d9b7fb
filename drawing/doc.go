// Package drawing implements stage E of the embedding pipeline: it places
// every vertex at an integer lattice position from the balanced order,
// displaces movement-arc endpoints along their assigned axis, routes every
// edge as a short axis-aligned polyline, and then iteratively swaps
// colliding ports until no two routed edges cross.
package drawing
