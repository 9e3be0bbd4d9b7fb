// Package builder provides deterministic constructors for the bounded-degree
// topologies the embedding pipeline operates on: paths, cycles, stars,
// wheels, complete graphs, Platonic solids, and two randomized families
// (regular and Erdős–Rényi-style sparse). Every constructor enforces
// core.MaxDegree transitively through core.Graph.AddEdge, so a topology that
// would exceed degree six fails with core.ErrDegreeExceeded rather than
// silently truncating. The one exception is RandomSparse, which skips any
// sampled edge that would push an endpoint past core.MaxDegree and keeps
// building.
//
// A single entry point, BuildGraph, resolves functional options into a
// builderConfig and applies any number of Constructor closures in order,
// mirroring how the rest of this module favors small composable stages over
// one large configuration object.
package builder
