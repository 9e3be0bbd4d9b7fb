package builder

import "errors"

// Sentinel errors for the builder package. Callers should branch with
// errors.Is, never by string.
var (
	// ErrTooFewVertices indicates a size parameter (n, d, ...) is below the
	// minimum the requested constructor requires.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability parameter fell outside
	// the closed interval [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG (WithSeed/WithRand must be supplied).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnknownSolid indicates an unrecognized PlatonicName.
	ErrUnknownSolid = errors.New("builder: unknown platonic solid")

	// ErrConstructFailed indicates a graph could not be constructed: a nil
	// Constructor was passed to BuildGraph, RandomRegular was asked for an
	// odd n*d, or a stochastic constructor exhausted its bounded retry
	// budget without producing a graph that satisfies both the requested
	// topology and core.MaxDegree.
	ErrConstructFailed = errors.New("builder: construction failed")
)
