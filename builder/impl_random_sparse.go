package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// RandomSparse returns a Constructor that builds an Erdos-Renyi G(n, p)
// graph: every one of the n*(n-1)/2 candidate pairs is included independently
// with probability p. Because core.Graph caps every vertex at MaxDegree, a
// candidate edge that would push either endpoint over the cap is skipped
// rather than failing the whole build - true G(n,p) sampling has no degree
// cap, so silently respecting core's bound is the only way to keep p
// meaningful for dense candidate sets.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minStarNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%v out of [%v,%v]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v); err != nil {
					if errors.Is(err, core.ErrDegreeExceeded) {
						continue
					}
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
