package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// RandomRegular returns a Constructor that builds a random d-regular graph on
// n vertices via repeated stub (configuration-model) matching: n*d must be
// even, and d must respect maxHubDegree since core.Graph enforces it anyway.
// A generated pairing that would double an edge or self-loop is discarded and
// the whole pairing is retried, up to maxStubMatchingAttempts times.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minStarNodes, ErrTooFewVertices)
		}
		if d < 0 || d > maxHubDegree {
			return fmt.Errorf("%s: d=%d exceeds %d: %w", methodRandomRegular, d, maxHubDegree, core.ErrDegreeExceeded)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d=%d is odd: %w", methodRandomRegular, n*d, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, err)
		}

		var pairing [][2]int
		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			p, ok := tryStubMatching(cfg, n, d)
			if ok {
				pairing = p
				break
			}
		}
		if pairing == nil {
			return fmt.Errorf("%s: no valid pairing after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		for _, pair := range pairing {
			u, v := cfg.idFn(pair[0]), cfg.idFn(pair[1])
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomRegular, u, v, err)
			}
		}

		return nil
	}
}

// tryStubMatching builds one candidate stub list (each vertex repeated d
// times), shuffles it, and pairs consecutive stubs. It rejects the pairing on
// any self-loop or repeated edge rather than patching it in place, since a
// patch can itself reintroduce a collision.
func tryStubMatching(cfg builderConfig, n, d int) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}
	cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	seen := make(map[[2]int]bool, len(stubs)/2)
	pairing := make([][2]int, 0, len(stubs)/2)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			return nil, false
		}
		seen[key] = true
		pairing = append(pairing, key)
	}

	return pairing, true
}
