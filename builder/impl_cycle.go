package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n
// (n >= 3): vertices idFn(0)..idFn(n-1), edges i-(i+1 mod n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
