package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Path returns a Constructor that builds a simple path P_n (n >= 2), with
// vertices idFn(0)..idFn(n-1) and edges (i-1)-i for i=1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
