package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Complete returns a Constructor that builds K_n (1 <= n <= maxHubDegree+1,
// since every vertex ends up with degree n-1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if n-1 > maxHubDegree {
			return fmt.Errorf("%s: vertex degree %d exceeds %d: %w", methodComplete, n-1, maxHubDegree, core.ErrDegreeExceeded)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
