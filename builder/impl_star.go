package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Star returns a Constructor that builds a star with hub "Center" and n-1
// leaves (2 <= n <= maxHubDegree+1, since the hub's degree is n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if n-1 > maxHubDegree {
			return fmt.Errorf("%s: hub degree %d exceeds %d: %w", methodStar, n-1, maxHubDegree, core.ErrDegreeExceeded)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := g.AddEdge(centerVertexID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodStar, centerVertexID, leaf, err)
			}
		}

		return nil
	}
}
