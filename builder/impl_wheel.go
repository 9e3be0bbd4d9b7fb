package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center"
// (4 <= n <= maxHubDegree+1, since the hub connects to every ring vertex).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if n-1 > maxHubDegree {
			return fmt.Errorf("%s: hub degree %d exceeds %d: %w", methodWheel, n-1, maxHubDegree, core.ErrDegreeExceeded)
		}
		if err := Cycle(n - 1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			if err := g.AddEdge(centerVertexID, rim); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodWheel, centerVertexID, rim, err)
			}
		}

		return nil
	}
}
