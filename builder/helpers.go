package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// addVerticesWithIDFn inserts n vertices with IDs idFn(0)..idFn(n-1).
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}

	return nil
}
