package builder

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// PlatonicSolid returns a Constructor that builds the 1-skeleton of the named
// Platonic solid. When withCenter is true, an extra hub vertex is connected
// to every shell vertex (a cone over the solid); this is rejected when the
// shell vertex count would push the hub past maxHubDegree.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		count, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: %v: %w", methodPlatonicSolid, name, ErrUnknownSolid)
		}
		if withCenter && count > maxHubDegree {
			return fmt.Errorf("%s: hub degree %d exceeds %d: %w", methodPlatonicSolid, count, maxHubDegree, core.ErrDegreeExceeded)
		}

		if err := addVerticesWithIDFn(g, count, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
		}
		for _, c := range platonicEdgeSets[name] {
			u, v := cfg.idFn(c.U), cfg.idFn(c.V)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPlatonicSolid, u, v, err)
			}
		}

		if withCenter {
			if err := g.AddVertex(centerVertexID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, centerVertexID, err)
			}
			for i := 0; i < count; i++ {
				shell := cfg.idFn(i)
				if err := g.AddEdge(centerVertexID, shell); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPlatonicSolid, centerVertexID, shell, err)
				}
			}
		}

		return nil
	}
}
