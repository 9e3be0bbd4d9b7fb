package cli

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orthodraw/builder"
)

func newBuildCmd() *cobra.Command {
	var (
		topology string
		n        int
		d        int
		prob     float64
		seed     uint64
		out      string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a bounded-degree topology and write it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			log.Printf("build[%s]: topology=%s n=%d", runID, topology, n)

			cons, err := resolveConstructor(topology, n, d, prob)
			if err != nil {
				return err
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			g, err := builder.BuildGraph(opts, cons)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}

			doc := fromGraph(g)
			doc.RunID = runID
			if err := writeGraphDoc(out, doc); err != nil {
				return err
			}
			log.Printf("build[%s]: wrote %s (%d vertices, %d edges)", runID, out, g.VertexCount(), g.EdgeCount())

			return nil
		},
	}

	cmd.Flags().StringVar(&topology, "topology", "path", "path|cycle|star|wheel|complete|tetrahedron|cube|octahedron|dodecahedron|icosahedron|random-regular|random-sparse")
	cmd.Flags().IntVar(&n, "n", 6, "vertex count")
	cmd.Flags().IntVar(&d, "degree", 3, "regular degree, for random-regular")
	cmd.Flags().Float64Var(&prob, "p", 0.3, "edge probability, for random-sparse")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for randomized topologies")
	cmd.Flags().StringVar(&out, "out", "graph.json", "output path")

	return cmd
}

func resolveConstructor(topology string, n, d int, p float64) (builder.Constructor, error) {
	switch topology {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "tetrahedron":
		return builder.PlatonicSolid(builder.Tetrahedron, false), nil
	case "cube":
		return builder.PlatonicSolid(builder.Cube, false), nil
	case "octahedron":
		return builder.PlatonicSolid(builder.Octahedron, false), nil
	case "dodecahedron":
		return builder.PlatonicSolid(builder.Dodecahedron, false), nil
	case "icosahedron":
		return builder.PlatonicSolid(builder.Icosahedron, false), nil
	case "random-regular":
		return builder.RandomRegular(n, d), nil
	case "random-sparse":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("build: unknown topology %q", topology)
	}
}
