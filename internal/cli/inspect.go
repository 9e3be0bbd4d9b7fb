package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orthodraw/bfs"
)

func newInspectCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report vertex/edge counts and connected components for a graph JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readGraphDoc(in)
			if err != nil {
				return err
			}
			g, err := doc.toGraph()
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			comps, err := bfs.ConnectedComponents(g)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			fmt.Printf("vertices: %d\n", g.VertexCount())
			fmt.Printf("edges: %d\n", g.EdgeCount())
			fmt.Printf("connected components: %d\n", len(comps))
			for i, comp := range comps {
				fmt.Printf("  component %d: %d vertices\n", i, len(comp))
			}
			if len(doc.Order) > 0 {
				fmt.Printf("balanced order: %v\n", doc.Order)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "graph.json", "input graph JSON path")

	return cmd
}
