package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	orthodraw "github.com/katalvlaran/orthodraw"
)

func newEmbedCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Run the full orthodraw pipeline over a graph JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readGraphDoc(in)
			if err != nil {
				return err
			}
			g, err := doc.toGraph()
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}

			log.Printf("embed[%s]: %d vertices, %d edges", doc.RunID, g.VertexCount(), g.EdgeCount())
			res, err := orthodraw.Embed(g)
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			log.Printf("embed[%s]: balanced order settled after %d moves", doc.RunID, len(res.Steps))

			outDoc := fromGraph(g)
			outDoc.RunID = doc.RunID
			outDoc.Order = res.Order
			if err := writeGraphDoc(out, outDoc); err != nil {
				return err
			}
			log.Printf("embed[%s]: wrote %s", doc.RunID, out)

			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "graph.json", "input graph JSON path (from `orthodraw build`)")
	cmd.Flags().StringVar(&out, "out", "embedded.json", "output path")

	return cmd
}
