package cli

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

// Execute runs the orthodraw CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "orthodraw",
		Short:        "orthodraw builds and embeds bounded-degree graphs as 3-D orthogonal drawings",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(discardWriter{})
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage to stderr")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newEmbedCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(context.Background())
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
