package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/rivercross/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the search tree visualization",
	Long:  `Builds the state tree and outputs a Mermaid diagram (graph TD) with one labeled edge per accepted move.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		highlight, _ := cmd.Flags().GetBool("solutions")

		ctx, stop := signalContext()
		defer stop()
		return cli.RunGraph(ctx, cmd.OutOrStdout(), cfg, highlight)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("solutions", false, "Highlight the nodes on solution paths")
}
