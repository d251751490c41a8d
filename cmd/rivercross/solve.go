package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/rivercross/internal/cli"
	"github.com/aretw0/rivercross/internal/config"
)

var solveFlags = map[string]string{
	"format": "format",
}

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the puzzle and print every solution",
	Long: `Builds the state tree breadth-first and prints it.

Formats:
- text (default): the search trace, the tree level by level, then every solution.
- rich: a rendered markdown report.
- json, yaml: the whole tree and the solutions as data.
- mermaid: the tree as a Mermaid flowchart.
- auto: rich on a terminal, text otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, solveFlags)
		if err != nil {
			return err
		}
		// --no-banner is the negation of the banner setting
		if f := cmd.Flags().Lookup("no-banner"); f != nil && f.Changed {
			noBanner, _ := cmd.Flags().GetBool("no-banner")
			cfg.Banner = !noBanner
		}

		ctx, stop := signalContext()
		defer stop()
		return cli.RunSolve(ctx, cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("format", "f", config.FormatText, "Output format: "+strings.Join(config.Formats, ", "))
	solveCmd.Flags().Bool("no-banner", false, "Do not print the banner before rich output")

	// Make 'solve' the default if no command is provided.
	rootCmd.Flags().AddFlagSet(solveCmd.Flags())
	rootCmd.RunE = solveCmd.RunE
}
