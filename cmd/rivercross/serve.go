package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/rivercross/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long: `Solves the puzzle once and exposes the tree as a JSON API over HTTP:
/health, /info, /graph, /graph/mermaid, /solutions, /nodes/{id} and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, map[string]string{"addr": "http.addr"})
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()
		return cli.RunServe(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
