package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/rivercross/internal/cli"
	"github.com/aretw0/rivercross/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "rivercross",
	Short: "rivercross solves the farmer, wolf, sheep and cabbage puzzle",
	Long: `rivercross builds the breadth-first state tree of the river crossing puzzle
and reports every solution. Without a subcommand it behaves like 'solve'.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a rivercross.yaml or .json settings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig merges the config file with the flags the user actually set.
// flagKeys maps a flag name to its dotted config key.
func loadConfig(cmd *cobra.Command, flagKeys map[string]string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	overrides := map[string]any{}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		overrides["log_level"] = level
	}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		setKey(overrides, key, f.Value.String())
	}
	return cli.LoadConfig(path, overrides)
}

// setKey stores value under a one- or two-level key such as "http.addr".
func setKey(m map[string]any, key, value string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			section, _ := m[key[:i]].(map[string]any)
			if section == nil {
				section = map[string]any{}
				m[key[:i]] = section
			}
			section[key[i+1:]] = value
			return
		}
	}
	m[key] = value
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
