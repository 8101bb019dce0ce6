// Package main is the entry point for the fluxdemo CLI.
//
// fluxdemo runs a small terminal program whose components share state
// through stores: a user list, the selected user's profile, and a feed.
//
// Usage:
//
//	fluxdemo run                   # Start the terminal demo
//	fluxdemo run -c config.yaml    # Start with a custom seed
//	fluxdemo dump                  # Render the views once to stdout
//	fluxdemo validate -c config.yaml
//	fluxdemo version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/odvcencio/fluxstore/config"
)

// Version information, set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fluxdemo",
	Short: "Shared-state terminal demo",
	Long: `fluxdemo shows components sharing state through stores.

Each view reads a snapshot of the stores it needs when it is mounted,
listens for replacements, and releases its listeners when unmounted.

Example config:
  tick_rate: 250ms
  load_delay: 500ms
  seed:
    users:
      - id: 1
        first_name: Konrad`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fluxdemo %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (defaults to the built-in seed)")
	rootCmd.PersistentFlags().String("log-file", "", "write JSON logs to this file")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the --config file, or the defaults when none is given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a JSON logger writing to --log-file. The terminal is owned
// by the UI, so without a file logs are discarded.
func newLogger(cmd *cobra.Command, level slog.Level) (*slog.Logger, io.Closer, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}
