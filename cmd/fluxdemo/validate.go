package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/fluxstore/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a fluxdemo configuration file without starting the demo.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  fluxdemo validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return errors.New("--config is required")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Tick rate:  %s\n", cfg.TickRate.Duration())
	fmt.Fprintf(out, "  Load delay: %s\n", cfg.LoadDelay.Duration())
	fmt.Fprintf(out, "  Users:      %d\n", len(cfg.Seed.Users))
	fmt.Fprintf(out, "  Feed items: %d\n", len(cfg.Seed.Feed))
	return nil
}
