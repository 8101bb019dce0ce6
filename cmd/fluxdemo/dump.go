package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/fluxstore/agent"
	"github.com/odvcencio/fluxstore/runtime"
	"github.com/odvcencio/fluxstore/stores"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Render the views once to stdout",
	Long: `Render the views once, with users loaded, and print the frame.

No terminal is required, which makes this useful for checking a seed.

Example:
  fluxdemo dump -c config.yaml --width 60`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().Int("width", 80, "frame width in cells")
	dumpCmd.Flags().Int("height", 40, "maximum frame height in lines")
	dumpCmd.Flags().Bool("json", false, "print the frame as a JSON snapshot")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cmd, cfg.SlogLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	s := stores.New(cfg.Seed, logger)
	defer s.Close()
	s.Users.SetState(stores.SeedUsers(cfg.Seed))

	root := newRoot(s)
	runtime.MountTree(root)
	defer runtime.UnmountTree(root)

	lines := root.View(width, height)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(agent.Snapshot{
			Timestamp: time.Now(),
			Width:     width,
			Height:    height,
			Frames:    1,
			Lines:     lines,
		})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return err
}
