package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/regionfile"
)

func init() {
	rootCmd.AddCommand(newResetCmd())
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <file>",
		Short: "Reset a region's allocator state in place",
		Long: `The reset command moves the region's cursor back to the start and, for
surge regions, zeroes the live-allocation count. Payload bytes are left in
place; only the allocator header changes.

Example:
  regionctl reset scratch.region`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(args[0])
		},
	}
	return cmd
}

func runReset(path string) error {
	f, err := regionfile.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open region file: %w", err)
	}
	defer f.Close()

	a, stats, err := attachAny(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to attach region: %w", err)
	}

	printVerbose("Resetting %s region with %d bytes used\n", stats.Kind, stats.Used)
	a.Reset()

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync region file: %w", err)
	}

	printInfo("Reset %s region: %s (%d bytes reclaimed)\n", stats.Kind, path, stats.Used)
	return nil
}
