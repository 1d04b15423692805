package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/regionfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a region header and report allocator state",
		Long: `The info command validates a region file's header and displays the
allocator state stored inside it: kind, usable size, cursor position, and
for surge regions the live-allocation count.

Example:
  regionctl info scratch.region
  regionctl info queue.region --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	return cmd
}

func runInfo(path string) error {
	printVerbose("Opening region file: %s\n", path)

	f, err := regionfile.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open region file: %w", err)
	}
	defer f.Close()

	_, stats, err := attachAny(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to attach region: %w", err)
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nRegion Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  File size: %d bytes\n", stat.Size())
	}
	printInfo("  Kind: %s\n", stats.Kind)
	printInfo("  Usable size: %d bytes\n", stats.Size)
	printInfo("  Used: %d bytes\n", stats.Used)
	printInfo("  Available: %d bytes\n", stats.Available)
	printInfo("  Alignment: %d\n", stats.Align)
	if stats.Kind == "surge" {
		printInfo("  Live allocations: %d\n", stats.Count)
	}
	return nil
}
