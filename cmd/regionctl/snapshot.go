package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/region/snap"
	"github.com/joshuapare/arenakit/regionfile"
)

func init() {
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newRestoreCmd())
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot <file> <snapshot>",
		Short: "Write a compressed snapshot of a region file",
		Long: `The snapshot command compresses a region file into a portable snapshot.
Because handles are offsets from the region start, the snapshot can be
restored on another machine and every handle still resolves.

Example:
  regionctl snapshot scratch.region scratch.snap`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(args[0], args[1])
		},
	}
	return cmd
}

func runSnapshot(regionPath, snapPath string) error {
	f, err := regionfile.Open(regionPath)
	if err != nil {
		return fmt.Errorf("failed to open region file: %w", err)
	}
	defer f.Close()

	if err := snap.SaveFile(snapPath, f.Bytes()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if stat, err := os.Stat(snapPath); err == nil {
		printInfo("Wrote snapshot: %s (%d -> %d bytes)\n", snapPath, len(f.Bytes()), stat.Size())
	} else {
		printInfo("Wrote snapshot: %s\n", snapPath)
	}
	return nil
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <snapshot> <file>",
		Short: "Restore a region file from a snapshot",
		Long: `The restore command decompresses a snapshot into a fresh region file.
The target file must not exist.

Example:
  regionctl restore scratch.snap scratch.region`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args[0], args[1])
		},
	}
	return cmd
}

func runRestore(snapPath, regionPath string) error {
	data, err := snap.LoadFile(snapPath)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	f, err := regionfile.Create(regionPath, int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to create region file: %w", err)
	}
	defer f.Close()

	copy(f.Bytes(), data)
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync region file: %w", err)
	}

	printInfo("Restored region: %s (%d bytes)\n", regionPath, len(data))
	return nil
}
