package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lifeos/internal/seed"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
)

func newSeedCommand() *cobra.Command {
	var out string
	command := &cobra.Command{
		Use:   "seed",
		Short: "Write a snapshot file filled with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			takenAt := now().In(cfg.Location())
			if out == "" {
				out = filepath.Join(cfg.Snapshot.Directory, snapshot.FileName(takenAt))
			}

			state := seed.Generate(takenAt, uuid.NewString)
			if err := snapshot.WriteFile(out, snapshot.Snapshot{TakenAt: takenAt, State: state}); err != nil {
				return fmt.Errorf("snapshot.WriteFile() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seed snapshot: %s\n", out)
			return nil
		},
	}
	command.Flags().StringVar(&out, "out", "", "output file, a new file in the snapshot directory by default")
	return command
}
