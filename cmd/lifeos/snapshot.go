package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lifeos/internal/datasync"
	"github.com/at-ishikawa/lifeos/internal/snapshot"
)

func newSnapshotCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "snapshot",
		Short: "Move snapshots between the YAML directory and MySQL",
	}
	command.AddCommand(
		newSnapshotTransferCommand("export", "Copy the latest MySQL snapshot into the YAML directory", false),
		newSnapshotTransferCommand("import", "Copy the latest YAML snapshot into MySQL", true),
	)
	return command
}

// newSnapshotTransferCommand builds export (MySQL to YAML) and import (YAML to MySQL).
func newSnapshotTransferCommand(use, short string, toDatabase bool) *cobra.Command {
	var directory string
	var opts datasync.Options

	command := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if directory == "" {
				directory = cfg.Snapshot.Directory
			}

			db, err := opener(ctx)(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database > %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Warn("failed to close the database", "error", err)
				}
			}()

			files := snapshot.NewYAMLRepository(directory)
			rows := snapshot.NewDBRepository(db).WithRetention(cfg.Snapshot.Retention)
			syncer := datasync.NewSyncer(rows, files, cmd.OutOrStdout())
			if toDatabase {
				syncer = datasync.NewSyncer(files, rows, cmd.OutOrStdout())
			}

			result, err := syncer.Sync(ctx, opts)
			if err != nil {
				return fmt.Errorf("syncer.Sync() > %w", err)
			}
			printSyncSummary(cmd, result, opts)
			return nil
		},
	}
	command.Flags().StringVar(&directory, "dir", "", "YAML snapshot directory, the configured one by default")
	command.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without writing anything")
	command.Flags().BoolVar(&opts.Force, "force", false, "Copy even when the destination is up to date")
	command.Flags().BoolVar(&opts.Strict, "strict", false, "Refuse to copy a state with dangling references")
	return command
}

func printSyncSummary(cmd *cobra.Command, result *datasync.Result, opts datasync.Options) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nSync Summary:")
	if opts.DryRun {
		fmt.Fprintln(out, "  (dry-run mode, no changes made)")
	}
	fmt.Fprintf(out, "  Copied: %t, skipped: %t, dangling references: %d\n", result.Copied, result.Skipped, result.Invalid)
}
