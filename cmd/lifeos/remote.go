package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lifeos/internal/cli"
	"github.com/at-ishikawa/lifeos/internal/client"
	"github.com/at-ishikawa/lifeos/internal/config"
	"github.com/at-ishikawa/lifeos/internal/model"
)

func newRemoteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running lifeos-server",
	}
	command.AddCommand(
		newRemoteDashboardCommand(),
		newRemoteStateCommand(),
		newRemoteToggleHabitCommand(),
		newRemoteSaveSnapshotCommand(),
	)
	return command
}

// withClient loads the config and hands a client for the configured server to fn.
func withClient(fn func(cfg *config.Config, c *client.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := client.NewClient(cfg.Client)
	defer func() {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close the client", "error", err)
		}
	}()
	return fn(cfg, c)
}

func parseDateFlag(date string) (model.Date, error) {
	if date == "" {
		return model.Date{}, nil
	}
	day, err := model.ParseDate(date)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid --date %q, expected yyyy-MM-dd > %w", date, err)
	}
	return day, nil
}

func newRemoteDashboardCommand() *cobra.Command {
	var date string
	command := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the server's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			return withClient(func(cfg *config.Config, c *client.Client) error {
				summary, err := c.Dashboard(cmd.Context(), day)
				if err != nil {
					return fmt.Errorf("client.Dashboard() > %w", err)
				}
				return cli.NewRenderer(cmd.OutOrStdout()).Dashboard(summary)
			})
		},
	}
	command.Flags().StringVar(&date, "date", "", "reference day (yyyy-MM-dd), the server's today by default")
	return command
}

func newRemoteStateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show how many entities the server holds per collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(cfg *config.Config, c *client.Client) error {
				state, err := c.State(cmd.Context())
				if err != nil {
					return fmt.Errorf("client.State() > %w", err)
				}
				sizes := state.Sizes()
				names := make([]string, 0, len(sizes))
				for name := range sizes {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", name, sizes[name])
				}
				return nil
			})
		},
	}
}

func newRemoteToggleHabitCommand() *cobra.Command {
	var date string
	command := &cobra.Command{
		Use:   "toggle-habit <habit-id>",
		Short: "Flip whether a habit is done on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			return withClient(func(cfg *config.Config, c *client.Client) error {
				if day.IsZero() {
					day = model.DateOf(now().In(cfg.Location()))
				}
				habit, err := c.ToggleHabit(cmd.Context(), args[0], day)
				if err != nil {
					return fmt.Errorf("client.ToggleHabit() > %w", err)
				}
				completion, _ := habit.CompletionOn(day)
				fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %t\n", habit.Name, day, completion.Completed)
				return nil
			})
		},
	}
	command.Flags().StringVar(&date, "date", "", "day to toggle (yyyy-MM-dd), today by default")
	return command
}

func newRemoteSaveSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save-snapshot",
		Short: "Ask the server to save its state now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(cfg *config.Config, c *client.Client) error {
				takenAt, err := c.SaveSnapshot(cmd.Context())
				if err != nil {
					return fmt.Errorf("client.SaveSnapshot() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot saved at %s\n", takenAt.UTC().Format("2006-01-02T15:04:05Z"))
				return nil
			})
		},
	}
}
