package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lifeos/internal/cli"
	"github.com/at-ishikawa/lifeos/internal/model"
	"github.com/at-ishikawa/lifeos/internal/statistics"
)

func newDashboardCommand() *cobra.Command {
	var date string
	command := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's summary of every area",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ref, err := referenceTime(date, cfg.Location())
			if err != nil {
				return err
			}
			state, err := loadLocalState(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return cli.NewRenderer(cmd.OutOrStdout()).Dashboard(statistics.Dashboard(state, ref))
		},
	}
	command.Flags().StringVar(&date, "date", "", "reference day (yyyy-MM-dd), today by default")
	return command
}

func newHabitsCommand() *cobra.Command {
	var date string
	command := &cobra.Command{
		Use:   "habits",
		Short: "Show habits with their streaks and last seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ref, err := referenceTime(date, cfg.Location())
			if err != nil {
				return err
			}
			state, err := loadLocalState(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			overview := statistics.HabitOverview(state.Habits, model.DateOf(ref))
			return cli.NewRenderer(cmd.OutOrStdout()).Habits(overview)
		},
	}
	command.Flags().StringVar(&date, "date", "", "reference day (yyyy-MM-dd), today by default")
	return command
}

func newStudyCommand() *cobra.Command {
	var date string
	command := &cobra.Command{
		Use:   "study",
		Short: "Show subject progress, today's lessons, the weekly plan and the exam countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ref, err := referenceTime(date, cfg.Location())
			if err != nil {
				return err
			}
			state, err := loadLocalState(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return cli.NewRenderer(cmd.OutOrStdout()).Study(cli.NewStudyView(state, ref))
		},
	}
	command.Flags().StringVar(&date, "date", "", "reference day (yyyy-MM-dd), today by default")
	return command
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report references to missing books, subjects and lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := loadLocalState(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			dangling := state.Integrity()
			if err := cli.NewRenderer(cmd.OutOrStdout()).Integrity(dangling); err != nil {
				return err
			}
			if len(dangling) > 0 {
				return fmt.Errorf("validation failed with %d error(s)", len(dangling))
			}
			return nil
		},
	}
}
