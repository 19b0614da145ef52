package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lifeos/internal/report"
)

func newReportCommand() *cobra.Command {
	var date string
	var pdf bool
	command := &cobra.Command{
		Use:   "report",
		Short: "Write the weekly markdown report",
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

			writer, err := report.NewWriter(cfg.Report.OutputDirectory, cfg.Report.Template)
			if err != nil {
				return fmt.Errorf("report.NewWriter() > %w", err)
			}
			path, err := writer.Write(report.Build(state, ref))
			if err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Markdown report: %s\n", path)

			if pdf {
				pdfPath, err := report.ConvertMarkdownToPDF(path)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF report: %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVar(&date, "date", "", "a day of the reported week (yyyy-MM-dd), today by default")
	command.Flags().BoolVar(&pdf, "pdf", false, "also convert the report to PDF")
	return command
}
