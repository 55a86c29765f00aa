package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rymgap/internal/pipeline"
	"rymgap/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Rewrite and print the list of films RateYourMusic lacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			p, err := pipeline.New(pipeline.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}
			entries, err := p.Report()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Every checked film is on RateYourMusic")
				return nil
			}
			fmt.Fprintln(out, renderReportTable(entries))
			fmt.Fprintf(out, "%d film(s) written to %s\n", len(entries), cfg.Catalog.ReportPath)
			return nil
		},
	}
}

func renderReportTable(entries []report.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.ImdbID, entry.Title, entry.Year})
	}
	return renderTable(
		[]string{"IMDb ID", "Title", "Year"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
}
