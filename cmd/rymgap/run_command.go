package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rymgap/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run [start] [end]",
		Short: "Sweep OMDb, verify against RateYourMusic, and write the report",
		Long: `Run walks IMDb identifiers from start to end, fetching every title OMDb
knows about into the catalog, stopping at the first identifier OMDb has
never heard of. It then checks each unchecked movie against RateYourMusic
in a headless browser and writes the films RateYourMusic lacks to the
report file.

Both arguments are sequence numbers (the digits of an IMDb identifier);
malformed or missing values fall back to the full range.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx, cancel := signalContext(cmd)
			defer cancel()

			fetcher, err := newFetcher(cfg)
			if err != nil {
				return err
			}
			searcher, closeSearcher, err := newSearcher(runCtx, cfg, logger)
			if err != nil {
				return fmt.Errorf("launch browser: %w", err)
			}
			defer closeSearcher()

			p, err := pipeline.New(pipeline.Options{
				Config:   cfg,
				Fetcher:  fetcher,
				Searcher: searcher,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			summary, err := p.Run(runCtx, rangeFromArgs(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweep %s: %d fetched, %d skipped\n",
				summary.Sweep.State, summary.Sweep.Fetched, summary.Sweep.Skipped)
			if summary.Sweep.HaltedAt != "" {
				fmt.Fprintf(out, "First unknown identifier: %s\n", summary.Sweep.HaltedAt)
			}
			fmt.Fprintf(out, "Verified %d movie(s); catalog holds %d record(s)\n",
				summary.Annotated, summary.CatalogLen)
			fmt.Fprintf(out, "%d film(s) missing from RateYourMusic -> %s\n",
				summary.Missing, summary.ReportPath)
			return nil
		},
	}
}
