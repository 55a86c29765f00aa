package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rymgap/internal/pipeline"
)

func newSweepCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep [start] [end]",
		Short: "Build the catalog from OMDb without touching RateYourMusic",
		Args:  cobra.MaximumNArgs(2),
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
			p, err := pipeline.New(pipeline.Options{Config: cfg, Fetcher: fetcher, Logger: logger})
			if err != nil {
				return err
			}

			result, err := p.Sweep(runCtx, rangeFromArgs(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweep %s: %d fetched, %d skipped\n",
				result.State, result.Fetched, result.Skipped)
			if result.HaltedAt != "" {
				fmt.Fprintf(out, "First unknown identifier: %s\n", result.HaltedAt)
			}
			return nil
		},
	}
}
