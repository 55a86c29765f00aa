package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rymgap/internal/pipeline"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check unchecked catalog movies against RateYourMusic",
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

			runCtx, cancel := signalContext(cmd)
			defer cancel()

			searcher, closeSearcher, err := newSearcher(runCtx, cfg, logger)
			if err != nil {
				return fmt.Errorf("launch browser: %w", err)
			}
			defer closeSearcher()

			p, err := pipeline.New(pipeline.Options{Config: cfg, Searcher: searcher, Logger: logger})
			if err != nil {
				return err
			}

			annotated, err := p.Verify(runCtx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Verified %d movie(s)\n", annotated)
			return nil
		},
	}
}
