package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rymgap/internal/config"
	"rymgap/internal/omdb"
	"rymgap/internal/rym"
	"rymgap/internal/sweep"
)

func newFetcher(cfg *config.Config) (*omdb.Client, error) {
	return omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL)
}

// newSearcher launches the browser. The returned closer must run before
// the process exits or the Chrome child is leaked.
func newSearcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*rym.Client, func(), error) {
	client := rym.NewClient(rym.Config{
		BaseURL:         cfg.RYM.BaseURL,
		Headless:        cfg.RYM.Headless,
		NavigateTimeout: time.Duration(cfg.RYM.NavigateTimeout) * time.Second,
		Logger:          logger,
	})
	if err := client.Start(ctx); err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := client.Close(); err != nil {
			logger.Warn("browser shutdown failed", "error", err)
		}
	}
	return client, closer, nil
}

// rangeFromArgs maps optional [start] [end] positional arguments onto a
// sweep range, leaving defaults in place for anything absent.
func rangeFromArgs(args []string) sweep.Range {
	var start, end string
	if len(args) > 0 {
		start = args[0]
	}
	if len(args) > 1 {
		end = args[1]
	}
	return sweep.ParseRange(start, end)
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}
