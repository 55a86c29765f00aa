package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"rymgap/internal/catalog"
	"rymgap/internal/config"
	"rymgap/internal/logging"
	"rymgap/internal/pace"
	"rymgap/internal/report"
	"rymgap/internal/sweep"
	"rymgap/internal/verify"
)

// Options carries the pipeline dependencies.
type Options struct {
	Config   *config.Config
	Fetcher  sweep.Fetcher
	Searcher verify.Searcher
	Logger   *slog.Logger
}

// Summary reports what a full run accomplished.
type Summary struct {
	RunID      string
	Sweep      sweep.Result
	Annotated  int
	Missing    int
	CatalogLen int
	ReportPath string
}

// Pipeline runs the collection stages against one catalog file.
type Pipeline struct {
	cfg      *config.Config
	fetcher  sweep.Fetcher
	searcher verify.Searcher
	logger   *slog.Logger
}

// New validates the dependencies and builds a pipeline. The fetcher may be
// nil when only Verify or Report will run, and likewise the searcher when
// only Sweep or Report will run.
func New(opts Options) (*Pipeline, error) {
	if opts.Config == nil {
		return nil, errors.New("pipeline requires config")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:      opts.Config,
		fetcher:  opts.Fetcher,
		searcher: opts.Searcher,
		logger:   logger,
	}, nil
}

// Run executes sweep, verification, and the report in order.
func (p *Pipeline) Run(ctx context.Context, r sweep.Range) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString(), ReportPath: p.cfg.Catalog.ReportPath}
	logger := p.logger.With(slog.String("run_id", summary.RunID))

	err := p.withLockedStore(logger, func(store *catalog.Store) error {
		result, err := p.runSweep(ctx, store, r, logger)
		summary.Sweep = result
		if err != nil {
			return err
		}

		annotated, err := p.runVerify(ctx, store, logger)
		summary.Annotated = annotated
		if err != nil {
			return err
		}

		missing, err := p.writeReport(store, logger)
		summary.Missing = missing
		summary.CatalogLen = store.Len()
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Sweep runs only the catalog-building stage.
func (p *Pipeline) Sweep(ctx context.Context, r sweep.Range) (sweep.Result, error) {
	var result sweep.Result
	logger := p.logger.With(slog.String("run_id", uuid.NewString()))

	err := p.withLockedStore(logger, func(store *catalog.Store) error {
		var err error
		result, err = p.runSweep(ctx, store, r, logger)
		return err
	})
	return result, err
}

// Verify runs only the presence-verification stage. It returns how many
// records received a verdict.
func (p *Pipeline) Verify(ctx context.Context) (int, error) {
	var annotated int
	logger := p.logger.With(slog.String("run_id", uuid.NewString()))

	err := p.withLockedStore(logger, func(store *catalog.Store) error {
		var err error
		annotated, err = p.runVerify(ctx, store, logger)
		return err
	})
	return annotated, err
}

// Report regenerates the absence report from the current catalog and
// returns its entries.
func (p *Pipeline) Report() ([]report.Entry, error) {
	var entries []report.Entry
	logger := p.logger.With(slog.String("run_id", uuid.NewString()))

	err := p.withLockedStore(logger, func(store *catalog.Store) error {
		entries = report.Generate(store)
		if err := report.WriteCSV(p.cfg.Catalog.ReportPath, entries); err != nil {
			return err
		}
		logger.Info("report written",
			slog.String("path", p.cfg.Catalog.ReportPath),
			slog.Int("missing", len(entries)),
		)
		return nil
	})
	return entries, err
}

// withLockedStore takes the catalog lock, loads the store, and runs fn.
// The sweep loop leaves persistence to its caller, so fn must flush (or
// call a stage that does) before relying on durability.
func (p *Pipeline) withLockedStore(logger *slog.Logger, fn func(*catalog.Store) error) error {
	lockPath := p.cfg.Catalog.Path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another rymgap run holds %s", lockPath)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warn("failed to release catalog lock", logging.Error(unlockErr))
		}
	}()

	store, err := catalog.LoadOrCreate(p.cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded",
		slog.String("path", store.Path()),
		slog.Int("records", store.Len()),
	)
	return fn(store)
}

// runSweep fills the store and flushes it even when the loop errors, so a
// canceled run still keeps what it fetched.
func (p *Pipeline) runSweep(ctx context.Context, store *catalog.Store, r sweep.Range, logger *slog.Logger) (sweep.Result, error) {
	if p.fetcher == nil {
		return sweep.Result{}, errors.New("pipeline has no fetcher configured")
	}
	loop := sweep.New(store, p.fetcher, p.policy(), logger.With(slog.String("component", "sweep")))
	result, err := loop.Run(ctx, r)
	if flushErr := store.Flush(); flushErr != nil {
		err = errors.Join(err, fmt.Errorf("flush catalog: %w", flushErr))
	}
	return result, err
}

func (p *Pipeline) runVerify(ctx context.Context, store *catalog.Store, logger *slog.Logger) (int, error) {
	if p.searcher == nil {
		return 0, errors.New("pipeline has no searcher configured")
	}
	pending := len(store.MissingVerdict(catalog.TypeMovie))
	verifier := verify.New(store, p.searcher, p.policy(), logger.With(slog.String("component", "verify")))
	err := verifier.Run(ctx)
	annotated := pending - len(store.MissingVerdict(catalog.TypeMovie))
	return annotated, err
}

func (p *Pipeline) writeReport(store *catalog.Store, logger *slog.Logger) (int, error) {
	entries := report.Generate(store)
	if err := report.WriteCSV(p.cfg.Catalog.ReportPath, entries); err != nil {
		return len(entries), err
	}
	logger.Info("report written",
		slog.String("path", p.cfg.Catalog.ReportPath),
		slog.Int("missing", len(entries)),
	)
	return len(entries), nil
}

func (p *Pipeline) policy() pace.Policy {
	return pace.Policy{
		Delay:       time.Duration(p.cfg.Pacing.RequestDelay) * time.Second,
		UnpacedSpan: p.cfg.Pacing.UnpacedSpan,
	}
}
