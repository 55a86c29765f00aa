package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rymgap/internal/catalog"
	"rymgap/internal/logging"
	"rymgap/internal/pace"
	"rymgap/internal/rym"
)

// Searcher runs one film search and returns the parsed results region.
type Searcher interface {
	SearchFilm(ctx context.Context, title string) (*rym.Fragment, error)
}

// Verifier annotates unchecked movie records with a presence verdict.
type Verifier struct {
	store    *catalog.Store
	searcher Searcher
	policy   pace.Policy
	logger   *slog.Logger
}

// New constructs a verifier.
func New(store *catalog.Store, searcher Searcher, policy pace.Policy, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Verifier{store: store, searcher: searcher, policy: policy, logger: logger}
}

// Run checks every unchecked movie record in store order and flushes the
// catalog before returning. The full delay applies between searches
// regardless of how many records are pending; the search site has no cheap
// tier. On a search failure the verdicts decided so far are flushed before
// the error propagates, so a rerun resumes where this one stopped.
func (v *Verifier) Run(ctx context.Context) error {
	pending := v.store.MissingVerdict(catalog.TypeMovie)
	v.logger.Info("verification starting", slog.Int("pending", len(pending)))

	for i, record := range pending {
		if i > 0 {
			if err := pace.Sleep(ctx, v.policy.Delay); err != nil {
				return v.flushAfter(err)
			}
		} else if err := ctx.Err(); err != nil {
			return v.flushAfter(err)
		}

		fragment, err := v.searcher.SearchFilm(ctx, record.Title)
		if err != nil {
			return v.flushAfter(fmt.Errorf("search %s: %w", record.ImdbID, err))
		}

		verdict := catalog.VerdictFromBool(Decide(fragment, record.Title, record.Year))
		if err := v.store.SetVerdict(record.ImdbID, verdict); err != nil {
			return v.flushAfter(err)
		}
		v.logger.Info("verdict recorded",
			slog.String("imdb_id", record.ImdbID),
			slog.String("title", record.Title),
			slog.String("verdict", verdict.String()),
		)
	}

	if err := v.store.Flush(); err != nil {
		return fmt.Errorf("flush catalog: %w", err)
	}
	return nil
}

// flushAfter persists whatever was decided before err interrupted the run.
func (v *Verifier) flushAfter(err error) error {
	if flushErr := v.store.Flush(); flushErr != nil {
		return errors.Join(err, fmt.Errorf("flush catalog: %w", flushErr))
	}
	return err
}
