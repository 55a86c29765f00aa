package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"rymgap/internal/catalog"
	"rymgap/internal/imdbid"
	"rymgap/internal/logging"
	"rymgap/internal/pace"
)

// State describes where the sweep ended up.
type State int

const (
	// StateSweeping means the loop is still (or was, when an error cut it
	// short) walking the range.
	StateSweeping State = iota
	// StateDone means the whole range was visited.
	StateDone
	// StateHalted means a lookup came back empty and the rest of the range
	// was abandoned.
	StateHalted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateHalted:
		return "halted"
	default:
		return "sweeping"
	}
}

// Fetcher looks up one identifier. A nil record with a nil error means the
// database has no entry for it.
type Fetcher interface {
	Fetch(ctx context.Context, imdbID string) (*catalog.Record, error)
}

// Result summarizes one sweep.
type Result struct {
	State    State
	Fetched  int
	Skipped  int
	HaltedAt string
}

// Loop fills a catalog store from a fetcher, pacing external calls.
type Loop struct {
	store   *catalog.Store
	fetcher Fetcher
	policy  pace.Policy
	logger  *slog.Logger
}

// New constructs a sweep loop.
func New(store *catalog.Store, fetcher Fetcher, policy pace.Policy, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loop{store: store, fetcher: fetcher, policy: policy, logger: logger}
}

// Run walks the range in ascending order. Identifiers already in the store
// are skipped with no external call and no delay. An empty lookup halts the
// remaining range and returns without error; the store keeps everything
// fetched so far. Persisting the store is left to the caller.
func (l *Loop) Run(ctx context.Context, r Range) (Result, error) {
	delay := l.policy.SweepDelay(r.Span())
	result := Result{State: StateSweeping}

	l.logger.Info("sweep starting",
		slog.Int64("start", r.Start),
		slog.Int64("end", r.End),
		slog.Duration("delay", delay),
	)

	for n := r.Start; n <= r.End; n++ {
		id, err := imdbid.FromSequence(n)
		if err != nil {
			return result, fmt.Errorf("encode sequence %d: %w", n, err)
		}
		if l.store.Contains(id) {
			result.Skipped++
			continue
		}

		if result.Fetched > 0 && delay > 0 {
			if err := pace.Sleep(ctx, delay); err != nil {
				return result, err
			}
		} else if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := l.fetcher.Fetch(ctx, id)
		if err != nil {
			return result, fmt.Errorf("fetch %s: %w", id, err)
		}
		if record == nil {
			result.State = StateHalted
			result.HaltedAt = id
			l.logger.Info("sweep halted on missing identifier", slog.String("imdb_id", id))
			return result, nil
		}

		l.store.Append(record)
		result.Fetched++
		l.logger.Debug("fetched title",
			slog.String("imdb_id", id),
			slog.String("title", record.Title),
		)
	}

	result.State = StateDone
	l.logger.Info("sweep finished",
		slog.Int("fetched", result.Fetched),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
