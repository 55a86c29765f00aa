// Package pace spaces out external calls with a fixed inter-call delay.
package pace

import (
	"context"
	"time"
)

// Policy decides how long to wait between consecutive external calls. Small
// sweeps run undelayed; anything larger is paced at one request per Delay to
// stay under the movie database's daily usage threshold.
type Policy struct {
	// Delay is the fixed pause between paced calls.
	Delay time.Duration
	// UnpacedSpan is the largest sweep span that runs without delays.
	UnpacedSpan int64
}

// SweepDelay returns the delay to apply between lookups for a sweep covering
// span identifiers.
func (p Policy) SweepDelay(span int64) time.Duration {
	if span <= p.UnpacedSpan {
		return 0
	}
	return p.Delay
}

// Sleep waits for d or until the context is canceled, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
