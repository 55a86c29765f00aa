package sweep

import (
	"math"
	"strconv"
	"strings"
)

// EndSentinel stands in for "no upper bound". A malformed end bound degrades
// to sweeping until the database runs out of data rather than failing.
const EndSentinel = int64(math.MaxInt32)

// Range is an inclusive pair of sequence numbers driving one sweep.
type Range struct {
	Start int64
	End   int64
}

// ParseRange interprets the operator-supplied bounds. A bound that is not a
// non-negative integer is replaced by its permissive default: 0 for start,
// EndSentinel for end. Bounds are never rejected.
func ParseRange(start, end string) Range {
	r := Range{Start: 0, End: EndSentinel}
	if n, err := strconv.ParseInt(strings.TrimSpace(start), 10, 64); err == nil && n >= 0 {
		r.Start = n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(end), 10, 64); err == nil && n >= 0 {
		r.End = n
	}
	return r
}

// Span returns the number of identifiers the range covers.
func (r Range) Span() int64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}
