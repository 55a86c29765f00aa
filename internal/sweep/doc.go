// Package sweep walks an identifier range in ascending order and fills the
// catalog with every title the movie database knows.
//
// The loop is a small state machine: it keeps Sweeping while lookups
// succeed, finishes Done when the range is exhausted, and goes Halted the
// moment a lookup comes back empty. The identifier space is dense and
// contiguous in practice, so a gap means the end of known data and the rest
// of the range is not worth querying. Identifiers already in the catalog are
// skipped without an external call, which is what makes an interrupted run
// resumable.
package sweep
