// Package pipeline wires the catalog sweep, the presence verification pass,
// and the absence report into complete runs.
//
// Every entry point takes an exclusive lock next to the catalog file so two
// runs never interleave writes, tags its log lines with a fresh run ID, and
// flushes the catalog before returning.
package pipeline
