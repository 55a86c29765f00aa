// Package catalog persists the film catalog as a CSV file.
//
// The Store holds the full record set in memory in file order and rewrites
// the whole file on Flush. The catalog is the single source of truth for
// sweep progress and verification verdicts: a record present in the file is
// never fetched again, and its in_rym column moves from unknown to a final
// verdict exactly once.
package catalog
