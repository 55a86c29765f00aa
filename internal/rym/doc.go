// Package rym drives the RateYourMusic search UI and parses its results.
//
// The site has no public API, so searches go through a headless browser. Of
// each results page only the search-results region is kept, reduced to an
// ordered list of candidates pairing a year-bearing text node with the
// nearest preceding title link. Deciding whether a candidate actually
// matches a catalog record is the verifier's job, not this package's.
package rym
