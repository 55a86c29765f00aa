// Package verify decides, per catalog record, whether the film exists on
// the community site.
//
// Matching is fuzzy on purpose: the two catalogs disagree on punctuation,
// subtitles, and regional title variants often enough that exact equality
// would reject films that are plainly there. A candidate counts as a match
// when its year text carries the record's year and its title clears a
// similarity threshold.
package verify
