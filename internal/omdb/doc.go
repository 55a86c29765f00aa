// Package omdb provides access to the OMDb API for identifier lookups.
//
// The API key is an explicit constructor argument; there is no package-level
// default credential. OMDb reports "not found" in-band with Response "False",
// which the client surfaces as a nil movie rather than an error so callers
// can treat a gap in the identifier space as end of data.
package omdb
