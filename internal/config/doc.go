// Package config loads, normalizes, and validates rymgap configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the OMDB_API_KEY environment
// fallback. Always obtain settings through this package so downstream code
// receives sanitized paths and clear validation errors.
package config
