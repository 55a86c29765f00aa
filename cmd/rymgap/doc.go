// Package main hosts the rymgap CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the full pipeline run plus its three
// stages as standalone commands, and configuration scaffolding. It
// centralizes configuration resolution and structured logging setup so
// subcommands stay thin; the actual work lives in the internal packages.
package main
