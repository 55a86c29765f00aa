// Package imdbid converts sequence numbers into IMDb identifier strings.
//
// IMDb keys are the letters "tt" followed by the decimal sequence number
// left-padded with zeros to at least seven digits. Numbers past the padded
// width keep all their digits, so the identifier simply grows.
package imdbid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	prefix    = "tt"
	minDigits = 7
)

// FromSequence encodes a non-negative sequence number as an IMDb identifier.
func FromSequence(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("imdb id: sequence number must be non-negative, got %d", n)
	}
	return fmt.Sprintf("%s%0*d", prefix, minDigits, n), nil
}

// FromString coerces a decimal string to an integer and encodes it. Inputs
// that do not parse as a non-negative integer are a caller error and fail
// hard rather than being defaulted.
func FromString(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return "", fmt.Errorf("imdb id: coerce %q: %w", value, err)
	}
	return FromSequence(n)
}
