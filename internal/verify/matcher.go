package verify

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"rymgap/internal/rym"
)

// matchThreshold is the similarity ratio a candidate title must exceed
// (strictly) for the film to count as present.
const matchThreshold = 0.6

// Decide reports whether any candidate in the fragment matches the target
// title and year. Candidates are filtered to those whose year text contains
// the target year's digits; the first one whose title similarity exceeds the
// threshold decides the verdict. Year-bearing candidates without an adjacent
// title are ignored.
func Decide(fragment *rym.Fragment, title, year string) bool {
	year = strings.TrimSpace(year)
	if fragment == nil || year == "" {
		return false
	}
	for _, candidate := range fragment.Candidates {
		if !strings.Contains(candidate.YearText, year) {
			continue
		}
		if !candidate.HasTitle {
			continue
		}
		if similarity(candidate.Title, title) > matchThreshold {
			return true
		}
	}
	return false
}

// similarity is the sequence-matcher ratio over characters: twice the
// matched character count divided by the total length, 1.0 iff identical.
func similarity(a, b string) float64 {
	matcher := difflib.NewMatcher(splitChars(a), splitChars(b))
	return matcher.Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
