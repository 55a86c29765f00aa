package catalog

import (
	"fmt"
	"strings"
)

// Verdict records whether a film was found on the community site.
type Verdict int

const (
	// VerdictUnknown means the record has not been checked yet.
	VerdictUnknown Verdict = iota
	// VerdictPresent means a sufficiently similar title/year pair was found.
	VerdictPresent
	// VerdictAbsent means no match cleared the similarity threshold.
	VerdictAbsent
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictPresent:
		return "present"
	case VerdictAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// VerdictFromBool maps a matcher decision onto a final verdict.
func VerdictFromBool(present bool) Verdict {
	if present {
		return VerdictPresent
	}
	return VerdictAbsent
}

// cell renders the verdict for the in_rym CSV column. Unknown stays empty so
// an untouched row is distinguishable from a decided one.
func (v Verdict) cell() string {
	switch v {
	case VerdictPresent:
		return "true"
	case VerdictAbsent:
		return "false"
	default:
		return ""
	}
}

// verdictFromCell parses the in_rym column. Legacy files written with
// capitalized booleans are accepted.
func verdictFromCell(value string) (Verdict, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return VerdictUnknown, nil
	case "true":
		return VerdictPresent, nil
	case "false":
		return VerdictAbsent, nil
	default:
		return VerdictUnknown, fmt.Errorf("catalog: unrecognized in_rym value %q", value)
	}
}
