package types

import (
	"slices"
	"strings"
)

// WarningFilter decides which warnings reach the caller.
type WarningFilter struct {
	// Ignore lists warning codes to suppress entirely.
	// Supports glob patterns (e.g., "partial-*").
	Ignore []string
}

// ShouldReport returns true if a warning with the given code should be
// reported under this filter.
func (f WarningFilter) ShouldReport(code string) bool {
	return !slices.ContainsFunc(f.Ignore, func(pattern string) bool {
		return MatchGlob(pattern, code)
	})
}

// MatchGlob performs simple glob matching with * wildcard.
func MatchGlob(pattern, s string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(s, suffix)
	}
	return pattern == s
}

// IsKnownCode reports whether code names a diagnostic emitted by goidl.
func IsKnownCode(code string) bool {
	return slices.ContainsFunc(AllDiagnosticCodes(), func(info DiagCodeInfo) bool {
		return info.Code == code
	})
}
