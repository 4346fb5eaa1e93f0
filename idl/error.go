package idl

import (
	"fmt"
	"strings"
)

// Kind classifies where an error was detected.
type Kind int

const (
	KindLexical     Kind = iota // unrecognized input
	KindSyntax                  // grammar violation
	KindUnsupported             // recognized but unimplemented construct
	KindSemantic                // validation failure
	KindResolution              // undeclared name referenced
)

var kindNames = [...]string{
	KindLexical:     "lexical",
	KindSyntax:      "syntax",
	KindUnsupported: "unsupported",
	KindSemantic:    "semantic",
	KindResolution:  "resolution",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Severity separates fatal errors from informational warnings.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Error is a diagnostic tied to zero or more source locations. The
// first location is usually the offending construct, later ones the
// declarations it conflicts with.
type Error struct {
	Kind      Kind
	Severity  Severity
	Code      string
	Message   string
	Locations []*Location
}

// Error renders "<severity>: <message>, <loc1>\n<loc2>...".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Severity.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Locations) > 0 {
		b.WriteString(", ")
		for i, loc := range e.Locations {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(loc.String())
		}
	}
	return b.String()
}

// IsWarning reports whether the error is informational.
func (e *Error) IsWarning() bool { return e.Severity == SeverityWarning }

// NewError returns an error-severity diagnostic. Nil locations are
// dropped.
func NewError(kind Kind, code, message string, locs ...*Location) *Error {
	return &Error{
		Kind:      kind,
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		Locations: compactLocations(locs),
	}
}

// NewWarning returns a warning-severity diagnostic.
func NewWarning(code, message string, locs ...*Location) *Error {
	e := NewError(KindSemantic, code, message, locs...)
	e.Severity = SeverityWarning
	return e
}

func semanticError(code string, locs []*Location, format string, args ...any) *Error {
	return NewError(KindSemantic, code, fmt.Sprintf(format, args...), locs...)
}

func compactLocations(locs []*Location) []*Location {
	var out []*Location
	for _, loc := range locs {
		if loc != nil {
			out = append(out, loc)
		}
	}
	return out
}

func locs(l ...*Location) []*Location { return l }
