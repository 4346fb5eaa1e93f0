package idl

import (
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// Enum is an enumeration of strings.
type Enum struct {
	named
	values []string
}

// NewEnum returns an enum. Values must be distinct.
func NewEnum(uid *UnresolvedIdentifier, values []string) (*Enum, error) {
	for i, v := range values {
		if slices.Contains(values[:i], v) {
			return nil, semanticError(types.DiagEnumDuplicateValue, locs(uid.loc),
				"Enum %s has multiple identical strings", uid.name)
		}
	}
	return &Enum{named: newNamed(uid), values: slices.Clone(values)}, nil
}

func (e *Enum) Values() []string                       { return e.values }
func (e *Enum) ExtendedAttributes() ExtendedAttributes { return nil }
func (e *Enum) Finish(*Scope) error                    { return nil }
func (e *Enum) Validate() error                        { return nil }

func (e *Enum) AddExtendedAttributes(attrs ExtendedAttributes) error {
	return rejectExtendedAttributes("enums", attrs)
}
