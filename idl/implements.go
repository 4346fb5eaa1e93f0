package idl

import (
	"github.com/golangsnmp/goidl/internal/types"
)

// ImplementsStatement is "A implements B;". It is not a definition and
// binds no name.
type ImplementsStatement struct {
	loc         *Location
	implementor *IdentifierPlaceholder
	implementee *IdentifierPlaceholder
	finished    bool
}

// NewImplementsStatement returns the statement implementor implements
// implementee.
func NewImplementsStatement(loc *Location, implementor, implementee *IdentifierPlaceholder) *ImplementsStatement {
	return &ImplementsStatement{loc: loc, implementor: implementor, implementee: implementee}
}

func (s *ImplementsStatement) Location() *Location { return s.loc }
func (s *ImplementsStatement) Implementor() string { return s.implementor.name }
func (s *ImplementsStatement) Implementee() string { return s.implementee.name }
func (s *ImplementsStatement) Validate() error     { return nil }

func (s *ImplementsStatement) AddExtendedAttributes(attrs ExtendedAttributes) error {
	return rejectExtendedAttributes("implements statements", attrs)
}

// Finish resolves both sides and records the implemented interface on
// the implementor. Both must be non-callback interfaces with a body.
func (s *ImplementsStatement) Finish(scope *Scope) error {
	if s.finished {
		return nil
	}
	s.finished = true
	implementor, err := s.resolveSide(scope, s.implementor, "Left")
	if err != nil {
		return err
	}
	implementee, err := s.resolveSide(scope, s.implementee, "Right")
	if err != nil {
		return err
	}
	implementor.addImplementedInterface(implementee)
	return nil
}

func (s *ImplementsStatement) resolveSide(scope *Scope, ref *IdentifierPlaceholder, side string) (*Interface, error) {
	obj, err := ref.Resolve(scope)
	if err != nil {
		return nil, err
	}
	iface, ok := obj.(*Interface)
	if !ok {
		return nil, semanticError(types.DiagImplements, locs(ref.loc),
			"%s-hand side of 'implements' is not an interface", side)
	}
	if iface.callback {
		return nil, semanticError(types.DiagImplements, locs(ref.loc),
			"%s-hand side of 'implements' is a callback interface", side)
	}
	return iface, nil
}
