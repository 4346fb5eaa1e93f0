package idl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golangsnmp/goidl/internal/types"
)

// forbiddenNames may not be used as identifiers outside of parser
// synthesized constructs.
var forbiddenNames = []string{"prototype", "constructor", "toString"}

// IdentifierOptions relaxes the reserved-word policy.
type IdentifierOptions struct {
	// AllowDoubleUnderscore admits "__"-prefixed names and keeps a
	// leading underscore as part of the name.
	AllowDoubleUnderscore bool
	// AllowForbidden admits prototype, constructor and toString.
	AllowForbidden bool
}

// UnresolvedIdentifier is a name that has passed the reserved-word
// checks but is not yet bound in any scope.
type UnresolvedIdentifier struct {
	loc  *Location
	name string
}

// NewUnresolvedIdentifier applies the reserved-word policy to name. A
// single leading underscore escapes a keyword and is stripped.
func NewUnresolvedIdentifier(loc *Location, name string, opts IdentifierOptions) (*UnresolvedIdentifier, error) {
	if name == "" {
		return nil, NewError(KindSyntax, types.DiagSyntaxError, "empty identifier", loc)
	}
	if strings.HasPrefix(name, "__") && !opts.AllowDoubleUnderscore {
		return nil, NewError(KindSyntax, types.DiagReservedIdentifier,
			"Identifiers beginning with __ are reserved", loc)
	}
	if name[0] == '_' && !opts.AllowDoubleUnderscore {
		name = name[1:]
	}
	if slices.Contains(forbiddenNames, name) && !opts.AllowForbidden {
		return nil, NewError(KindSyntax, types.DiagReservedIdentifier,
			fmt.Sprintf("Cannot use reserved identifier '%s'", name), loc)
	}
	return &UnresolvedIdentifier{loc: loc, name: name}, nil
}

// Name returns the identifier text with any escape underscore removed.
func (u *UnresolvedIdentifier) Name() string { return u.name }

// Location returns where the identifier was written.
func (u *UnresolvedIdentifier) Location() *Location { return u.loc }

func (u *UnresolvedIdentifier) String() string { return u.name }

// Identifier is a name bound in a scope.
type Identifier struct {
	loc   *Location
	scope *Scope
	name  string
}

// Name returns the bare name.
func (i *Identifier) Name() string { return i.name }

// Scope returns the scope the name is bound in.
func (i *Identifier) Scope() *Scope { return i.scope }

// Location returns where the name was declared.
func (i *Identifier) Location() *Location { return i.loc }

// QualifiedName renders the name prefixed with its enclosing scopes,
// e.g. "::Node::appendChild".
func (i *Identifier) QualifiedName() string {
	if i.scope == nil {
		return "::" + i.name
	}
	return i.scope.QualifiedName() + i.name
}

func (i *Identifier) String() string { return i.QualifiedName() }

// IdentifierPlaceholder is a reference to a name that is looked up in
// the global scope when definitions are finished, such as an interface
// parent or either side of an implements statement.
type IdentifierPlaceholder struct {
	loc  *Location
	name string
}

// NewIdentifierPlaceholder returns a reference to name.
func NewIdentifierPlaceholder(uid *UnresolvedIdentifier) *IdentifierPlaceholder {
	return &IdentifierPlaceholder{loc: uid.loc, name: uid.name}
}

// Name returns the referenced name.
func (p *IdentifierPlaceholder) Name() string { return p.name }

// Location returns where the reference was written.
func (p *IdentifierPlaceholder) Location() *Location { return p.loc }

// Resolve looks the name up in scope.
func (p *IdentifierPlaceholder) Resolve(scope *Scope) (Object, error) {
	obj, ok := scope.lookup(p.name)
	if !ok {
		return nil, NewError(KindResolution, types.DiagUnresolvedType,
			fmt.Sprintf("Unresolved type '%s'.", p.name), p.loc)
	}
	return obj, nil
}
