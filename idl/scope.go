package idl

import (
	"fmt"
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// Object is anything that can be bound to a name in a Scope.
type Object interface {
	Location() *Location
	// Name returns the bound name, or the declared name before binding.
	Name() string
	// Identifier returns the binding, nil until the object is declared.
	Identifier() *Identifier

	unresolved() *UnresolvedIdentifier
	bind(id *Identifier)
}

// named is embedded by every Object implementation.
type named struct {
	loc *Location
	uid *UnresolvedIdentifier
	id  *Identifier
}

func (n *named) Location() *Location               { return n.loc }
func (n *named) Identifier() *Identifier           { return n.id }
func (n *named) unresolved() *UnresolvedIdentifier { return n.uid }
func (n *named) bind(id *Identifier)               { n.id = id }

func (n *named) Name() string {
	if n.id != nil {
		return n.id.name
	}
	if n.uid != nil {
		return n.uid.name
	}
	return ""
}

// Outcome is the result of declaring a name.
type Outcome int

const (
	// Inserted means the name was free and is now bound to the object.
	Inserted Outcome = iota
	// MergedInto means the name was already bound and the incoming
	// object was absorbed by the existing one.
	MergedInto
	// Rejected means the declaration conflicts with an existing one.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case MergedInto:
		return "merged"
	default:
		return "rejected"
	}
}

// Declaration describes what Declare did.
type Declaration struct {
	Outcome    Outcome
	Identifier *Identifier
	// Bound is the object the name refers to after the call.
	Bound Object
}

// mergeFunc decides what happens when name is already bound to
// original. It returns the object that stays bound.
type mergeFunc func(s *Scope, name string, original, incoming Object) (Object, error)

// Scope maps names to objects. Lookup never falls through to a parent;
// parents only contribute to qualified names.
type Scope struct {
	owner  Object
	parent *Scope
	names  map[string]Object
	order  []string
	merge  mergeFunc
}

func newScope(owner Object, parent *Scope, merge mergeFunc) *Scope {
	if merge == nil {
		merge = mergeDefault
	}
	return &Scope{
		owner:  owner,
		parent: parent,
		names:  make(map[string]Object),
		merge:  merge,
	}
}

// QualifiedName returns "::" for the global scope and the owner's
// qualified name followed by "::" otherwise.
func (s *Scope) QualifiedName() string {
	if s.owner == nil {
		return "::"
	}
	if id := s.owner.Identifier(); id != nil {
		return id.QualifiedName() + "::"
	}
	prefix := "::"
	if s.parent != nil {
		prefix = s.parent.QualifiedName()
	}
	return prefix + s.owner.Name() + "::"
}

func (s *Scope) String() string { return s.QualifiedName() }

// Declare binds uid to obj. On a collision the scope's merge policy
// decides whether the incoming object is absorbed or rejected.
func (s *Scope) Declare(uid *UnresolvedIdentifier, obj Object) (Declaration, error) {
	original, exists := s.names[uid.name]
	if !exists {
		id := &Identifier{loc: uid.loc, scope: s, name: uid.name}
		s.names[uid.name] = obj
		s.order = append(s.order, uid.name)
		obj.bind(id)
		return Declaration{Outcome: Inserted, Identifier: id, Bound: obj}, nil
	}
	bound, err := s.merge(s, uid.name, original, obj)
	if err != nil {
		return Declaration{Outcome: Rejected, Identifier: original.Identifier(), Bound: original}, err
	}
	s.names[uid.name] = bound
	if bound != obj {
		obj.bind(&Identifier{loc: uid.loc, scope: s, name: uid.name})
	}
	return Declaration{Outcome: MergedInto, Identifier: bound.Identifier(), Bound: bound}, nil
}

// Add declares obj under its own name.
func (s *Scope) Add(obj Object) (Declaration, error) {
	return s.Declare(obj.unresolved(), obj)
}

// Lookup returns the object bound to name.
func (s *Scope) Lookup(name string) (Object, error) {
	obj, ok := s.names[name]
	if !ok {
		return nil, NewError(KindResolution, types.DiagUnresolvedType,
			fmt.Sprintf("Unresolved identifier '%s' in scope '%s'", name, s.QualifiedName()))
	}
	return obj, nil
}

func (s *Scope) lookup(name string) (Object, bool) {
	obj, ok := s.names[name]
	return obj, ok
}

// Names returns the bound names in declaration order.
func (s *Scope) Names() []string {
	return slices.Clone(s.order)
}

// Len returns the number of bound names.
func (s *Scope) Len() int { return len(s.names) }

// mergeDefault is the policy for the global scope and for every scope
// other than an interface's. Repeated forward declarations of one name
// collapse into the first; a forward declaration never shares a name
// with anything else.
func mergeDefault(s *Scope, name string, original, incoming Object) (Object, error) {
	_, origExternal := original.(*ExternalInterface)
	_, newExternal := incoming.(*ExternalInterface)
	if origExternal && newExternal {
		return original, nil
	}
	if origExternal || newExternal {
		return nil, semanticError(types.DiagNameCollision,
			locs(incoming.Location(), original.Location()),
			"Name collision between interface declarations for identifier '%s' at '%s' and '%s'",
			name, incoming.Location().Position(), original.Location().Position())
	}
	return nil, semanticError(types.DiagDuplicateIdentifier,
		locs(original.Location(), incoming.Location()),
		"Multiple unresolvable definitions of identifier '%s' in scope '%s'",
		name, s.QualifiedName())
}

// mergeMembers is the policy for interface scopes: methods sharing a
// name become overloads of the first declaration.
func mergeMembers(s *Scope, name string, original, incoming Object) (Object, error) {
	first, ok1 := original.(*Method)
	next, ok2 := incoming.(*Method)
	if !ok1 || !ok2 {
		return mergeDefault(s, name, original, incoming)
	}
	if err := first.AddOverload(next); err != nil {
		return nil, err
	}
	return first, nil
}
