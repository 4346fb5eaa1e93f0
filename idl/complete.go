package idl

import (
	"fmt"
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// Complete resolves every name inside t against scope and returns the
// completed type. Typedefs are erased, references to declared
// definitions become wrappers, and nullable, array and union
// constraints are checked. t itself is never modified, and completing
// an already complete type returns it unchanged.
func Complete(t Type, scope *Scope) (Type, error) {
	c := completer{scope: scope}
	return c.complete(t)
}

type completer struct {
	scope  *Scope
	active []*Typedef
}

func (c *completer) complete(t Type) (Type, error) {
	if IsComplete(t) {
		return t, nil
	}
	switch t := t.(type) {
	case *UnresolvedType:
		return c.completeUnresolved(t)
	case *Typedef:
		return c.completeTypedef(t)
	case *NullableType:
		inner, err := c.complete(t.inner)
		if err != nil {
			return nil, err
		}
		if err := checkNullableInner(t.loc, inner); err != nil {
			return nil, err
		}
		return &NullableType{loc: t.loc, inner: inner}, nil
	case *SequenceType:
		inner, err := c.complete(t.inner)
		if err != nil {
			return nil, err
		}
		return &SequenceType{loc: t.loc, inner: inner}, nil
	case *ArrayType:
		inner, err := c.complete(t.inner)
		if err != nil {
			return nil, err
		}
		return NewArrayType(t.loc, inner)
	case *UnionType:
		return c.completeUnion(t)
	}
	return t, nil
}

func (c *completer) completeUnresolved(t *UnresolvedType) (Type, error) {
	obj, ok := c.scope.lookup(t.name)
	if !ok {
		return nil, NewError(KindResolution, types.DiagUnresolvedType,
			fmt.Sprintf("Unresolved type '%s'.", t.name), t.loc)
	}
	switch obj := obj.(type) {
	case *Typedef:
		return c.completeTypedef(obj)
	case *CallbackType:
		return obj, nil
	case Definition:
		return NewWrapperType(t.loc, obj), nil
	}
	return nil, NewError(KindResolution, types.DiagUnresolvedType,
		fmt.Sprintf("'%s' does not name a type", t.name), t.loc, obj.Location())
}

func (c *completer) completeTypedef(td *Typedef) (Type, error) {
	if slices.Contains(c.active, td) {
		return nil, semanticError(types.DiagTypedefCycle, locs(td.Location()),
			"Typedef %s refers to itself", td.Name())
	}
	c.active = append(c.active, td)
	defer func() { c.active = c.active[:len(c.active)-1] }()
	return c.complete(td.inner)
}

func (c *completer) completeUnion(t *UnionType) (Type, error) {
	members := make([]Type, len(t.members))
	for i, m := range t.members {
		completed, err := c.complete(m)
		if err != nil {
			return nil, err
		}
		members[i] = completed
	}
	u := &UnionType{loc: t.loc, members: members}

	flat := slices.Clone(members)
	var nullableMember Type
	for i := 0; i < len(flat); {
		switch m := flat[i].(type) {
		case *NullableType:
			if u.hasNullable {
				return nil, semanticError(types.DiagUnionNullable,
					locs(nullableMember.Location(), m.Location()),
					"Can't have more than one nullable types in a union")
			}
			u.hasNullable = true
			nullableMember = m
			flat[i] = m.inner
		case *UnionType:
			flat = slices.Replace(flat, i, i+1, m.members...)
		default:
			i++
		}
	}

	for i, a := range flat {
		for _, b := range flat[i+1:] {
			if !IsDistinguishableFrom(a, b) {
				return nil, semanticError(types.DiagUnionIndistinguishable,
					locs(t.loc, a.Location(), b.Location()),
					"Flat member types of a union should be distinguishable, %s is not distinguishable from %s",
					a, b)
			}
		}
	}

	u.flat = flat
	u.complete = true
	return u, nil
}

func checkNullableInner(loc *Location, inner Type) error {
	var msg string
	switch {
	case IsNullable(inner):
		msg = "The inner type of a nullable type must not be a nullable type"
	case IsVoid(inner), IsAny(inner):
		msg = fmt.Sprintf("The inner type of a nullable type must not be %s", inner)
	case unionHasNullable(inner):
		msg = "The inner type of a nullable type must not be a union type that itself has a nullable type as a member type"
	default:
		return nil
	}
	return NewError(KindSemantic, types.DiagInvalidNullable, msg, loc, inner.Location())
}
