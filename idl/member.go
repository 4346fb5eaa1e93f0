package idl

import (
	"github.com/golangsnmp/goidl/internal/types"
)

// Const is a constant interface member.
type Const struct {
	memberBase
	typ   Type
	value *Value
}

// NewConst returns a constant of type t. The value is coerced to t when
// the interface is finished.
func NewConst(uid *UnresolvedIdentifier, t Type, value *Value) (*Const, error) {
	if IsDictionary(t) {
		return nil, semanticError(types.DiagConstType, locs(uid.loc),
			"A constant cannot be of a dictionary type")
	}
	if uid.name == "prototype" {
		return nil, semanticError(types.DiagReservedIdentifier, locs(uid.loc),
			"The identifier of a constant must not be 'prototype'")
	}
	return &Const{
		memberBase: memberBase{named: newNamed(uid), tag: MemberConst},
		typ:        t,
		value:      value,
	}, nil
}

func (c *Const) Type() Type    { return c.typ }
func (c *Const) Value() *Value { return c.value }

func (c *Const) Finish(scope *Scope) error {
	if !IsComplete(c.typ) {
		t, err := Complete(c.typ, scope)
		if err != nil {
			return err
		}
		if !IsPrimitive(t) && !IsString(t) {
			return semanticError(types.DiagConstType, locs(c.typ.Location(), t.Location()),
				"Incorrect type for constant")
		}
		c.typ = t
	}
	v, err := CoerceToType(c.value, c.typ, c.loc)
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

func (c *Const) Validate() error { return nil }

// Attribute is an attribute interface member.
type Attribute struct {
	memberBase
	typ         Type
	readonly    bool
	inherit     bool
	static      bool
	stringifier bool
}

// AttributeOptions holds the attribute qualifiers.
type AttributeOptions struct {
	Readonly    bool
	Inherit     bool
	Static      bool
	Stringifier bool
}

// NewAttribute returns an attribute of type t.
func NewAttribute(uid *UnresolvedIdentifier, t Type, opts AttributeOptions) (*Attribute, error) {
	if opts.Readonly && opts.Inherit {
		return nil, semanticError(types.DiagAttributeType, locs(uid.loc),
			"An attribute cannot be both 'readonly' and 'inherit'")
	}
	return &Attribute{
		memberBase:  memberBase{named: newNamed(uid), tag: MemberAttribute},
		typ:         t,
		readonly:    opts.Readonly,
		inherit:     opts.Inherit,
		static:      opts.Static,
		stringifier: opts.Stringifier,
	}, nil
}

func (a *Attribute) Type() Type          { return a.typ }
func (a *Attribute) IsReadonly() bool    { return a.readonly }
func (a *Attribute) IsInherit() bool     { return a.inherit }
func (a *Attribute) IsStatic() bool      { return a.static }
func (a *Attribute) IsStringifier() bool { return a.stringifier }

// AddExtendedAttributes rejects [TreatNonCallableAsNull] and
// [SetterThrows] on a readonly attribute.
func (a *Attribute) AddExtendedAttributes(attrs ExtendedAttributes) error {
	for _, attr := range attrs {
		switch {
		case attr.name == "TreatNonCallableAsNull":
			return semanticError(types.DiagExtendedAttribute, locs(attr.loc, a.loc),
				"TreatNonCallableAsNull cannot be specified on attributes")
		case attr.name == "SetterThrows" && a.readonly:
			return semanticError(types.DiagExtendedAttribute, locs(a.loc),
				"Readonly attributes must not be flagged as [SetterThrows]")
		}
	}
	return a.memberBase.AddExtendedAttributes(attrs)
}

func (a *Attribute) Finish(scope *Scope) error {
	if !IsComplete(a.typ) {
		t, err := Complete(a.typ, scope)
		if err != nil {
			return err
		}
		a.typ = t
	}
	switch {
	case IsDictionary(a.typ):
		return semanticError(types.DiagAttributeType, locs(a.loc),
			"An attribute cannot be of a dictionary type")
	case IsSequence(a.typ):
		return semanticError(types.DiagAttributeType, locs(a.loc),
			"An attribute cannot be of a sequence type")
	}
	if u, ok := Unroll(a.typ).(*UnionType); ok && IsUnion(a.typ) {
		for _, f := range u.flat {
			if IsDictionary(f) {
				return semanticError(types.DiagAttributeType, locs(a.loc, f.Location()),
					"An attribute cannot be of a union type if one of its member types (or one of its member types's member types, and so on) is a dictionary type")
			}
			if IsSequence(f) {
				return semanticError(types.DiagAttributeType, locs(a.loc, f.Location()),
					"An attribute cannot be of a union type if one of its member types (or one of its member types's member types, and so on) is a sequence type")
			}
		}
	}
	if a.stringifier && !IsString(a.typ) {
		return semanticError(types.DiagAttributeType, locs(a.loc),
			"A stringifier attribute must have a DOMString type")
	}
	return nil
}

func (a *Attribute) Validate() error { return nil }
