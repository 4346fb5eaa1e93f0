package idl

import (
	"strings"
)

// Argument is an operation or callback argument, or a dictionary
// member. The two share optionality and default-value rules.
type Argument struct {
	named
	typ              Type
	optional         bool
	variadic         bool
	dictionaryMember bool
	defaultValue     *Value
	extAttrs         ExtendedAttributes
	complete         bool
}

// ArgumentOptions holds the optional parts of an argument.
type ArgumentOptions struct {
	Optional         bool
	Variadic         bool
	DictionaryMember bool
	Default          *Value
}

// NewArgument returns an argument. A variadic argument is always
// optional.
func NewArgument(uid *UnresolvedIdentifier, t Type, opts ArgumentOptions) *Argument {
	return &Argument{
		named:            newNamed(uid),
		typ:              t,
		optional:         opts.Optional || opts.Variadic,
		variadic:         opts.Variadic,
		dictionaryMember: opts.DictionaryMember,
		defaultValue:     opts.Default,
	}
}

func (a *Argument) Type() Type                             { return a.typ }
func (a *Argument) Optional() bool                         { return a.optional }
func (a *Argument) Variadic() bool                         { return a.variadic }
func (a *Argument) DictionaryMember() bool                 { return a.dictionaryMember }
func (a *Argument) DefaultValue() *Value                   { return a.defaultValue }
func (a *Argument) ExtendedAttributes() ExtendedAttributes { return a.extAttrs }

// AddExtendedAttributes records attributes such as [Clamp].
func (a *Argument) AddExtendedAttributes(attrs ExtendedAttributes) {
	a.extAttrs = append(a.extAttrs, attrs...)
}

// IsComplete reports whether Complete has succeeded.
func (a *Argument) IsComplete() bool { return a.complete }

// Complete completes the type, defaults an optional dictionary to null
// and coerces the default value.
func (a *Argument) Complete(scope *Scope) error {
	if !IsComplete(a.typ) {
		t, err := Complete(a.typ, scope)
		if err != nil {
			return err
		}
		a.typ = t
	}
	if IsDictionary(a.typ) && a.optional && a.defaultValue == nil {
		a.defaultValue = NewNullValue(a.loc)
	}
	if a.defaultValue != nil {
		v, err := CoerceToType(a.defaultValue, a.typ, a.loc)
		if err != nil {
			return err
		}
		a.defaultValue = v
	}
	a.complete = true
	return nil
}

func (a *Argument) String() string {
	var b strings.Builder
	if a.optional && !a.variadic && !a.dictionaryMember {
		b.WriteString("optional ")
	}
	b.WriteString(a.typ.String())
	if a.variadic {
		b.WriteString("...")
	}
	b.WriteByte(' ')
	b.WriteString(a.Name())
	if a.defaultValue != nil {
		b.WriteString(" = " + a.defaultValue.String())
	}
	return b.String()
}
