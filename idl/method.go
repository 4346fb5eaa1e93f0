package idl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golangsnmp/goidl/internal/types"
)

// MethodSpecial is an operation qualifier.
type MethodSpecial int

const (
	SpecialStatic MethodSpecial = iota
	SpecialStringifier
	SpecialGetter
	SpecialSetter
	SpecialCreator
	SpecialDeleter
	SpecialLegacyCaller
)

var methodSpecialNames = [...]string{
	"static", "stringifier", "getter", "setter", "creator", "deleter", "legacycaller",
}

func (s MethodSpecial) String() string {
	if s >= 0 && int(s) < len(methodSpecialNames) {
		return methodSpecialNames[s]
	}
	return fmt.Sprintf("MethodSpecial(%d)", int(s))
}

// NamedOrIndexed says whether a getter, setter, creator or deleter takes
// a property name or an index.
type NamedOrIndexed int

const (
	Neither NamedOrIndexed = iota
	Named
	Indexed
)

func (n NamedOrIndexed) String() string {
	switch n {
	case Named:
		return "named"
	case Indexed:
		return "indexed"
	default:
		return ""
	}
}

// MethodOverload is one signature of a method.
type MethodOverload struct {
	loc        *Location
	returnType Type
	arguments  []*Argument
	scope      *Scope
}

func (o *MethodOverload) Location() *Location    { return o.loc }
func (o *MethodOverload) ReturnType() Type       { return o.returnType }
func (o *MethodOverload) Arguments() []*Argument { return o.arguments }

// argumentType returns the type used for position idx when matching
// calls, repeating a trailing variadic argument.
func (o *MethodOverload) argumentType(idx int) Type {
	if idx < len(o.arguments) {
		return o.arguments[idx].typ
	}
	return o.arguments[len(o.arguments)-1].typ
}

func (o *MethodOverload) String() string {
	args := make([]string, len(o.arguments))
	for i, a := range o.arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s (%s)", o.returnType, strings.Join(args, ", "))
}

// MethodOptions holds the qualifiers of a method.
type MethodOptions struct {
	Static       bool
	Getter       bool
	Setter       bool
	Creator      bool
	Deleter      bool
	LegacyCaller bool
	Stringifier  bool
	Special      NamedOrIndexed
}

// Method is an operation, possibly overloaded.
type Method struct {
	memberBase
	opts             MethodOptions
	overloads        []*MethodOverload
	hasOverloads     bool
	maxArgCount      int
	allowedArgCounts []int
	finished         bool
}

// NewMethod returns a method with a single signature. The argument list
// must have its variadic argument, if any, last, and no required
// argument after an optional one. Argument names must be unique.
func NewMethod(loc *Location, uid *UnresolvedIdentifier, returnType Type, args []*Argument, opts MethodOptions) (*Method, error) {
	if opts.Static && uid.name == "prototype" {
		return nil, semanticError(types.DiagReservedIdentifier, locs(loc),
			"The identifier of a static operation must not be 'prototype'")
	}
	if err := checkArgumentList(args); err != nil {
		return nil, err
	}
	m := &Method{
		memberBase: memberBase{named: named{loc: loc, uid: uid}, tag: MemberMethod},
		opts:       opts,
	}
	o := &MethodOverload{
		loc:        loc,
		returnType: returnType,
		arguments:  slices.Clone(args),
		scope:      newScope(m, nil, nil),
	}
	for _, arg := range o.arguments {
		if _, err := o.scope.Add(arg); err != nil {
			return nil, err
		}
	}
	m.overloads = []*MethodOverload{o}
	return m, nil
}

func checkArgumentList(args []*Argument) error {
	sawOptional := false
	for i, arg := range args {
		if arg.variadic && i != len(args)-1 {
			return semanticError(types.DiagArgumentOrder, locs(arg.loc),
				"Only the last argument can be variadic")
		}
		if arg.optional {
			sawOptional = true
		} else if sawOptional {
			return semanticError(types.DiagArgumentOrder, locs(arg.loc),
				"Cannot have a non-optional argument following an optional argument")
		}
	}
	return nil
}

// NewOperation builds a method from parsed qualifiers, checking the
// rules for special operations. uid may be nil for special operations,
// which then get a synthesized name such as "__namedgetter".
func NewOperation(loc *Location, qualifiers []MethodSpecial, qualLoc *Location, returnType Type, uid *UnresolvedIdentifier, args []*Argument) (*Method, error) {
	seen := make(map[MethodSpecial]bool, len(qualifiers))
	for _, q := range qualifiers {
		if seen[q] {
			return nil, semanticError(types.DiagDuplicateQualifier, locs(qualLoc),
				"Duplicate qualifiers are not allowed")
		}
		seen[q] = true
	}
	opts := MethodOptions{
		Static:       seen[SpecialStatic],
		Stringifier:  seen[SpecialStringifier],
		Getter:       seen[SpecialGetter],
		Setter:       seen[SpecialSetter],
		Creator:      seen[SpecialCreator],
		Deleter:      seen[SpecialDeleter],
		LegacyCaller: seen[SpecialLegacyCaller],
	}

	if (opts.Getter || opts.Deleter) && (opts.Setter || opts.Creator) {
		return nil, semanticError(types.DiagSpecialOperation, locs(qualLoc),
			"getter and deleter are incompatible with setter and creator")
	}

	if opts.Getter || opts.Deleter {
		what := "deleter"
		if opts.Getter {
			what = "getter"
		}
		if len(args) != 1 {
			return nil, semanticError(types.DiagSpecialOperation, locs(loc),
				"%s has wrong number of arguments", what)
		}
		special, err := specialKey(what, args[0])
		if err != nil {
			return nil, err
		}
		opts.Special = special
		if err := checkPlainArgument(what, args[0]); err != nil {
			return nil, err
		}
	}
	if opts.Getter && IsVoid(returnType) {
		return nil, semanticError(types.DiagSpecialOperation, locs(loc),
			"getter cannot have void return type")
	}
	if opts.Setter || opts.Creator {
		what := "creator"
		if opts.Setter {
			what = "setter"
		}
		if len(args) != 2 {
			return nil, semanticError(types.DiagSpecialOperation, locs(loc),
				"%s has wrong number of arguments", what)
		}
		special, err := specialKey(what, args[0])
		if err != nil {
			return nil, err
		}
		opts.Special = special
		for _, arg := range args {
			if err := checkPlainArgument(what, arg); err != nil {
				return nil, err
			}
		}
	}
	if opts.Stringifier {
		if len(args) != 0 {
			return nil, semanticError(types.DiagSpecialOperation, locs(loc),
				"stringifier has wrong number of arguments")
		}
		if !IsString(returnType) {
			return nil, semanticError(types.DiagSpecialOperation, locs(loc),
				"stringifier must have string return type")
		}
	}

	if uid == nil {
		if !opts.Getter && !opts.Setter && !opts.Creator && !opts.Deleter &&
			!opts.LegacyCaller && !opts.Stringifier {
			return nil, NewError(KindSyntax, types.DiagSpecialOperation,
				"Identifier required for non-special methods", loc)
		}
		var err error
		uid, err = NewUnresolvedIdentifier(BuiltinLocation("<auto-generated-identifier>"),
			synthesizedName(opts), IdentifierOptions{AllowDoubleUnderscore: true})
		if err != nil {
			return nil, err
		}
	}
	return NewMethod(loc, uid, returnType, args, opts)
}

// NewStringifier returns the method declared by a bare "stringifier;".
func NewStringifier(loc *Location) (*Method, error) {
	uid := &UnresolvedIdentifier{loc: BuiltinLocation("<auto-generated-identifier>"), name: "__stringifier"}
	return NewMethod(loc, uid, Builtin(BuiltinDOMString), nil, MethodOptions{Stringifier: true})
}

func specialKey(what string, arg *Argument) (NamedOrIndexed, error) {
	switch {
	case TypeEqual(arg.typ, Builtin(BuiltinDOMString)):
		return Named, nil
	case TypeEqual(arg.typ, Builtin(BuiltinUnsignedLong)):
		return Indexed, nil
	}
	return Neither, semanticError(types.DiagSpecialOperation, locs(arg.loc),
		"%s has wrong argument type (must be DOMString or UnsignedLong)", what)
}

func checkPlainArgument(what string, arg *Argument) error {
	switch {
	case arg.variadic:
		return semanticError(types.DiagSpecialOperation, locs(arg.loc),
			"%s cannot have variadic argument", what)
	case arg.optional:
		return semanticError(types.DiagSpecialOperation, locs(arg.loc),
			"%s cannot have optional argument", what)
	}
	return nil
}

func synthesizedName(opts MethodOptions) string {
	var b strings.Builder
	b.WriteString("__")
	b.WriteString(opts.Special.String())
	for _, part := range []struct {
		set  bool
		name string
	}{
		{opts.Getter, "getter"},
		{opts.Setter, "setter"},
		{opts.Deleter, "deleter"},
		{opts.Creator, "creator"},
		{opts.LegacyCaller, "legacycaller"},
		{opts.Stringifier, "stringifier"},
	} {
		if part.set {
			b.WriteString(part.name)
		}
	}
	return b.String()
}

func (m *Method) IsStatic() bool                 { return m.opts.Static }
func (m *Method) IsGetter() bool                 { return m.opts.Getter }
func (m *Method) IsSetter() bool                 { return m.opts.Setter }
func (m *Method) IsCreator() bool                { return m.opts.Creator }
func (m *Method) IsDeleter() bool                { return m.opts.Deleter }
func (m *Method) IsLegacyCaller() bool           { return m.opts.LegacyCaller }
func (m *Method) IsStringifier() bool            { return m.opts.Stringifier }
func (m *Method) NamedOrIndexed() NamedOrIndexed { return m.opts.Special }
func (m *Method) IsNamed() bool                  { return m.opts.Special == Named }
func (m *Method) IsIndexed() bool                { return m.opts.Special == Indexed }
func (m *Method) HasOverloads() bool             { return m.hasOverloads }
func (m *Method) Overloads() []*MethodOverload   { return m.overloads }

// IsSpecial reports whether the method is a getter, setter, creator,
// deleter or stringifier. Those cannot be overloaded.
func (m *Method) IsSpecial() bool {
	return m.opts.Getter || m.opts.Setter || m.opts.Creator || m.opts.Deleter || m.opts.Stringifier
}

// MaxArgCount returns the largest argument count of any signature. It
// is valid after Finish.
func (m *Method) MaxArgCount() int { return m.maxArgCount }

// AllowedArgCounts returns every argument count some signature accepts,
// in increasing order. It is valid after Finish.
func (m *Method) AllowedArgCounts() []int { return m.allowedArgCounts }

// AddOverload merges other's single signature into m. Both must carry
// the same extended attributes and agree on static and legacycaller.
func (m *Method) AddOverload(other *Method) error {
	if !m.extAttrs.Equal(other.extAttrs) {
		return semanticError(types.DiagOverloadMismatch, locs(m.loc, other.loc),
			"Extended attributes differ on different overloads of %s", other.Name())
	}
	if m.opts.Static != other.opts.Static {
		return semanticError(types.DiagOverloadMismatch, locs(other.loc),
			"Overloaded identifier %s appears with different values of the 'static' attribute", other.Name())
	}
	if m.opts.LegacyCaller != other.opts.LegacyCaller {
		return semanticError(types.DiagOverloadMismatch, locs(other.loc),
			"Overloaded identifier %s appears with different values of the 'legacycaller' attribute", other.Name())
	}
	if m.IsSpecial() || other.IsSpecial() {
		return semanticError(types.DiagOverloadMismatch, locs(m.loc, other.loc),
			"Special operation %s cannot be overloaded", other.Name())
	}
	m.overloads = append(m.overloads, other.overloads...)
	m.hasOverloads = true
	return nil
}

// OverloadsForArgCount returns the signatures callable with argc
// arguments: those with exactly argc, those whose argument argc is
// optional, and those shorter than argc ending in a variadic argument.
func (m *Method) OverloadsForArgCount(argc int) []*MethodOverload {
	var out []*MethodOverload
	for _, o := range m.overloads {
		n := len(o.arguments)
		switch {
		case n == argc,
			n > argc && o.arguments[argc].optional,
			n < argc && n > 0 && o.arguments[n-1].variadic:
			out = append(out, o)
		}
	}
	return out
}

func (m *Method) Finish(scope *Scope) error {
	if m.finished {
		return nil
	}
	m.finished = true
	for _, o := range m.overloads {
		for i, arg := range o.arguments {
			if arg.IsComplete() {
				continue
			}
			if err := arg.Complete(scope); err != nil {
				return err
			}
			if IsDictionary(arg.typ) {
				if !arg.optional {
					return semanticError(types.DiagArgumentDictionary, locs(arg.loc),
						"Dictionary argument must be optional")
				}
				if i != len(o.arguments)-1 {
					return semanticError(types.DiagArgumentDictionary, locs(arg.loc),
						"Dictionary argument must be last argument")
				}
			}
		}
		if !IsComplete(o.returnType) {
			t, err := Complete(o.returnType, scope)
			if err != nil {
				return err
			}
			o.returnType = t
		}
	}

	m.maxArgCount = 0
	for _, o := range m.overloads {
		m.maxArgCount = max(m.maxArgCount, len(o.arguments))
	}
	m.allowedArgCounts = nil
	for argc := 0; argc <= m.maxArgCount; argc++ {
		if len(m.OverloadsForArgCount(argc)) > 0 {
			m.allowedArgCounts = append(m.allowedArgCounts, argc)
		}
	}
	return nil
}

// DistinguishingIndexForArgCount returns the first argument position at
// which every pair of signatures callable with argc arguments has
// distinguishable types.
func (m *Method) DistinguishingIndexForArgCount(argc int) (int, error) {
	overloads := m.OverloadsForArgCount(argc)
	for idx := 0; idx < argc; idx++ {
		if isDistinguishingIndex(idx, overloads) {
			return idx, nil
		}
	}
	var where []*Location
	for _, o := range overloads {
		where = append(where, o.loc)
	}
	return -1, semanticError(types.DiagOverloadIndistinguishable, where,
		"Signatures with %d arguments for method '%s' are not distinguishable", argc, m.Name())
}

func isDistinguishingIndex(idx int, overloads []*MethodOverload) bool {
	for i, first := range overloads {
		for _, second := range overloads[i+1:] {
			if !IsDistinguishableFrom(first.argumentType(idx), second.argumentType(idx)) {
				return false
			}
		}
	}
	return true
}

// Validate checks that every argument count with several callable
// signatures has a distinguishing index, and that those signatures
// agree on every argument type before it.
func (m *Method) Validate() error {
	for _, argc := range m.allowedArgCounts {
		overloads := m.OverloadsForArgCount(argc)
		if len(overloads) == 1 {
			continue
		}
		index, err := m.DistinguishingIndexForArgCount(argc)
		if err != nil {
			return err
		}
		for idx := 0; idx < index; idx++ {
			firstType := overloads[0].argumentType(idx)
			for _, o := range overloads[1:] {
				if !TypeEqual(o.argumentType(idx), firstType) {
					return semanticError(types.DiagOverloadArgumentTypes, locs(m.loc, o.loc),
						"Signatures for method '%s' with %d arguments have different types of arguments at index %d, which is before distinguishing index %d",
						m.Name(), argc, idx, index)
				}
			}
		}
	}
	return nil
}
