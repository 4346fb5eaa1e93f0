package idl

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/golangsnmp/goidl/internal/types"
)

// ValueKind identifies the kind of a literal.
type ValueKind int

const (
	ValueInteger ValueKind = iota
	ValueBoolean
	ValueString
	ValueNull
)

// Value is a constant or default value literal. Its type starts as the
// literal's natural type and is narrowed by CoerceToType.
type Value struct {
	loc     *Location
	kind    ValueKind
	typ     Type
	integer *big.Int
	boolean bool
	str     string
}

// NewIntegerValue returns an integer literal typed as the narrowest
// integer type that holds it.
func NewIntegerValue(loc *Location, v *big.Int) (*Value, error) {
	t := MatchIntegerValueToType(v)
	if t == nil {
		return nil, NewError(KindSemantic, types.DiagValueOutOfRange,
			fmt.Sprintf("Value %s doesn't fit in any integer type", v), loc)
	}
	return &Value{loc: loc, kind: ValueInteger, typ: t, integer: v}, nil
}

// NewBooleanValue returns true or false.
func NewBooleanValue(loc *Location, v bool) *Value {
	return &Value{loc: loc, kind: ValueBoolean, typ: Builtin(BuiltinBoolean), boolean: v}
}

// NewStringValue returns a DOMString literal.
func NewStringValue(loc *Location, v string) *Value {
	return &Value{loc: loc, kind: ValueString, typ: Builtin(BuiltinDOMString), str: v}
}

// NewNullValue returns null. It has no type until coerced.
func NewNullValue(loc *Location) *Value {
	return &Value{loc: loc, kind: ValueNull}
}

func (v *Value) Kind() ValueKind     { return v.kind }
func (v *Value) Type() Type          { return v.typ }
func (v *Value) Location() *Location { return v.loc }

// Int returns the integer value, nil for other kinds.
func (v *Value) Int() *big.Int { return v.integer }

// Bool returns the boolean value.
func (v *Value) Bool() bool { return v.boolean }

// Str returns the string value.
func (v *Value) Str() string { return v.str }

func (v *Value) String() string {
	switch v.kind {
	case ValueInteger:
		return v.integer.String()
	case ValueBoolean:
		return strconv.FormatBool(v.boolean)
	case ValueString:
		return strconv.Quote(v.str)
	default:
		return "null"
	}
}

func (v *Value) withType(t Type) *Value {
	c := *v
	c.typ = t
	return &c
}

// CoerceToType converts v to t, checking integer ranges and enum
// membership. loc is the construct that needs the conversion.
func CoerceToType(v *Value, t Type, loc *Location) (*Value, error) {
	if v.kind == ValueNull {
		return coerceNull(v, t, loc)
	}
	if TypeEqual(v.typ, t) {
		return v, nil
	}
	if n, ok := t.(*NullableType); ok {
		inner, err := CoerceToType(v, n.inner, loc)
		if err != nil {
			return nil, err
		}
		return inner.withType(t), nil
	}

	switch {
	case IsInteger(v.typ) && IsInteger(t):
		b, ok := t.(*BuiltinType)
		if !ok {
			break
		}
		r, _ := rangeFor(b.tag)
		if !r.contains(v.integer) {
			return nil, NewError(KindSemantic, types.DiagValueOutOfRange,
				fmt.Sprintf("Value %s is out of range for type %s.", v.integer, t), loc)
		}
		return v.withType(t), nil
	case IsString(v.typ) && IsEnum(t):
		enum := Unroll(t).(*WrapperType).inner.(*Enum)
		if !slices.Contains(enum.values, v.str) {
			return nil, semanticError(types.DiagEnumValue, locs(loc, enum.Location()),
				"'%s' is not a valid default value for enum %s", v.str, enum.Name())
		}
		return v, nil
	}
	return nil, NewError(KindSemantic, types.DiagValueCoercion,
		fmt.Sprintf("Cannot coerce type %s to type %s.", v.typ, t), loc)
}

func coerceNull(v *Value, t Type, loc *Location) (*Value, error) {
	if !IsNullable(t) && !unionHasNullable(t) && !IsDictionary(t) && !IsAny(t) {
		return nil, NewError(KindSemantic, types.DiagValueCoercion,
			fmt.Sprintf("Cannot coerce null value to type %s.", t), loc)
	}
	return v.withType(t), nil
}
