package idl

import (
	"fmt"
	"strings"

	"github.com/golangsnmp/goidl/internal/types"
)

// TypeTag is the fundamental kind of a type, as seen by code generators.
type TypeTag int

const (
	TagInt8 TypeTag = iota
	TagUint8
	TagInt16
	TagUint16
	TagInt32
	TagUint32
	TagInt64
	TagUint64
	TagBool
	TagFloat
	TagDouble
	TagAny
	TagDOMString
	TagObject
	TagDate
	TagVoid
	TagInterface
	TagDictionary
	TagEnum
	TagCallback
	TagUnion
	TagSequence
	TagArray
)

var typeTagNames = [...]string{
	"int8", "uint8", "int16", "uint16", "int32", "uint32", "int64", "uint64",
	"bool", "float", "double", "any", "domstring", "object", "date", "void",
	"interface", "dictionary", "enum", "callback", "union", "sequence", "array",
}

func (t TypeTag) String() string {
	if t >= 0 && int(t) < len(typeTagNames) {
		return typeTagNames[t]
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// TypeSuffixModifier is a suffix applied after a base type.
type TypeSuffixModifier int

const (
	QMark    TypeSuffixModifier = iota // ?
	Brackets                           // []
)

func (m TypeSuffixModifier) String() string {
	if m == QMark {
		return "?"
	}
	return "[]"
}

// Modifier is one parsed type suffix and where it was written.
type Modifier struct {
	Kind     TypeSuffixModifier
	Location *Location
}

// Type is the closed set of IDL types. The concrete types are
// *BuiltinType, *UnresolvedType, *NullableType, *SequenceType,
// *ArrayType, *UnionType, *WrapperType, *Typedef and *CallbackType.
type Type interface {
	// Name is the identifier-safe name used by code generators, e.g.
	// "LongOrNull" for long?.
	Name() string
	// String is the type as it would be written in IDL.
	String() string
	Location() *Location
	isType()
}

// BuiltinType is a primitive, string, any, object, Date, void or an
// engine-implemented buffer type. Instances are shared; see Builtin.
type BuiltinType struct {
	tag BuiltinTag
}

func (*BuiltinType) isType() {}

// Tag returns the builtin tag.
func (t *BuiltinType) Tag() BuiltinTag     { return t.tag }
func (t *BuiltinType) Name() string        { return builtinInfos[t.tag].name }
func (t *BuiltinType) String() string      { return builtinInfos[t.tag].spelling }
func (t *BuiltinType) Location() *Location { return builtinTypeLocation }

// UnresolvedType is a reference by name that completion resolves
// against the global scope.
type UnresolvedType struct {
	loc  *Location
	name string
}

// NewUnresolvedType returns a reference to the type called name.
func NewUnresolvedType(loc *Location, name string) *UnresolvedType {
	return &UnresolvedType{loc: loc, name: name}
}

func (*UnresolvedType) isType()               {}
func (t *UnresolvedType) Name() string        { return t.name }
func (t *UnresolvedType) String() string      { return t.name }
func (t *UnresolvedType) Location() *Location { return t.loc }

// NullableType is T?.
type NullableType struct {
	loc   *Location
	inner Type
}

// NewNullableType wraps inner. Inner types that cannot be nullable are
// rejected when the type is completed.
func NewNullableType(loc *Location, inner Type) *NullableType {
	return &NullableType{loc: loc, inner: inner}
}

func (*NullableType) isType()               {}
func (t *NullableType) Inner() Type         { return t.inner }
func (t *NullableType) Name() string        { return t.inner.Name() + "OrNull" }
func (t *NullableType) String() string      { return t.inner.String() + "?" }
func (t *NullableType) Location() *Location { return t.loc }

// SequenceType is sequence<T>.
type SequenceType struct {
	loc   *Location
	inner Type
}

// NewSequenceType returns sequence<inner>.
func NewSequenceType(loc *Location, inner Type) *SequenceType {
	return &SequenceType{loc: loc, inner: inner}
}

func (*SequenceType) isType()               {}
func (t *SequenceType) Inner() Type         { return t.inner }
func (t *SequenceType) Name() string        { return t.inner.Name() + "Sequence" }
func (t *SequenceType) String() string      { return "sequence<" + t.inner.String() + ">" }
func (t *SequenceType) Location() *Location { return t.loc }

// ArrayType is T[].
type ArrayType struct {
	loc   *Location
	inner Type
}

// NewArrayType returns inner[]. Arrays of sequences and dictionaries
// are rejected.
func NewArrayType(loc *Location, inner Type) (*ArrayType, error) {
	if err := checkArrayInner(loc, inner); err != nil {
		return nil, err
	}
	return &ArrayType{loc: loc, inner: inner}, nil
}

func checkArrayInner(loc *Location, inner Type) error {
	if IsSequence(inner) {
		return NewError(KindSemantic, types.DiagInvalidArray,
			"Array type cannot parameterize over a sequence type", loc)
	}
	if IsDictionary(inner) {
		return NewError(KindSemantic, types.DiagInvalidArray,
			"Array type cannot parameterize over a dictionary type", loc)
	}
	return nil
}

func (*ArrayType) isType()               {}
func (t *ArrayType) Inner() Type         { return t.inner }
func (t *ArrayType) Name() string        { return t.inner.Name() + "Array" }
func (t *ArrayType) String() string      { return t.inner.String() + "[]" }
func (t *ArrayType) Location() *Location { return t.loc }

// UnionType is (A or B or ...). Completion fills in the flattened
// member list.
type UnionType struct {
	loc         *Location
	members     []Type
	flat        []Type
	hasNullable bool
	complete    bool
}

// NewUnionType returns a union of members.
func NewUnionType(loc *Location, members []Type) *UnionType {
	return &UnionType{loc: loc, members: members}
}

func (*UnionType) isType() {}

// MemberTypes returns the members as written.
func (t *UnionType) MemberTypes() []Type { return t.members }

// FlatMemberTypes returns the members with nested unions inlined and
// nullable members unwrapped. It is nil until the union is completed.
func (t *UnionType) FlatMemberTypes() []Type { return t.flat }

// HasNullableType reports whether one flattened member was nullable.
func (t *UnionType) HasNullableType() bool { return t.hasNullable }

func (t *UnionType) Location() *Location { return t.loc }

func (t *UnionType) Name() string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name()
	}
	return strings.Join(names, "Or")
}

func (t *UnionType) String() string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.String()
	}
	return "(" + strings.Join(names, " or ") + ")"
}

// WrapperType refers to a declared interface, dictionary, enum or
// forward-declared interface.
type WrapperType struct {
	loc   *Location
	inner Definition
}

// NewWrapperType returns a type referring to def.
func NewWrapperType(loc *Location, def Definition) *WrapperType {
	return &WrapperType{loc: loc, inner: def}
}

func (*WrapperType) isType()               {}
func (t *WrapperType) Inner() Definition   { return t.inner }
func (t *WrapperType) Name() string        { return t.inner.Name() }
func (t *WrapperType) String() string      { return t.inner.Name() }
func (t *WrapperType) Location() *Location { return t.loc }

// HandleModifiers applies parsed suffixes to t in source order, so the
// leftmost suffix binds tightest: long?[] is an array of long?.
func HandleModifiers(t Type, modifiers []Modifier) (Type, error) {
	for _, m := range modifiers {
		switch m.Kind {
		case QMark:
			t = NewNullableType(m.Location, t)
		case Brackets:
			arr, err := NewArrayType(m.Location, t)
			if err != nil {
				return nil, err
			}
			t = arr
		}
	}
	return t, nil
}

// TypeEqual reports whether a and b denote the same type.
func TypeEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name() == b.Name()
}
