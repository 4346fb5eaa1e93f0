package idl

// Each predicate is one exhaustive switch over the Type variants.
// Nullable types and typedefs answer for their inner type.

// IsPrimitive reports whether t is a numeric or boolean type.
func IsPrimitive(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag <= BuiltinDouble
	case *NullableType:
		return IsPrimitive(t.inner)
	case *Typedef:
		return IsPrimitive(t.inner)
	default:
		return false
	}
}

// IsBoolean reports whether t is boolean.
func IsBoolean(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag == BuiltinBoolean
	case *NullableType:
		return IsBoolean(t.inner)
	case *Typedef:
		return IsBoolean(t.inner)
	default:
		return false
	}
}

// IsNumeric reports whether t is an integer or floating-point type.
func IsNumeric(t Type) bool {
	return IsPrimitive(t) && !IsBoolean(t)
}

// IsInteger reports whether t is one of the eight integer types.
func IsInteger(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag <= BuiltinUnsignedLongLong
	case *NullableType:
		return IsInteger(t.inner)
	case *Typedef:
		return IsInteger(t.inner)
	default:
		return false
	}
}

// IsString reports whether t is DOMString.
func IsString(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag == BuiltinDOMString
	case *NullableType:
		return IsString(t.inner)
	case *Typedef:
		return IsString(t.inner)
	default:
		return false
	}
}

func isBuiltinTag(t Type, tag BuiltinTag) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag == tag
	case *NullableType:
		return isBuiltinTag(t.inner, tag)
	case *Typedef:
		return isBuiltinTag(t.inner, tag)
	default:
		return false
	}
}

// IsVoid reports whether t is void.
func IsVoid(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag == BuiltinVoid
	case *Typedef:
		return IsVoid(t.inner)
	default:
		return false
	}
}

// IsAny reports whether t is any.
func IsAny(t Type) bool { return isBuiltinTag(t, BuiltinAny) }

// IsDate reports whether t is Date.
func IsDate(t Type) bool { return isBuiltinTag(t, BuiltinDate) }

// IsObject reports whether t is object.
func IsObject(t Type) bool { return isBuiltinTag(t, BuiltinObject) }

// IsArrayBuffer reports whether t is ArrayBuffer.
func IsArrayBuffer(t Type) bool { return isBuiltinTag(t, BuiltinArrayBuffer) }

// IsArrayBufferView reports whether t is ArrayBufferView.
func IsArrayBufferView(t Type) bool { return isBuiltinTag(t, BuiltinArrayBufferView) }

// IsTypedArray reports whether t is one of the typed array types.
func IsTypedArray(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag >= BuiltinInt8Array && t.tag <= BuiltinFloat64Array
	case *NullableType:
		return IsTypedArray(t.inner)
	case *Typedef:
		return IsTypedArray(t.inner)
	default:
		return false
	}
}

// IsEngineInterface reports whether t is ArrayBuffer, ArrayBufferView
// or a typed array: interfaces implemented by the script engine rather
// than declared in IDL.
func IsEngineInterface(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag >= BuiltinArrayBuffer
	case *NullableType:
		return IsEngineInterface(t.inner)
	case *Typedef:
		return IsEngineInterface(t.inner)
	default:
		return false
	}
}

// IsInterface reports whether t refers to an interface, including
// forward-declared and engine-implemented ones.
func IsInterface(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType:
		return t.tag >= BuiltinArrayBuffer
	case *WrapperType:
		switch t.inner.(type) {
		case *Interface, *ExternalInterface:
			return true
		}
		return false
	case *NullableType:
		return IsInterface(t.inner)
	case *Typedef:
		return IsInterface(t.inner)
	default:
		return false
	}
}

// IsCallbackInterface reports whether t refers to a callback interface.
func IsCallbackInterface(t Type) bool {
	switch t := t.(type) {
	case *WrapperType:
		iface, ok := t.inner.(*Interface)
		return ok && iface.IsCallback()
	case *NullableType:
		return IsCallbackInterface(t.inner)
	case *Typedef:
		return IsCallbackInterface(t.inner)
	default:
		return false
	}
}

// IsNonCallbackInterface reports whether t refers to an interface that
// is not a callback interface.
func IsNonCallbackInterface(t Type) bool {
	return IsInterface(t) && !IsCallbackInterface(t)
}

// IsDictionary reports whether t refers to a dictionary.
func IsDictionary(t Type) bool {
	switch t := t.(type) {
	case *WrapperType:
		_, ok := t.inner.(*Dictionary)
		return ok
	case *NullableType:
		return IsDictionary(t.inner)
	case *Typedef:
		return IsDictionary(t.inner)
	default:
		return false
	}
}

// IsEnum reports whether t refers to an enum.
func IsEnum(t Type) bool {
	switch t := t.(type) {
	case *WrapperType:
		_, ok := t.inner.(*Enum)
		return ok
	case *NullableType:
		return IsEnum(t.inner)
	case *Typedef:
		return IsEnum(t.inner)
	default:
		return false
	}
}

// IsCallback reports whether t is a callback function type.
func IsCallback(t Type) bool {
	switch t := t.(type) {
	case *CallbackType:
		return true
	case *NullableType:
		return IsCallback(t.inner)
	case *Typedef:
		return IsCallback(t.inner)
	default:
		return false
	}
}

// IsSequence reports whether t is a sequence type.
func IsSequence(t Type) bool {
	switch t := t.(type) {
	case *SequenceType:
		return true
	case *NullableType:
		return IsSequence(t.inner)
	case *Typedef:
		return IsSequence(t.inner)
	default:
		return false
	}
}

// IsArray reports whether t is an array type.
func IsArray(t Type) bool {
	switch t := t.(type) {
	case *ArrayType:
		return true
	case *NullableType:
		return IsArray(t.inner)
	case *Typedef:
		return IsArray(t.inner)
	default:
		return false
	}
}

// IsUnion reports whether t is a union type.
func IsUnion(t Type) bool {
	switch t := t.(type) {
	case *UnionType:
		return true
	case *NullableType:
		return IsUnion(t.inner)
	case *Typedef:
		return IsUnion(t.inner)
	default:
		return false
	}
}

// IsNullable reports whether t is T?. A union with a nullable member is
// not itself nullable; see UnionType.HasNullableType.
func IsNullable(t Type) bool {
	switch t := t.(type) {
	case *NullableType:
		return true
	case *Typedef:
		return IsNullable(t.inner)
	default:
		return false
	}
}

// unionHasNullable reports whether t is a union, possibly behind a
// typedef or nullable, with a nullable flattened member.
func unionHasNullable(t Type) bool {
	switch t := t.(type) {
	case *UnionType:
		return t.hasNullable
	case *NullableType:
		return unionHasNullable(t.inner)
	case *Typedef:
		return unionHasNullable(t.inner)
	default:
		return false
	}
}

// IsComplete reports whether t needs no further completion.
func IsComplete(t Type) bool {
	switch t := t.(type) {
	case *BuiltinType, *WrapperType, *CallbackType:
		return true
	case *UnresolvedType, *Typedef:
		return false
	case *NullableType:
		return IsComplete(t.inner)
	case *SequenceType:
		return IsComplete(t.inner)
	case *ArrayType:
		return IsComplete(t.inner)
	case *UnionType:
		return t.complete
	default:
		return false
	}
}

// Tag returns the fundamental kind of t. Unresolved types have no tag
// and report false.
func Tag(t Type) (TypeTag, bool) {
	switch t := t.(type) {
	case *BuiltinType:
		return builtinInfos[t.tag].tag, true
	case *NullableType:
		return Tag(t.inner)
	case *Typedef:
		return Tag(t.inner)
	case *SequenceType:
		return TagSequence, true
	case *ArrayType:
		return TagArray, true
	case *UnionType:
		return TagUnion, true
	case *CallbackType:
		return TagCallback, true
	case *WrapperType:
		switch t.inner.(type) {
		case *Dictionary:
			return TagDictionary, true
		case *Enum:
			return TagEnum, true
		default:
			return TagInterface, true
		}
	default:
		return 0, false
	}
}

// Unroll strips nullable, sequence, array and typedef wrappers down to
// the type that carries the tag.
func Unroll(t Type) Type {
	switch u := t.(type) {
	case *NullableType:
		return Unroll(u.inner)
	case *SequenceType:
		return Unroll(u.inner)
	case *ArrayType:
		return Unroll(u.inner)
	case *Typedef:
		return Unroll(u.inner)
	default:
		return t
	}
}
