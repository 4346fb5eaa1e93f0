package idl

// IsDistinguishableFrom reports whether no value could be converted to
// both t and other, which is what overload resolution and union
// validation need. The rules are keyed on the left operand and are not
// symmetric in general; callers pass operands in a fixed order.
func IsDistinguishableFrom(t, other Type) bool {
	switch t := t.(type) {
	case *NullableType:
		if IsNullable(other) || unionHasNullable(other) || IsDictionary(other) {
			return false
		}
		return IsDistinguishableFrom(t.inner, other)
	case *Typedef:
		return IsDistinguishableFrom(t.inner, other)
	case *UnionType:
		return unionDistinguishable(t, other)
	case *UnresolvedType:
		return false
	}

	if IsUnion(other) {
		return IsDistinguishableFrom(other, t)
	}

	switch t := t.(type) {
	case *SequenceType:
		return IsPrimitive(other) || IsString(other) || IsEnum(other) ||
			IsDictionary(other) || IsDate(other) || IsNonCallbackInterface(other)
	case *ArrayType:
		return IsPrimitive(other) || IsString(other) || IsEnum(other) ||
			IsDate(other) || IsNonCallbackInterface(other)
	case *CallbackType:
		return IsPrimitive(other) || IsString(other) || IsEnum(other) ||
			IsNonCallbackInterface(other) || IsDate(other)
	case *BuiltinType:
		return builtinDistinguishable(t, other)
	case *WrapperType:
		return wrapperDistinguishable(t, other)
	}
	return false
}

func unionDistinguishable(u *UnionType, other Type) bool {
	otherTypes := []Type{other}
	if ou, ok := Unroll(other).(*UnionType); ok && IsUnion(other) {
		otherTypes = ou.members
	}
	for _, o := range otherTypes {
		for _, m := range u.members {
			if !IsDistinguishableFrom(m, o) {
				return false
			}
		}
	}
	return true
}

// isObjectLike reports the types every primitive, string and Date is
// distinguishable from.
func isObjectLike(t Type) bool {
	return IsInterface(t) || IsObject(t) || IsCallback(t) ||
		IsDictionary(t) || IsSequence(t) || IsArray(t)
}

func builtinDistinguishable(t *BuiltinType, other Type) bool {
	switch {
	case IsBoolean(t):
		return IsNumeric(other) || IsString(other) || IsEnum(other) ||
			isObjectLike(other) || IsDate(other)
	case IsNumeric(t):
		return IsBoolean(other) || IsString(other) || IsEnum(other) ||
			isObjectLike(other) || IsDate(other)
	case IsString(t):
		return IsPrimitive(other) || isObjectLike(other) || IsDate(other)
	case IsAny(t):
		return false
	case IsObject(t):
		return IsPrimitive(other) || IsString(other) || IsEnum(other)
	case IsDate(t):
		return IsPrimitive(other) || IsString(other) || IsEnum(other) ||
			IsInterface(other) || IsCallback(other) || IsDictionary(other) ||
			IsSequence(other) || IsArray(other)
	case IsVoid(t):
		return !IsVoid(other)
	}

	// Engine interfaces behave like non-callback interfaces, with their
	// own rules against each other.
	if IsPrimitive(other) || IsString(other) || IsEnum(other) || IsCallback(other) ||
		IsDictionary(other) || IsSequence(other) || IsArray(other) || IsDate(other) {
		return true
	}
	if !IsInterface(other) {
		return false
	}
	switch {
	case IsArrayBuffer(t):
		return !IsArrayBuffer(other)
	case IsArrayBufferView(t):
		return !IsArrayBufferView(other) && !IsTypedArray(other)
	case IsTypedArray(t):
		return !IsArrayBufferView(other) && !(IsTypedArray(other) && other.Name() == t.Name())
	}
	return false
}

func wrapperDistinguishable(t *WrapperType, other Type) bool {
	if IsEnum(t) {
		return isObjectLike(other) || IsDate(other)
	}
	if IsDictionary(t) && IsNullable(other) {
		return false
	}
	if IsPrimitive(other) || IsString(other) || IsEnum(other) || IsDate(other) {
		return true
	}
	if IsDictionary(t) {
		return IsNonCallbackInterface(other) || IsSequence(other) || IsArray(other)
	}

	// t is an interface.
	if IsInterface(other) {
		if IsEngineInterface(other) {
			return IsDistinguishableFrom(other, t)
		}
		ow, ok := Unroll(other).(*WrapperType)
		if !ok {
			return false
		}
		if isExternal(t.inner) || isExternal(ow.inner) {
			return !TypeEqual(t, ow)
		}
		self, ok1 := t.inner.(*Interface)
		them, ok2 := ow.inner.(*Interface)
		if !ok1 || !ok2 {
			return false
		}
		return !self.sharesDescendant(them) &&
			(IsNonCallbackInterface(t) || IsNonCallbackInterface(other))
	}
	if IsDictionary(other) || IsCallback(other) || IsSequence(other) || IsArray(other) {
		return IsNonCallbackInterface(t)
	}
	return false
}

func isExternal(def Definition) bool {
	_, ok := def.(*ExternalInterface)
	return ok
}
