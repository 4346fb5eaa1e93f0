package idl

// NewGlobalScope returns an empty global scope seeded with typedefs for
// the engine-implemented types ArrayBuffer, ArrayBufferView and the
// typed arrays. Each name aliases the builtin of the same name.
func NewGlobalScope() *Scope {
	s := newScope(nil, nil, nil)
	loc := BuiltinLocation("<builtin type>")
	for tag := BuiltinArrayBuffer; tag <= BuiltinFloat64Array; tag++ {
		b := Builtin(tag)
		td := NewTypedef(&UnresolvedIdentifier{loc: loc, name: b.Name()}, b)
		if _, err := s.Add(td); err != nil {
			panic(err)
		}
	}
	return s
}

// IsEngineTypedef reports whether def is one of the typedefs
// NewGlobalScope installs.
func IsEngineTypedef(def Definition) bool {
	td, ok := def.(*Typedef)
	return ok && td.loc.IsBuiltin() && IsEngineInterface(td.inner)
}
