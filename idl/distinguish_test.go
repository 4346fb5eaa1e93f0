package idl

import (
	"testing"

	"github.com/golangsnmp/goidl/internal/testutil"
)

func TestIsDistinguishableFrom(t *testing.T) {
	dict := mustDictionary(t, "Dict", "")
	enum, err := NewEnum(uid("Mode"), []string{"on", "off"})
	testutil.NoError(t, err)
	node := newIface(t, "Node", "")
	listener := newCallbackIface(t, "Listener", "")
	handler := newCallbackIface(t, "Handler", "")
	external := NewExternalInterface(uid("Window"))
	fn, err := NewCallbackType(uid("Fn"), tVoid, nil)
	testutil.NoError(t, err)

	nullable := func(t Type) Type { return NewNullableType(at("?"), t) }
	seq := func(t Type) Type { return NewSequenceType(at("sequence"), t) }
	union := func(ts ...Type) Type { return NewUnionType(at("union"), ts) }

	tests := []struct {
		name        string
		left, right Type
		want        bool
	}{
		// any absorbs everything, from either side.
		{"any/long", tAny, tLong, false},
		{"long/any", tLong, tAny, false},
		{"any/any", tAny, tAny, false},
		{"interface/any", wrapper(node), tAny, false},
		{"sequence/any", seq(tLong), tAny, false},
		{"any?/long", nullable(tAny), tLong, false},

		// Primitive and string categories.
		{"long/DOMString", tLong, tString, true},
		{"long/boolean", tLong, tBoolean, true},
		{"boolean/long", tBoolean, tLong, true},
		{"long/short", tLong, tShort, false},
		{"long/double", tLong, tDouble, false},
		{"DOMString/DOMString", tString, tString, false},
		{"DOMString/enum", tString, wrapper(enum), false},
		{"enum/DOMString", wrapper(enum), tString, false},
		{"long/enum", tLong, wrapper(enum), true},
		{"long/Date", tLong, tDate, true},
		{"Date/Date", tDate, tDate, false},
		{"long/interface", tLong, wrapper(node), true},
		{"DOMString/sequence", tString, seq(tLong), true},

		// Nullable types.
		{"long?/DOMString?", nullable(tLong), nullable(tString), false},
		{"long?/DOMString", nullable(tLong), tString, true},
		{"long?/dictionary", nullable(tLong), wrapper(dict), false},
		{"dictionary/long?", wrapper(dict), nullable(tLong), false},
		{"dictionary/DOMString?", wrapper(dict), nullable(tString), false},
		{"dictionary/long", wrapper(dict), tLong, true},
		{"long?/union with nullable", nullable(tLong), &UnionType{members: []Type{tString}, hasNullable: true}, false},

		// Dictionaries.
		{"dictionary/interface", wrapper(dict), wrapper(node), true},
		{"dictionary/interface?", wrapper(dict), nullable(wrapper(node)), false},
		{"dictionary/dictionary", wrapper(dict), wrapper(dict), false},
		{"dictionary/sequence", wrapper(dict), seq(tLong), true},
		{"sequence/dictionary", seq(tLong), wrapper(dict), true},
		{"dictionary/callback interface", wrapper(dict), wrapper(listener), false},

		// object.
		{"object/long", tObject, tLong, true},
		{"object/DOMString", tObject, tString, true},
		{"object/interface", tObject, wrapper(node), false},
		{"long/object", tLong, tObject, true},

		// Callbacks.
		{"callback/interface", fn, wrapper(node), true},
		{"callback/callback interface", fn, wrapper(listener), false},
		{"callback/dictionary", fn, wrapper(dict), false},
		{"interface/callback", wrapper(node), fn, true},

		// Sequences and arrays.
		{"sequence/sequence", seq(tLong), seq(tString), false},
		{"sequence/interface", seq(tLong), wrapper(node), true},

		// Interfaces.
		{"interface/callback interface", wrapper(node), wrapper(listener), true},
		{"callback interface/callback interface", wrapper(listener), wrapper(handler), false},
		{"interface/itself", wrapper(node), wrapper(node), false},
		{"interface/external", wrapper(node), wrapper(external), true},
		{"external/external", wrapper(external), wrapper(external), false},

		// Engine interfaces.
		{"ArrayBuffer/ArrayBuffer", Builtin(BuiltinArrayBuffer), Builtin(BuiltinArrayBuffer), false},
		{"ArrayBuffer/interface", Builtin(BuiltinArrayBuffer), wrapper(node), true},
		{"interface/ArrayBuffer", wrapper(node), Builtin(BuiltinArrayBuffer), true},
		{"Uint8Array/ArrayBufferView", tUint8Arr, Builtin(BuiltinArrayBufferView), false},
		{"ArrayBufferView/Uint8Array", Builtin(BuiltinArrayBufferView), tUint8Arr, false},
		{"Uint8Array/Int8Array", tUint8Arr, Builtin(BuiltinInt8Array), true},
		{"Uint8Array/Uint8Array", tUint8Arr, tUint8Arr, false},
		{"Uint8Array/long", tUint8Arr, tLong, true},

		// Unions.
		{"union/boolean", union(tLong, tString), tBoolean, true},
		{"union/long", union(tLong, tString), tLong, false},
		{"long/union", tLong, union(tShort, tString), false},
		{"boolean/union", tBoolean, union(tLong, tString), true},
		{"union/union", union(tLong, tString), union(tBoolean, wrapper(node)), true},

		// Unresolved types never distinguish.
		{"unresolved/long", ref("X"), tLong, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDistinguishableFrom(tt.left, tt.right)
			if got != tt.want {
				t.Errorf("IsDistinguishableFrom(%s, %s) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestDistinguishableSharedImplementor(t *testing.T) {
	a := newIface(t, "A", "")
	b := newIface(t, "B", "")
	c := newIface(t, "C", "A")
	other := newIface(t, "Other", "")
	_, err := finishAll(t, a, b, c, other, implements("C", "B"))
	testutil.NoError(t, err)

	testutil.SliceEqual(t, []string{"A", "C"}, ifaceNames(a.InterfacesBasedOnSelf()))
	testutil.SliceEqual(t, []string{"B", "C"}, ifaceNames(b.InterfacesBasedOnSelf()))
	testutil.True(t, b.IsConsequential())

	testutil.False(t, IsDistinguishableFrom(wrapper(a), wrapper(b)), "A and B share C")
	testutil.False(t, IsDistinguishableFrom(wrapper(b), wrapper(a)), "B and A share C")
	testutil.False(t, IsDistinguishableFrom(wrapper(a), wrapper(c)), "C is based on A")
	testutil.True(t, IsDistinguishableFrom(wrapper(a), wrapper(other)))
	testutil.True(t, IsDistinguishableFrom(wrapper(b), wrapper(other)))
}
