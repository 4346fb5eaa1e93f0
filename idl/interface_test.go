package idl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/goidl/internal/testutil"
	"github.com/golangsnmp/goidl/internal/types"
)

func TestInterfaceForwardReferenceOrder(t *testing.T) {
	build := func(reverse bool) (*Interface, *Interface) {
		a := newIface(t, "A", "")
		b := newIface(t, "B", "A", attribute(t, "peer", ref("A")))
		prods := []Production{a, b}
		if reverse {
			prods = []Production{b, a}
		}
		defs, err := finishAll(t, prods...)
		require.NoError(t, err)
		require.Len(t, defs, 2)
		return a, b
	}

	a1, b1 := build(false)
	a2, b2 := build(true)
	testutil.Equal(t, a1, b1.Parent())
	testutil.Equal(t, a2, b2.Parent())
	testutil.SliceEqual(t, ifaceNames(b1.InheritedInterfaces()), ifaceNames(b2.InheritedInterfaces()))
	testutil.SliceEqual(t, ifaceNames(a1.InterfacesBasedOnSelf()), ifaceNames(a2.InterfacesBasedOnSelf()))
	testutil.SliceEqual(t, []string{"A", "B"}, ifaceNames(a2.InterfacesBasedOnSelf()))
}

func TestFinishIdempotent(t *testing.T) {
	a := newIface(t, "A", "", attribute(t, "x", tLong))
	b := newIface(t, "B", "A")
	scope, prods := declareAll(t, a, b)

	first, err := Finish(scope, prods, nil)
	require.NoError(t, err)
	second, err := Finish(scope, prods, nil)
	require.NoError(t, err)
	testutil.SliceEqual(t, defNames(first), defNames(second))
	testutil.SliceEqual(t, []string{"x"}, memberNames(a.Members()))
}

func TestFinishDeduplicatesDefinitions(t *testing.T) {
	a := newIface(t, "A", "")
	scope, _ := declareAll(t, a)
	defs, err := Finish(scope, []Production{a, a}, nil)
	require.NoError(t, err)
	testutil.SliceEqual(t, []string{"A"}, defNames(defs))
}

func TestInterfaceParentErrors(t *testing.T) {
	t.Run("external parent", func(t *testing.T) {
		_, err := finishAll(t, NewExternalInterface(uid("Base")), newIface(t, "A", "Base"))
		testutil.ErrorContains(t, err, "A inherits from Base which does not have a definition")
	})
	t.Run("non-interface parent", func(t *testing.T) {
		_, err := finishAll(t, mustDictionary(t, "Base", ""), newIface(t, "A", "Base"))
		testutil.ErrorContains(t, err, "A inherits from Base which is not an interface")
	})
	t.Run("missing parent", func(t *testing.T) {
		_, err := finishAll(t, newIface(t, "A", "Base"))
		testutil.ErrorContains(t, err, "Unresolved type 'Base'.")
	})
	t.Run("callback from non-callback", func(t *testing.T) {
		_, err := finishAll(t, newIface(t, "Base", ""), newCallbackIface(t, "A", "Base"))
		testutil.ErrorContains(t, err, "Callback interface A inheriting from non-callback interface Base")
	})
	t.Run("non-callback from callback", func(t *testing.T) {
		_, err := finishAll(t, newCallbackIface(t, "Base", ""), newIface(t, "A", "Base"))
		testutil.ErrorContains(t, err, "Non-callback interface A inheriting from callback interface Base")
	})
}

func TestInterfaceCycles(t *testing.T) {
	tests := []struct {
		name  string
		prods func() []Production
	}{
		{"self parent", func() []Production {
			return []Production{newIface(t, "A", "A")}
		}},
		{"parent loop", func() []Production {
			return []Production{newIface(t, "A", "B"), newIface(t, "B", "A")}
		}},
		{"implements self", func() []Production {
			return []Production{newIface(t, "A", ""), implements("A", "A")}
		}},
		{"implements loop", func() []Production {
			return []Production{
				newIface(t, "A", ""), newIface(t, "B", ""), newIface(t, "C", "B"),
				implements("A", "C"), implements("B", "A"),
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finishAll(t, tt.prods()...)
			testutil.ErrorContains(t, err, "has itself as ancestor or implemented interface")
			testutil.Equal(t, types.DiagInheritanceCycle, err.(*Error).Code)
		})
	}
}

func TestImplementsMergesMembers(t *testing.T) {
	mixin := newIface(t, "Mixin", "", attribute(t, "m", tLong))
	mixinBase := newIface(t, "MixinBase", "", attribute(t, "base", tLong))
	extra := newIface(t, "Extra", "", method(t, "extra", tVoid))
	mixin.parentRef = NewIdentifierPlaceholder(uid("MixinBase"))
	target := newIface(t, "Target", "", attribute(t, "own", tLong))

	defs, err := finishAll(t, target, mixin, mixinBase, extra,
		implements("Target", "Mixin"), implements("Mixin", "Extra"))
	require.NoError(t, err)
	testutil.SliceEqual(t, []string{"Target", "Mixin", "MixinBase", "Extra"}, defNames(defs))

	testutil.SliceEqual(t, []string{"Extra", "Mixin", "MixinBase"}, ifaceNames(target.ConsequentialInterfaces()))
	testutil.SliceEqual(t, []string{"own", "extra", "m", "base"}, memberNames(target.Members()))
	testutil.SliceEqual(t, []string{"own"}, memberNames(target.OriginalMembers()))
	testutil.SliceEqual(t, []string{"m", "extra"}, memberNames(mixin.Members()))
	testutil.True(t, mixin.IsConsequential())
	testutil.False(t, target.IsConsequential())
}

func TestImplementsCollision(t *testing.T) {
	mixin := newIface(t, "Mixin", "", attribute(t, "x", tLong))
	target := newIface(t, "Target", "", method(t, "x", tVoid))
	_, err := finishAll(t, target, mixin, implements("Target", "Mixin"))
	testutil.ErrorContains(t, err, "Multiple definitions of x on Target coming from 'implements' statements")
}

func TestImplementsStatementErrors(t *testing.T) {
	tests := []struct {
		name  string
		prods func() []Production
		want  string
	}{
		{"left not interface", func() []Production {
			return []Production{mustDictionary(t, "D", ""), newIface(t, "I", ""), implements("D", "I")}
		}, "Left-hand side of 'implements' is not an interface"},
		{"right not interface", func() []Production {
			return []Production{newIface(t, "I", ""), NewExternalInterface(uid("X")), implements("I", "X")}
		}, "Right-hand side of 'implements' is not an interface"},
		{"left callback", func() []Production {
			return []Production{newCallbackIface(t, "C", ""), newIface(t, "I", ""), implements("C", "I")}
		}, "Left-hand side of 'implements' is a callback interface"},
		{"right callback", func() []Production {
			return []Production{newIface(t, "I", ""), newCallbackIface(t, "C", ""), implements("I", "C")}
		}, "Right-hand side of 'implements' is a callback interface"},
		{"unresolved", func() []Production {
			return []Production{newIface(t, "I", ""), implements("I", "Nope")}
		}, "Unresolved type 'Nope'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finishAll(t, tt.prods()...)
			testutil.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSpecialMemberUniqueness(t *testing.T) {
	getter := func(name string, keyType Type) Member {
		m, err := operation([]MethodSpecial{SpecialGetter}, tAny, name, arg("k", keyType))
		require.NoError(t, err)
		return m
	}

	_, err := finishAll(t, newIface(t, "A", "", getter("item", tULong), getter("namedItem", tString)))
	testutil.NoError(t, err, "one indexed and one named getter")

	_, err = finishAll(t, newIface(t, "A", "", getter("item", tULong), getter("other", tULong)))
	testutil.ErrorContains(t, err, "Multiple indexed getters on A")

	mixin := newIface(t, "Mixin", "", getter("fromMixin", tString))
	_, err = finishAll(t, newIface(t, "A", "", getter("own", tString)), mixin, implements("A", "Mixin"))
	testutil.ErrorContains(t, err, "Multiple named getters on A")
}

func TestInterfaceConstructor(t *testing.T) {
	iface := newIface(t, "Image", "")
	attrs := ExtendedAttributes{
		NewExtendedAttribute(at("Constructor"), "Constructor"),
		NewExtendedAttribute(at("Constructor"), "Constructor").WithArgs([]*Argument{arg("width", tULong)}),
	}
	require.NoError(t, iface.AddExtendedAttributes(attrs))

	ctor := iface.Ctor()
	require.NotNil(t, ctor)
	testutil.Equal(t, "constructor", ctor.Name())
	testutil.True(t, ctor.IsStatic())
	testutil.True(t, ctor.ExtendedAttributes().Has("Creator"))
	testutil.True(t, ctor.ExtendedAttributes().Has("Throws"))
	testutil.Len(t, ctor.Overloads(), 2)
	testutil.Len(t, iface.Members(), 0, "constructor is not a plain member")

	_, err := finishAll(t, iface)
	require.NoError(t, err)
	testutil.SliceEqual(t, []int{0, 1}, ctor.AllowedArgCounts())
	ret := ctor.Overloads()[0].ReturnType()
	testutil.True(t, IsNonCallbackInterface(ret))
	testutil.Equal(t, "Image", ret.Name())
}

func TestInterfaceExtendedAttributeErrors(t *testing.T) {
	t.Run("TreatNonCallableAsNull", func(t *testing.T) {
		err := newIface(t, "A", "").AddExtendedAttributes(ExtendedAttributes{
			NewExtendedAttribute(at("T"), "TreatNonCallableAsNull"),
		})
		testutil.ErrorContains(t, err, "TreatNonCallableAsNull cannot be specified on interfaces")
	})
	t.Run("NoInterfaceObject with args", func(t *testing.T) {
		err := newIface(t, "A", "").AddExtendedAttributes(ExtendedAttributes{
			NewExtendedAttribute(at("N"), "NoInterfaceObject").WithValue("x"),
		})
		testutil.ErrorContains(t, err, "[NoInterfaceObject] must take no arguments")
	})
	t.Run("NoInterfaceObject with Constructor", func(t *testing.T) {
		err := newIface(t, "A", "").AddExtendedAttributes(ExtendedAttributes{
			NewExtendedAttribute(at("N"), "NoInterfaceObject"),
			NewExtendedAttribute(at("C"), "Constructor"),
		})
		testutil.ErrorContains(t, err, "Constructor and NoInterfaceObject are incompatible")
	})
	t.Run("NoInterfaceObject alone", func(t *testing.T) {
		iface := newIface(t, "A", "")
		require.NoError(t, iface.AddExtendedAttributes(ExtendedAttributes{
			NewExtendedAttribute(at("N"), "NoInterfaceObject"),
		}))
		testutil.True(t, iface.NoInterfaceObject())
	})
}

func TestInterfaceValidateRunsMembers(t *testing.T) {
	f := method(t, "f", tVoid, arg("a", tLong))
	require.NoError(t, f.AddOverload(method(t, "f", tVoid, arg("a", tShort))))
	_, err := finishAll(t, newIface(t, "A", "", f))
	testutil.ErrorContains(t, err, "Signatures with 1 arguments for method 'f' are not distinguishable")
}

func TestAttributeTypeRules(t *testing.T) {
	dict := mustDictionary(t, "D", "")
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"dictionary", ref("D"), "An attribute cannot be of a dictionary type"},
		{"sequence", NewSequenceType(at("s"), tLong), "An attribute cannot be of a sequence type"},
		{"union with dictionary", NewUnionType(at("u"), []Type{tLong, ref("D")}), "one of its member types"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finishAll(t, dict, newIface(t, "A", "", attribute(t, "x", tt.typ)))
			testutil.ErrorContains(t, err, tt.want)
		})
	}

	s, err := NewAttribute(uid("s"), tLong, AttributeOptions{Stringifier: true})
	require.NoError(t, err)
	_, err = finishAll(t, newIface(t, "A", "", s))
	testutil.ErrorContains(t, err, "A stringifier attribute must have a DOMString type")

	_, err = NewAttribute(uid("x"), tLong, AttributeOptions{Readonly: true, Inherit: true})
	testutil.Error(t, err)

	ro, err := NewAttribute(uid("r"), tLong, AttributeOptions{Readonly: true})
	require.NoError(t, err)
	err = ro.AddExtendedAttributes(ExtendedAttributes{NewExtendedAttribute(at("S"), "SetterThrows")})
	testutil.ErrorContains(t, err, "Readonly attributes must not be flagged as [SetterThrows]")
}

func TestConstRules(t *testing.T) {
	c, err := NewConst(uid("MAX"), tOctet, intValue(t, 255))
	require.NoError(t, err)
	_, err = finishAll(t, newIface(t, "A", "", c))
	require.NoError(t, err)
	testutil.Equal(t, "Octet", c.Value().Type().Name())

	c, err = NewConst(uid("BIG"), tOctet, intValue(t, 256))
	require.NoError(t, err)
	_, err = finishAll(t, newIface(t, "A", "", c))
	testutil.ErrorContains(t, err, "Value 256 is out of range for type octet.")

	c, err = NewConst(uid("N"), ref("Node"), intValue(t, 1))
	require.NoError(t, err)
	_, err = finishAll(t, newIface(t, "Node", ""), newIface(t, "A", "", c))
	testutil.ErrorContains(t, err, "Incorrect type for constant")

	_, err = NewConst(&UnresolvedIdentifier{loc: at("prototype"), name: "prototype"}, tLong, intValue(t, 1))
	testutil.ErrorContains(t, err, "The identifier of a constant must not be 'prototype'")
}
