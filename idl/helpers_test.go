package idl

import (
	"math/big"
	"testing"
)

// at returns a location named after the construct it marks.
func at(text string) *Location {
	return NewLocation("test.webidl", []byte(text), 0)
}

func uid(name string) *UnresolvedIdentifier {
	return &UnresolvedIdentifier{loc: at(name), name: name}
}

func ref(name string) *UnresolvedType {
	return NewUnresolvedType(at(name), name)
}

func arg(name string, t Type) *Argument {
	return NewArgument(uid(name), t, ArgumentOptions{})
}

func optionalArg(name string, t Type) *Argument {
	return NewArgument(uid(name), t, ArgumentOptions{Optional: true})
}

func variadicArg(name string, t Type) *Argument {
	return NewArgument(uid(name), t, ArgumentOptions{Variadic: true})
}

func intValue(t *testing.T, v int64) *Value {
	t.Helper()
	val, err := NewIntegerValue(at("value"), big.NewInt(v))
	if err != nil {
		t.Fatalf("NewIntegerValue(%d): %v", v, err)
	}
	return val
}

var (
	tLong     = Builtin(BuiltinLong)
	tShort    = Builtin(BuiltinShort)
	tOctet    = Builtin(BuiltinOctet)
	tBoolean  = Builtin(BuiltinBoolean)
	tString   = Builtin(BuiltinDOMString)
	tAny      = Builtin(BuiltinAny)
	tObject   = Builtin(BuiltinObject)
	tDate     = Builtin(BuiltinDate)
	tVoid     = Builtin(BuiltinVoid)
	tDouble   = Builtin(BuiltinDouble)
	tULong    = Builtin(BuiltinUnsignedLong)
	tUint8Arr = Builtin(BuiltinUint8Array)
)

func method(t *testing.T, name string, ret Type, args ...*Argument) *Method {
	t.Helper()
	m, err := NewMethod(at(name), uid(name), ret, args, MethodOptions{})
	if err != nil {
		t.Fatalf("NewMethod(%s): %v", name, err)
	}
	return m
}

func staticMethod(t *testing.T, name string, ret Type, args ...*Argument) *Method {
	t.Helper()
	m, err := NewMethod(at(name), uid(name), ret, args, MethodOptions{Static: true})
	if err != nil {
		t.Fatalf("NewMethod(%s): %v", name, err)
	}
	return m
}

func attribute(t *testing.T, name string, typ Type) *Attribute {
	t.Helper()
	a, err := NewAttribute(uid(name), typ, AttributeOptions{})
	if err != nil {
		t.Fatalf("NewAttribute(%s): %v", name, err)
	}
	return a
}

func newIface(t *testing.T, name, parent string, members ...Member) *Interface {
	t.Helper()
	var p *IdentifierPlaceholder
	if parent != "" {
		p = NewIdentifierPlaceholder(uid(parent))
	}
	iface, err := NewInterface(uid(name), p, members, false)
	if err != nil {
		t.Fatalf("NewInterface(%s): %v", name, err)
	}
	return iface
}

func newCallbackIface(t *testing.T, name, parent string, members ...Member) *Interface {
	t.Helper()
	var p *IdentifierPlaceholder
	if parent != "" {
		p = NewIdentifierPlaceholder(uid(parent))
	}
	iface, err := NewInterface(uid(name), p, members, true)
	if err != nil {
		t.Fatalf("NewInterface(%s): %v", name, err)
	}
	return iface
}

func implements(left, right string) *ImplementsStatement {
	return NewImplementsStatement(at(left+" implements "+right),
		NewIdentifierPlaceholder(uid(left)), NewIdentifierPlaceholder(uid(right)))
}

// declareAll declares every definition among prods into a fresh global
// scope the way the parser front-end does, dropping merged duplicates.
func declareAll(t *testing.T, prods ...Production) (*Scope, []Production) {
	t.Helper()
	scope := NewGlobalScope()
	var kept []Production
	for _, p := range prods {
		obj, ok := p.(Object)
		if !ok {
			kept = append(kept, p)
			continue
		}
		decl, err := scope.Add(obj)
		if err != nil {
			t.Fatalf("declare %s: %v", obj.Name(), err)
		}
		if decl.Outcome == Inserted {
			kept = append(kept, p)
		}
	}
	return scope, kept
}

// finishAll declares and finishes prods, returning the definitions.
func finishAll(t *testing.T, prods ...Production) ([]Definition, error) {
	t.Helper()
	scope, kept := declareAll(t, prods...)
	return Finish(scope, kept, nil)
}

func defNames(defs []Definition) []string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name()
	}
	return names
}

func ifaceNames(ifaces []*Interface) []string {
	names := make([]string, len(ifaces))
	for i, iface := range ifaces {
		names[i] = iface.Name()
	}
	return names
}

func memberNames(members []Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return names
}

func wrapper(def Definition) *WrapperType {
	return NewWrapperType(at(def.Name()), def)
}
