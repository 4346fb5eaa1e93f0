package idl

import (
	"errors"
	"testing"

	"github.com/golangsnmp/goidl/internal/testutil"
	"github.com/golangsnmp/goidl/internal/types"
)

func TestUnresolvedIdentifierPolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    IdentifierOptions
		want    string
		wantErr bool
	}{
		{name: "plain", input: "foo", want: "foo"},
		{name: "escape stripped", input: "_interface", want: "interface"},
		{name: "double underscore", input: "__foo", wantErr: true},
		{name: "double underscore allowed", input: "__foo", opts: IdentifierOptions{AllowDoubleUnderscore: true}, want: "__foo"},
		{name: "prototype", input: "prototype", wantErr: true},
		{name: "constructor", input: "constructor", wantErr: true},
		{name: "toString", input: "toString", wantErr: true},
		{name: "escaped toString", input: "_toString", wantErr: true},
		{name: "constructor allowed", input: "constructor", opts: IdentifierOptions{AllowForbidden: true}, want: "constructor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUnresolvedIdentifier(at(tt.input), tt.input, tt.opts)
			if tt.wantErr {
				var ierr *Error
				if !errors.As(err, &ierr) {
					t.Fatalf("NewUnresolvedIdentifier(%q) = %v, want *Error", tt.input, err)
				}
				testutil.Equal(t, types.DiagReservedIdentifier, ierr.Code)
				return
			}
			testutil.NoError(t, err)
			testutil.Equal(t, tt.want, got.Name())
		})
	}
}

func TestScopeDeclareInserted(t *testing.T) {
	s := NewGlobalScope()
	e := NewExternalInterface(uid("Node"))
	decl, err := s.Add(e)
	testutil.NoError(t, err)
	testutil.Equal(t, Inserted, decl.Outcome)
	testutil.Equal(t, Object(e), decl.Bound)
	testutil.Equal(t, "::Node", e.Identifier().QualifiedName())

	obj, err := s.Lookup("Node")
	testutil.NoError(t, err)
	testutil.Equal(t, Object(e), obj)
}

func TestScopeLookupMissing(t *testing.T) {
	_, err := NewGlobalScope().Lookup("Missing")
	var ierr *Error
	if !errors.As(err, &ierr) {
		t.Fatalf("Lookup: got %v, want *Error", err)
	}
	testutil.Equal(t, KindResolution, ierr.Kind)
}

func TestScopeExternalDeduplicated(t *testing.T) {
	s := NewGlobalScope()
	first := NewExternalInterface(uid("Node"))
	second := NewExternalInterface(uid("Node"))
	_, err := s.Add(first)
	testutil.NoError(t, err)

	decl, err := s.Add(second)
	testutil.NoError(t, err)
	testutil.Equal(t, MergedInto, decl.Outcome)
	testutil.Equal(t, Object(first), decl.Bound)
}

func TestScopeExternalThenDefinitionCollides(t *testing.T) {
	s := NewGlobalScope()
	_, err := s.Add(NewExternalInterface(uid("Node")))
	testutil.NoError(t, err)

	decl, err := s.Add(newIface(t, "Node", ""))
	testutil.ErrorContains(t, err, "Name collision between interface declarations for identifier 'Node'")
	testutil.Equal(t, Rejected, decl.Outcome)
}

func TestScopeDefinitionThenExternalCollides(t *testing.T) {
	tests := []struct {
		name string
		obj  func() Object
	}{
		{"interface", func() Object { return newIface(t, "Foo", "") }},
		{"dictionary", func() Object { return mustDictionary(t, "Foo", "") }},
		{"enum", func() Object {
			e, err := NewEnum(uid("Foo"), []string{"a"})
			testutil.NoError(t, err)
			return e
		}},
		{"typedef", func() Object { return NewTypedef(uid("Foo"), tLong) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGlobalScope()
			original := tt.obj()
			_, err := s.Add(original)
			testutil.NoError(t, err)

			decl, err := s.Add(NewExternalInterface(uid("Foo")))
			testutil.ErrorContains(t, err, "Name collision between interface declarations for identifier 'Foo'")
			testutil.Equal(t, Rejected, decl.Outcome)

			bound, err := s.Lookup("Foo")
			testutil.NoError(t, err)
			testutil.Equal(t, original, bound)
		})
	}
}

func TestScopeDuplicateRejected(t *testing.T) {
	s := NewGlobalScope()
	_, err := s.Add(newIface(t, "A", ""))
	testutil.NoError(t, err)
	_, err = s.Add(NewTypedef(uid("A"), tLong))
	testutil.ErrorContains(t, err, "Multiple unresolvable definitions of identifier 'A' in scope '::'")
}

func TestScopeMethodsMerge(t *testing.T) {
	f1 := method(t, "f", tVoid, arg("a", tLong))
	f2 := method(t, "f", tVoid, arg("a", tString))
	iface := newIface(t, "A", "", f1, f2)

	testutil.Len(t, iface.Members(), 1)
	testutil.Len(t, f1.Overloads(), 2)
	testutil.True(t, f1.HasOverloads())
	testutil.Equal(t, "::A::f", f2.Identifier().QualifiedName())
}

func TestScopeAttributeMethodCollision(t *testing.T) {
	_, err := NewInterface(uid("A"), nil, []Member{
		attribute(t, "x", tLong),
		method(t, "x", tVoid),
	}, false)
	testutil.ErrorContains(t, err, "Multiple unresolvable definitions of identifier 'x' in scope '::A::'")
}

func TestGlobalScopeSeeded(t *testing.T) {
	s := NewGlobalScope()
	names := s.Names()
	testutil.Len(t, names, 11)
	testutil.Equal(t, "ArrayBuffer", names[0])
	testutil.Equal(t, "Float64Array", names[len(names)-1])

	obj, err := s.Lookup("Uint8Array")
	testutil.NoError(t, err)
	td, ok := obj.(*Typedef)
	testutil.True(t, ok, "typedef")
	testutil.True(t, IsEngineTypedef(td))
	testutil.True(t, IsTypedArray(td))
}
