package integration

import (
	"testing"

	"github.com/golangsnmp/goidl/idl"
	"github.com/golangsnmp/goidl/internal/testutil"
)

// AttributeTestCase defines the expected completed type of an attribute.
type AttributeTestCase struct {
	Interface string
	Name      string
	Type      string // IDL spelling after typedefs are expanded
	Readonly  bool
	Check     func(idl.Type) bool
}

var attributeTests = []AttributeTestCase{
	{Interface: "Event", Name: "type", Type: "DOMString", Readonly: true, Check: idl.IsString},
	{Interface: "Event", Name: "target", Type: "EventTarget?", Readonly: true, Check: idl.IsNullable},
	{Interface: "Event", Name: "timeStamp", Type: "unsigned long long", Readonly: true, Check: idl.IsInteger},
	{Interface: "Node", Name: "ownerDocument", Type: "Document?", Readonly: true, Check: idl.IsNonCallbackInterface},
	{Interface: "Node", Name: "textContent", Type: "DOMString?", Check: idl.IsString},
	{Interface: "Document", Name: "readyState", Type: "DocumentReadyState", Readonly: true, Check: idl.IsEnum},
	{Interface: "Document", Name: "onreadystatechange", Type: "EventHandlerNonNull?", Check: idl.IsCallback},
	{Interface: "ImageData", Name: "data", Type: "Uint8ClampedArray", Readonly: true, Check: idl.IsTypedArray},
	{Interface: "CanvasRenderingContext2D", Name: "fillStyle", Type: "(DOMString or CanvasGradient or CanvasPattern)", Check: idl.IsUnion},
	{Interface: "CanvasRenderingContext2D", Name: "lineWidth", Type: "double", Check: idl.IsNumeric},
}

func TestAttributeTypes(t *testing.T) {
	for _, tc := range attributeTests {
		t.Run(tc.Interface+"."+tc.Name, func(t *testing.T) {
			attr, ok := member(t, tc.Interface, tc.Name).(*idl.Attribute)
			testutil.True(t, ok, "not an attribute")
			testutil.Equal(t, tc.Type, attr.Type().String())
			testutil.Equal(t, tc.Readonly, attr.IsReadonly())
			testutil.True(t, tc.Check(attr.Type()), "predicate failed for %s", attr.Type())
		})
	}
}

// ConstTestCase defines the expected type and value of a constant.
type ConstTestCase struct {
	Interface string
	Name      string
	Type      string
	Value     string
}

var constTests = []ConstTestCase{
	{Interface: "Event", Name: "NONE", Type: "unsigned short", Value: "0"},
	{Interface: "Event", Name: "BUBBLING_PHASE", Type: "unsigned short", Value: "3"},
	{Interface: "Node", Name: "ELEMENT_NODE", Type: "unsigned short", Value: "1"},
	{Interface: "Node", Name: "DOCUMENT_NODE", Type: "unsigned short", Value: "9"},
}

func TestConstants(t *testing.T) {
	for _, tc := range constTests {
		t.Run(tc.Interface+"."+tc.Name, func(t *testing.T) {
			c, ok := member(t, tc.Interface, tc.Name).(*idl.Const)
			testutil.True(t, ok, "not a const")
			testutil.Equal(t, tc.Type, c.Type().String())
			testutil.Equal(t, tc.Value, c.Value().String())
		})
	}
}

func TestDictionaryMembers(t *testing.T) {
	init := lookup[*idl.Dictionary](t, "EventInit")
	var got []string
	for _, m := range init.Members() {
		got = append(got, m.String())
	}
	testutil.SliceEqual(t, []string{"boolean bubbles = false", "boolean cancelable = false"}, got)
}

func TestEnumValues(t *testing.T) {
	e := lookup[*idl.Enum](t, "DocumentReadyState")
	testutil.SliceEqual(t, []string{"loading", "interactive", "complete"}, e.Values())
}
