package idl

import (
	"slices"
	"strings"
)

// ExtAttrForm is the syntactic shape of an extended attribute.
type ExtAttrForm int

const (
	ExtAttrNoArgs       ExtAttrForm = iota // [Name]
	ExtAttrArgList                         // [Name(args)]
	ExtAttrIdent                           // [Name=Value]
	ExtAttrNamedArgList                    // [Name=Value(args)]
	ExtAttrIdentList                       // [Name=(a, b)]
)

// ExtendedAttribute is one entry of a [...] list.
type ExtendedAttribute struct {
	loc    *Location
	name   string
	form   ExtAttrForm
	value  string
	args   []*Argument
	idents []string
}

// NewExtendedAttribute returns [name].
func NewExtendedAttribute(loc *Location, name string) *ExtendedAttribute {
	return &ExtendedAttribute{loc: loc, name: name, form: ExtAttrNoArgs}
}

// WithArgs sets an argument list, making the form ArgList or
// NamedArgList.
func (a *ExtendedAttribute) WithArgs(args []*Argument) *ExtendedAttribute {
	a.args = args
	if a.form == ExtAttrIdent {
		a.form = ExtAttrNamedArgList
	} else {
		a.form = ExtAttrArgList
	}
	return a
}

// WithValue sets the =Value part.
func (a *ExtendedAttribute) WithValue(value string) *ExtendedAttribute {
	a.value = value
	if a.form == ExtAttrArgList {
		a.form = ExtAttrNamedArgList
	} else {
		a.form = ExtAttrIdent
	}
	return a
}

// WithIdents sets an =(a, b) list.
func (a *ExtendedAttribute) WithIdents(idents []string) *ExtendedAttribute {
	a.idents = idents
	a.form = ExtAttrIdentList
	return a
}

func (a *ExtendedAttribute) Location() *Location { return a.loc }
func (a *ExtendedAttribute) Name() string        { return a.name }
func (a *ExtendedAttribute) Form() ExtAttrForm   { return a.form }
func (a *ExtendedAttribute) Value() string       { return a.value }
func (a *ExtendedAttribute) Args() []*Argument   { return a.args }
func (a *ExtendedAttribute) Idents() []string    { return a.idents }

// HasArgs reports whether the attribute carries an argument list.
func (a *ExtendedAttribute) HasArgs() bool {
	return a.form == ExtAttrArgList || a.form == ExtAttrNamedArgList
}

// NoArgs reports whether the attribute is a bare name.
func (a *ExtendedAttribute) NoArgs() bool { return a.form == ExtAttrNoArgs }

// String renders the attribute in canonical IDL form.
func (a *ExtendedAttribute) String() string {
	var b strings.Builder
	b.WriteString(a.name)
	switch a.form {
	case ExtAttrIdent:
		b.WriteString("=" + a.value)
	case ExtAttrNamedArgList:
		b.WriteString("=" + a.value)
		writeArgs(&b, a.args)
	case ExtAttrArgList:
		writeArgs(&b, a.args)
	case ExtAttrIdentList:
		b.WriteString("=(" + strings.Join(a.idents, ", ") + ")")
	}
	return b.String()
}

func writeArgs(b *strings.Builder, args []*Argument) {
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
}

// ExtendedAttributes is an ordered attribute list.
type ExtendedAttributes []*ExtendedAttribute

// Get returns the last attribute called name.
func (l ExtendedAttributes) Get(name string) (*ExtendedAttribute, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].name == name {
			return l[i], true
		}
	}
	return nil, false
}

// Has reports whether an attribute called name is present.
func (l ExtendedAttributes) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// canonical renders the set as a name-keyed map would: order-insensitive
// and with later duplicates replacing earlier ones.
func (l ExtendedAttributes) canonical() string {
	byName := make(map[string]string, len(l))
	for _, a := range l {
		byName[a.name] = a.String()
	}
	keys := make([]string, 0, len(byName))
	for k := range byName {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = byName[k]
	}
	return strings.Join(parts, ",")
}

// Equal reports whether both lists carry the same attributes.
func (l ExtendedAttributes) Equal(other ExtendedAttributes) bool {
	return l.canonical() == other.canonical()
}

func (l ExtendedAttributes) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
