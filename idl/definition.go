package idl

import (
	"fmt"
	"log/slog"

	"github.com/golangsnmp/goidl/internal/types"
)

// Production is a top-level construct: a definition or an implements
// statement.
type Production interface {
	Location() *Location
	// Finish resolves every name the production refers to against the
	// global scope. It runs once; later calls return nil.
	Finish(scope *Scope) error
	// Validate runs checks that need every production finished.
	Validate() error
	AddExtendedAttributes(attrs ExtendedAttributes) error
}

// Definition is a named production bound in the global scope:
// *Interface, *ExternalInterface, *Dictionary, *Enum, *Typedef or
// *CallbackType.
type Definition interface {
	Production
	Object
	ExtendedAttributes() ExtendedAttributes
}

// MemberTag identifies the kind of an interface member.
type MemberTag int

const (
	MemberConst MemberTag = iota
	MemberAttribute
	MemberMethod
)

func (t MemberTag) String() string {
	switch t {
	case MemberConst:
		return "const"
	case MemberAttribute:
		return "attribute"
	default:
		return "method"
	}
}

// Member is a *Const, *Attribute or *Method.
type Member interface {
	Object
	Tag() MemberTag
	Finish(scope *Scope) error
	Validate() error
	ExtendedAttributes() ExtendedAttributes
	AddExtendedAttributes(attrs ExtendedAttributes) error
}

// memberBase carries what every interface member shares.
type memberBase struct {
	named
	tag      MemberTag
	extAttrs ExtendedAttributes
}

func (m *memberBase) Tag() MemberTag                         { return m.tag }
func (m *memberBase) ExtendedAttributes() ExtendedAttributes { return m.extAttrs }

func (m *memberBase) AddExtendedAttributes(attrs ExtendedAttributes) error {
	m.extAttrs = append(m.extAttrs, attrs...)
	return nil
}

func newNamed(uid *UnresolvedIdentifier) named {
	return named{loc: uid.loc, uid: uid}
}

// rejectExtendedAttributes reports the first attribute of a list on a
// construct that accepts none.
func rejectExtendedAttributes(what string, attrs ExtendedAttributes) error {
	if len(attrs) == 0 {
		return nil
	}
	return NewError(KindSemantic, types.DiagExtendedAttribute,
		fmt.Sprintf("Extended attributes are not allowed on %s", what), attrs[0].loc)
}

// Finish runs the finish and validate phases over productions in
// order. Implements statements are finished first so that every
// interface knows what it implements before it merges members. The
// result holds each definition once, in first-seen order.
func Finish(scope *Scope, productions []Production, logger *slog.Logger) ([]Definition, error) {
	log := types.Logger{L: types.Component(logger, "idl")}

	log.Log(slog.LevelDebug, "starting phase", slog.String("phase", "finish"))
	for _, p := range productions {
		if stmt, ok := p.(*ImplementsStatement); ok {
			if err := stmt.Finish(scope); err != nil {
				return nil, err
			}
		}
	}
	for _, p := range productions {
		if _, ok := p.(*ImplementsStatement); ok {
			continue
		}
		if log.TraceEnabled() {
			log.Trace("finishing", slog.String("production", describe(p)))
		}
		if err := p.Finish(scope); err != nil {
			return nil, err
		}
	}
	log.Log(slog.LevelDebug, "phase complete", slog.String("phase", "finish"))

	log.Log(slog.LevelDebug, "starting phase", slog.String("phase", "validate"))
	for _, p := range productions {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	log.Log(slog.LevelDebug, "phase complete", slog.String("phase", "validate"))

	seen := make(map[Definition]bool, len(productions))
	var defs []Definition
	for _, p := range productions {
		def, ok := p.(Definition)
		if !ok || seen[def] {
			continue
		}
		seen[def] = true
		defs = append(defs, def)
	}
	return defs, nil
}

func describe(p Production) string {
	if obj, ok := p.(Object); ok {
		return obj.Name()
	}
	return fmt.Sprintf("%T", p)
}
