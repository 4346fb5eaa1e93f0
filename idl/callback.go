package idl

import (
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// CallbackType is a callback function definition. It is also a type:
// references to it complete to the definition itself.
type CallbackType struct {
	named
	scope                  *Scope
	returnType             Type
	arguments              []*Argument
	treatNonCallableAsNull bool
	extAttrs               ExtendedAttributes
	finished               bool
}

// NewCallbackType returns a callback and declares its arguments in the
// callback's own scope.
func NewCallbackType(uid *UnresolvedIdentifier, returnType Type, args []*Argument) (*CallbackType, error) {
	if err := checkArgumentList(args); err != nil {
		return nil, err
	}
	c := &CallbackType{
		named:      newNamed(uid),
		returnType: returnType,
		arguments:  slices.Clone(args),
	}
	c.scope = newScope(c, nil, nil)
	for _, arg := range c.arguments {
		if _, err := c.scope.Add(arg); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (*CallbackType) isType()                                  {}
func (c *CallbackType) String() string                         { return c.Name() }
func (c *CallbackType) Scope() *Scope                          { return c.scope }
func (c *CallbackType) ReturnType() Type                       { return c.returnType }
func (c *CallbackType) Arguments() []*Argument                 { return c.arguments }
func (c *CallbackType) TreatNonCallableAsNull() bool           { return c.treatNonCallableAsNull }
func (c *CallbackType) ExtendedAttributes() ExtendedAttributes { return c.extAttrs }

// AddExtendedAttributes accepts only [TreatNonCallableAsNull].
func (c *CallbackType) AddExtendedAttributes(attrs ExtendedAttributes) error {
	for _, attr := range attrs {
		if attr.name != "TreatNonCallableAsNull" {
			return typeExtendedAttributeError(attr)
		}
		c.treatNonCallableAsNull = true
		c.extAttrs = append(c.extAttrs, attr)
	}
	return nil
}

func typeExtendedAttributeError(attr *ExtendedAttribute) error {
	return semanticError(types.DiagExtendedAttribute, locs(attr.loc),
		"There are no extended attributes that are allowed on types, for now (but this is changing; fix this code when that happens)")
}

func (c *CallbackType) Finish(scope *Scope) error {
	if c.finished {
		return nil
	}
	c.finished = true
	if !IsComplete(c.returnType) {
		t, err := Complete(c.returnType, scope)
		if err != nil {
			return err
		}
		c.returnType = t
	}
	for _, arg := range c.arguments {
		if arg.IsComplete() {
			continue
		}
		if err := arg.Complete(scope); err != nil {
			return err
		}
	}
	return nil
}

func (c *CallbackType) Validate() error { return nil }
