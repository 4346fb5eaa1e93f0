package idl

// Typedef is a named alias. Completing any type that refers to it
// yields the completed inner type.
type Typedef struct {
	named
	inner Type
}

// NewTypedef returns an alias of inner.
func NewTypedef(uid *UnresolvedIdentifier, inner Type) *Typedef {
	return &Typedef{named: newNamed(uid), inner: inner}
}

func (*Typedef) isType()                                  {}
func (t *Typedef) String() string                         { return t.Name() }
func (t *Typedef) Inner() Type                            { return t.inner }
func (t *Typedef) ExtendedAttributes() ExtendedAttributes { return nil }
func (t *Typedef) Validate() error                        { return nil }

func (t *Typedef) AddExtendedAttributes(attrs ExtendedAttributes) error {
	if len(attrs) > 0 {
		return typeExtendedAttributeError(attrs[0])
	}
	return nil
}

// Finish completes the inner type in place so later references reuse
// it.
func (t *Typedef) Finish(scope *Scope) error {
	if IsComplete(t.inner) {
		return nil
	}
	c := completer{scope: scope, active: []*Typedef{t}}
	inner, err := c.complete(t.inner)
	if err != nil {
		return err
	}
	t.inner = inner
	return nil
}
