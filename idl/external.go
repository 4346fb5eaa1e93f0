package idl

// ExternalInterface is a forward declaration, "interface Foo;". It may
// be repeated, and a full definition may not reuse its name.
type ExternalInterface struct {
	named
}

// NewExternalInterface returns a forward declaration of uid.
func NewExternalInterface(uid *UnresolvedIdentifier) *ExternalInterface {
	return &ExternalInterface{named: newNamed(uid)}
}

func (e *ExternalInterface) IsCallback() bool                       { return false }
func (e *ExternalInterface) ExtendedAttributes() ExtendedAttributes { return nil }
func (e *ExternalInterface) Finish(*Scope) error                    { return nil }
func (e *ExternalInterface) Validate() error                        { return nil }

func (e *ExternalInterface) AddExtendedAttributes(attrs ExtendedAttributes) error {
	return rejectExtendedAttributes("forward declarations", attrs)
}
