package idl

import (
	"cmp"
	"slices"

	"github.com/golangsnmp/goidl/internal/types"
)

// Dictionary is a dictionary definition. Its members are arguments
// flagged as dictionary members.
type Dictionary struct {
	named
	scope     *Scope
	parentRef *IdentifierPlaceholder
	parent    *Dictionary
	members   []*Argument
	finished  bool
}

// NewDictionary returns a dictionary and declares its members in the
// dictionary's own scope. parent may be nil.
func NewDictionary(uid *UnresolvedIdentifier, parent *IdentifierPlaceholder, members []*Argument) (*Dictionary, error) {
	d := &Dictionary{
		named:     newNamed(uid),
		parentRef: parent,
	}
	d.scope = newScope(d, nil, nil)
	for _, m := range members {
		if _, err := d.scope.Add(m); err != nil {
			return nil, err
		}
	}
	d.members = slices.Clone(members)
	return d, nil
}

func (d *Dictionary) Scope() *Scope                          { return d.scope }
func (d *Dictionary) Parent() *Dictionary                    { return d.parent }
func (d *Dictionary) ExtendedAttributes() ExtendedAttributes { return nil }

// Members returns the own members, sorted by name once finished.
func (d *Dictionary) Members() []*Argument { return d.members }

// ParentName returns the name written after the colon, or "".
func (d *Dictionary) ParentName() string {
	if d.parentRef == nil {
		return ""
	}
	return d.parentRef.name
}

func (d *Dictionary) AddExtendedAttributes(attrs ExtendedAttributes) error {
	return rejectExtendedAttributes("dictionaries", attrs)
}

func (d *Dictionary) Finish(scope *Scope) error {
	if d.finished {
		return nil
	}
	d.finished = true

	if d.parentRef != nil {
		obj, err := d.parentRef.Resolve(scope)
		if err != nil {
			return err
		}
		parent, ok := obj.(*Dictionary)
		if !ok {
			return semanticError(types.DiagInheritance, locs(d.parentRef.loc, obj.Location()),
				"Dictionary %s has parent that is not a dictionary", d.Name())
		}
		d.parent = parent
		if err := parent.Finish(scope); err != nil {
			return err
		}
	}

	for _, m := range d.members {
		if m.IsComplete() {
			continue
		}
		if err := m.Complete(scope); err != nil {
			return err
		}
	}

	slices.SortFunc(d.members, func(a, b *Argument) int { return cmp.Compare(a.Name(), b.Name()) })

	var inherited []*Argument
	seen := map[*Dictionary]bool{}
	for ancestor := d.parent; ancestor != nil && !seen[ancestor]; ancestor = ancestor.parent {
		if ancestor == d {
			return semanticError(types.DiagDictionaryCycle, locs(d.loc),
				"Dictionary %s has itself as an ancestor", d.Name())
		}
		seen[ancestor] = true
		inherited = append(inherited, ancestor.members...)
	}

	for _, im := range inherited {
		for _, m := range d.members {
			if m.Name() == im.Name() {
				return semanticError(types.DiagDictionaryDuplicateMember, locs(m.loc, im.loc),
					"Dictionary %s has two members with name %s", d.Name(), m.Name())
			}
		}
	}
	return nil
}

func (d *Dictionary) Validate() error { return nil }
