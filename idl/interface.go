package idl

import (
	"cmp"
	"slices"

	"github.com/golangsnmp/goidl/internal/graph"
	"github.com/golangsnmp/goidl/internal/types"
)

// Interface is an interface or callback interface definition.
type Interface struct {
	named
	scope           *Scope
	parentRef       *IdentifierPlaceholder
	parent          *Interface
	members         []Member
	originalMembers []Member
	callback        bool
	implemented     []*Interface
	basedOnSelf     map[*Interface]struct{}
	consequential   bool
	extAttrs        ExtendedAttributes
	ctor            *Method
	finished        bool
}

// NewInterface returns an interface and declares its members in the
// interface's own scope. Methods sharing a name become overloads of the
// first declaration. parent may be nil.
func NewInterface(uid *UnresolvedIdentifier, parent *IdentifierPlaceholder, members []Member, callback bool) (*Interface, error) {
	iface := &Interface{
		named:     newNamed(uid),
		parentRef: parent,
		callback:  callback,
	}
	iface.basedOnSelf = map[*Interface]struct{}{iface: {}}
	iface.scope = newScope(iface, nil, mergeMembers)
	for _, m := range members {
		decl, err := iface.scope.Add(m)
		if err != nil {
			return nil, err
		}
		if decl.Outcome == Inserted {
			iface.members = append(iface.members, m)
		}
	}
	return iface, nil
}

func (i *Interface) Scope() *Scope                          { return i.scope }
func (i *Interface) IsCallback() bool                       { return i.callback }
func (i *Interface) IsConsequential() bool                  { return i.consequential }
func (i *Interface) Members() []Member                      { return i.members }
func (i *Interface) OriginalMembers() []Member              { return i.originalMembers }
func (i *Interface) ExtendedAttributes() ExtendedAttributes { return i.extAttrs }

// Ctor returns the method synthesized from [Constructor], or nil.
func (i *Interface) Ctor() *Method { return i.ctor }

// Parent returns the resolved parent interface. It is nil before Finish
// and for interfaces without one.
func (i *Interface) Parent() *Interface { return i.parent }

// ParentName returns the name written after the colon, or "".
func (i *Interface) ParentName() string {
	if i.parentRef == nil {
		return ""
	}
	return i.parentRef.name
}

// NoInterfaceObject reports whether [NoInterfaceObject] is present.
func (i *Interface) NoInterfaceObject() bool { return i.extAttrs.Has("NoInterfaceObject") }

// ImplementedInterfaces returns the interfaces named on the right of
// "implements" statements with i on the left, in statement order.
func (i *Interface) ImplementedInterfaces() []*Interface { return i.implemented }

func (i *Interface) addImplementedInterface(other *Interface) {
	if !slices.Contains(i.implemented, other) {
		i.implemented = append(i.implemented, other)
	}
}

// AddExtendedAttributes records the interface's attributes. Each
// [Constructor] adds a signature to a static "constructor" method.
func (i *Interface) AddExtendedAttributes(attrs ExtendedAttributes) error {
	for _, attr := range attrs {
		switch attr.name {
		case "TreatNonCallableAsNull":
			return semanticError(types.DiagExtendedAttribute, locs(attr.loc, i.loc),
				"TreatNonCallableAsNull cannot be specified on interfaces")
		case "NoInterfaceObject":
			if !attr.NoArgs() {
				return semanticError(types.DiagExtendedAttribute, locs(attr.loc),
					"[NoInterfaceObject] must take no arguments")
			}
		case "Constructor":
			if err := i.addConstructor(attr); err != nil {
				return err
			}
		}
		i.extAttrs = append(i.extAttrs, attr)
	}
	if i.ctor != nil && i.extAttrs.Has("NoInterfaceObject") {
		return semanticError(types.DiagExtendedAttribute, locs(i.loc),
			"Constructor and NoInterfaceObject are incompatible")
	}
	return nil
}

func (i *Interface) addConstructor(attr *ExtendedAttribute) error {
	uid, err := NewUnresolvedIdentifier(attr.loc, "constructor", IdentifierOptions{AllowForbidden: true})
	if err != nil {
		return err
	}
	m, err := NewMethod(attr.loc, uid, NewWrapperType(attr.loc, i), attr.args, MethodOptions{Static: true})
	if err != nil {
		return err
	}
	err = m.AddExtendedAttributes(ExtendedAttributes{
		NewExtendedAttribute(attr.loc, "Creator"),
		NewExtendedAttribute(attr.loc, "Throws"),
	})
	if err != nil {
		return err
	}
	decl, err := i.scope.Add(m)
	if err != nil {
		return err
	}
	if decl.Outcome == Inserted {
		i.ctor = m
	}
	return nil
}

// InheritedInterfaces returns the ancestors of i, nearest first. It is
// valid after Finish.
func (i *Interface) InheritedInterfaces() []*Interface {
	var out []*Interface
	for p := i.parent; p != nil && p != i && !slices.Contains(out, p); p = p.parent {
		out = append(out, p)
	}
	return out
}

// ConsequentialInterfaces returns every interface whose members i
// gains through implements statements: the implemented interfaces,
// their ancestors, and transitively their consequential interfaces.
// The result is sorted by name. It is valid after Finish.
func (i *Interface) ConsequentialInterfaces() []*Interface {
	seen := make(map[*Interface]bool)
	i.collectConsequential(seen)
	out := make([]*Interface, 0, len(seen))
	for iface := range seen {
		out = append(out, iface)
	}
	slices.SortFunc(out, func(a, b *Interface) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}

func (i *Interface) collectConsequential(seen map[*Interface]bool) {
	var direct []*Interface
	for _, iface := range i.implemented {
		direct = append(direct, iface)
		direct = append(direct, iface.InheritedInterfaces()...)
	}
	for _, iface := range direct {
		if seen[iface] {
			continue
		}
		seen[iface] = true
		iface.collectConsequential(seen)
	}
}

// InterfacesBasedOnSelf returns i plus every interface that inherits
// from or implements it, sorted by name. It is valid after every
// interface has finished.
func (i *Interface) InterfacesBasedOnSelf() []*Interface {
	out := make([]*Interface, 0, len(i.basedOnSelf))
	for iface := range i.basedOnSelf {
		out = append(out, iface)
	}
	slices.SortFunc(out, func(a, b *Interface) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}

func (i *Interface) sharesDescendant(other *Interface) bool {
	for iface := range i.basedOnSelf {
		if _, ok := other.basedOnSelf[iface]; ok {
			return true
		}
	}
	return false
}

func (i *Interface) setIsConsequentialInterfaceOf(other *Interface) {
	i.consequential = true
	i.basedOnSelf[other] = struct{}{}
}

func (i *Interface) Finish(scope *Scope) error {
	if i.finished {
		return nil
	}
	i.finished = true

	if err := i.finishParent(scope); err != nil {
		return err
	}

	for _, iface := range i.implemented {
		if err := iface.Finish(scope); err != nil {
			return err
		}
	}

	if loop, ok := i.findLoopPoint(); ok {
		return semanticError(types.DiagInheritanceCycle, locs(i.loc, loop.loc),
			"Interface %s has itself as ancestor or implemented interface", i.Name())
	}

	for _, m := range i.members {
		if err := m.Finish(scope); err != nil {
			return err
		}
	}
	if i.ctor != nil {
		if err := i.ctor.Finish(scope); err != nil {
			return err
		}
	}

	i.originalMembers = slices.Clone(i.members)

	for _, iface := range i.ConsequentialInterfaces() {
		iface.setIsConsequentialInterfaceOf(i)
		for _, extra := range iface.originalMembers {
			for _, m := range i.members {
				if extra.Name() == m.Name() {
					return semanticError(types.DiagImplementsCollision, locs(extra.Location(), m.Location()),
						"Multiple definitions of %s on %s coming from 'implements' statements",
						extra.Name(), i.Name())
				}
			}
		}
		i.members = append(i.members, iface.originalMembers...)
	}

	for _, ancestor := range i.InheritedInterfaces() {
		ancestor.basedOnSelf[i] = struct{}{}
		for _, c := range ancestor.ConsequentialInterfaces() {
			c.basedOnSelf[i] = struct{}{}
		}
	}

	return i.checkSpecialMembers()
}

func (i *Interface) finishParent(scope *Scope) error {
	if i.parentRef == nil {
		return nil
	}
	obj, err := i.parentRef.Resolve(scope)
	if err != nil {
		return err
	}
	parent, ok := obj.(*Interface)
	if !ok {
		if _, external := obj.(*ExternalInterface); external {
			return semanticError(types.DiagInheritance, locs(i.loc, obj.Location()),
				"%s inherits from %s which does not have a definition", i.Name(), i.parentRef.name)
		}
		return semanticError(types.DiagInheritance, locs(i.loc, obj.Location()),
			"%s inherits from %s which is not an interface", i.Name(), i.parentRef.name)
	}
	i.parent = parent
	if err := parent.Finish(scope); err != nil {
		return err
	}
	if parent.callback && !i.callback {
		return semanticError(types.DiagInheritance, locs(i.loc, parent.loc),
			"Non-callback interface %s inheriting from callback interface %s", i.Name(), parent.Name())
	}
	if i.callback && !parent.callback {
		return semanticError(types.DiagInheritance, locs(i.loc, parent.loc),
			"Callback interface %s inheriting from non-callback interface %s", i.Name(), parent.Name())
	}
	return nil
}

// findLoopPoint walks the parent and implements edges reachable from i
// and returns an interface on a path back to i.
func (i *Interface) findLoopPoint() (*Interface, bool) {
	g := graph.New()
	byName := map[graph.Node]*Interface{graph.Node(i.Name()): i}
	queue := []*Interface{i}
	g.AddNode(graph.Node(i.Name()))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := slices.Clone(cur.implemented)
		if cur.parent != nil {
			next = append(next, cur.parent)
		}
		for _, n := range next {
			node := graph.Node(n.Name())
			if _, seen := byName[node]; !seen {
				byName[node] = n
				queue = append(queue, n)
			}
			g.AddEdge(graph.Node(cur.Name()), node)
		}
	}
	node, ok := g.LoopPoint(graph.Node(i.Name()))
	if !ok {
		return nil, false
	}
	return byName[node], true
}

func (i *Interface) checkSpecialMembers() error {
	seen := make(map[string]bool)
	for _, m := range i.members {
		method, ok := m.(*Method)
		if !ok {
			continue
		}
		var kind string
		switch {
		case method.IsGetter():
			kind = "getters"
		case method.IsSetter():
			kind = "setters"
		case method.IsCreator():
			kind = "creators"
		case method.IsDeleter():
			kind = "deleters"
		default:
			continue
		}
		switch method.NamedOrIndexed() {
		case Named, Indexed:
			kind = method.NamedOrIndexed().String() + " " + kind
		default:
			continue
		}
		if seen[kind] {
			return semanticError(types.DiagSpecialMemberDuplicate, locs(i.loc, method.loc),
				"Multiple %s on %s", kind, i.Name())
		}
		seen[kind] = true
	}
	return nil
}

func (i *Interface) Validate() error {
	for _, m := range i.members {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if i.ctor != nil {
		return i.ctor.Validate()
	}
	return nil
}
