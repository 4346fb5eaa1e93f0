package idl

import (
	"github.com/golangsnmp/goidl/internal/graph"
)

// DependencyOrder returns defs reordered so that every interface comes
// after its parent and the interfaces it implements, and every
// dictionary after its parent. Definitions with no such edges keep
// their relative input order. Names on a cycle are returned in cycles
// and left out of the order; finished definitions never have any.
func DependencyOrder(defs []Definition) (ordered []Definition, cycles [][]string) {
	g := graph.New()
	byName := make(map[graph.Node]Definition, len(defs))
	for _, def := range defs {
		n := graph.Node(def.Name())
		byName[n] = def
		g.AddNode(n)
	}
	for _, def := range defs {
		from := graph.Node(def.Name())
		switch def := def.(type) {
		case *Interface:
			if def.parent != nil {
				g.AddEdge(from, graph.Node(def.parent.Name()))
			}
			for _, iface := range def.implemented {
				g.AddEdge(from, graph.Node(iface.Name()))
			}
		case *Dictionary:
			if def.parent != nil {
				g.AddEdge(from, graph.Node(def.parent.Name()))
			}
		}
	}

	order, sccs := g.ResolutionOrder()
	placed := make(map[graph.Node]bool, len(order))
	for _, n := range order {
		placed[n] = true
	}
	// Emit in input order, pulling each definition's dependencies in
	// first.
	var visit func(n graph.Node)
	visit = func(n graph.Node) {
		if !placed[n] {
			return
		}
		placed[n] = false
		for _, dep := range g.Dependencies(n) {
			visit(dep)
		}
		if def, ok := byName[n]; ok {
			ordered = append(ordered, def)
		}
	}
	for _, def := range defs {
		visit(graph.Node(def.Name()))
	}

	for _, scc := range sccs {
		names := make([]string, len(scc))
		for i, n := range scc {
			names[i] = string(n)
		}
		cycles = append(cycles, names)
	}
	return ordered, cycles
}
