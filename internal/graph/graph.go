// Package graph provides dependency graph construction and analysis for
// interface inheritance and implements relationships.
package graph

import (
	"slices"
)

// Node identifies a definition by its name in the global scope.
type Node string

// Graph is a dependency graph of nodes with forward edges.
type Graph struct {
	nodes map[Node]struct{}
	edges map[Node][]Node
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes: make(map[Node]struct{}),
		edges: make(map[Node][]Node),
	}
}

// AddNode registers a node. Duplicate calls are no-ops.
func (g *Graph) AddNode(n Node) {
	g.nodes[n] = struct{}{}
}

// AddEdge records that "from" depends on "to" (inherits from or implements
// it), meaning "to" must be finished before "from". Missing nodes are
// created implicitly. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to Node) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Dependencies returns the nodes that n depends on (forward edges).
func (g *Graph) Dependencies(n Node) []Node {
	return g.edges[n]
}

// HasNode reports whether the node exists in the graph.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether from depends directly on to.
func (g *Graph) HasEdge(from, to Node) bool {
	return slices.Contains(g.edges[from], to)
}

// sortedNodes returns all nodes in name order so traversals are
// deterministic.
func (g *Graph) sortedNodes() []Node {
	sorted := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		sorted = append(sorted, n)
	}
	slices.Sort(sorted)
	return sorted
}

// ResolutionOrder returns nodes ordered so that dependencies come before
// dependents, using Tarjan's algorithm. Strongly connected components with
// more than one node (or a single node with a self-loop) are reported as
// cycles and excluded from the resolution order.
func (g *Graph) ResolutionOrder() (order []Node, cycles [][]Node) {
	var (
		index    int
		stack    []Node
		onStack  = make(map[Node]bool)
		indices  = make(map[Node]int)
		lowlinks = make(map[Node]int)
	)

	var strongConnect func(n Node)
	strongConnect = func(n Node) {
		indices[n] = index
		lowlinks[n] = index
		index++
		stack = append(stack, n)
		onStack[n] = true

		for _, dep := range g.edges[n] {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[n] = min(lowlinks[n], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[n] = min(lowlinks[n], indices[dep])
			}
		}

		if lowlinks[n] == indices[n] {
			var scc []Node
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == n {
					break
				}
			}
			if len(scc) > 1 || g.HasEdge(scc[0], scc[0]) {
				slices.Sort(scc)
				cycles = append(cycles, scc)
			} else {
				order = append(order, scc[0])
			}
		}
	}

	for _, n := range g.sortedNodes() {
		if _, visited := indices[n]; !visited {
			strongConnect(n)
		}
	}

	return order, cycles
}
