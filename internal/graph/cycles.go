package graph

import "slices"

// FindCycles returns all strongly connected components with more than one
// node, plus single nodes with a self-loop. Each cycle is sorted by name.
func (g *Graph) FindCycles() [][]Node {
	_, cycles := g.ResolutionOrder()
	return cycles
}

// HasCycles reports whether the graph contains any cycles.
func (g *Graph) HasCycles() bool {
	return len(g.FindCycles()) > 0
}

// CycleThrough returns the cycle containing n, or nil if n is acyclic.
func (g *Graph) CycleThrough(n Node) []Node {
	for _, scc := range g.FindCycles() {
		if slices.Contains(scc, n) {
			return scc
		}
	}
	return nil
}

// LoopPoint returns the first node (in name order) on a cycle through n
// that has a direct edge back to n. The second result is false when n is
// not on a cycle.
func (g *Graph) LoopPoint(n Node) (Node, bool) {
	for _, m := range g.CycleThrough(n) {
		if g.HasEdge(m, n) {
			return m, true
		}
	}
	return "", false
}
