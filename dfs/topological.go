package dfs

import "github.com/katalvlaran/dskit/graph"

// Topological linearizes a directed acyclic graph: every edge v->w
// places v before w in the returned order. Returns ErrCyclic when the
// digraph has a directed cycle, instead of a silent empty order.
func Topological(g *graph.Digraph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c, err := NewCycle(g)
	if err != nil {
		return nil, err
	}
	if c.HasCycle() {
		return nil, ErrCyclic
	}
	o, err := NewOrder(g)
	if err != nil {
		return nil, err
	}

	return o.ReversePost(), nil
}
