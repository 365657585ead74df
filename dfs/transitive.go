package dfs

import "github.com/katalvlaran/dskit/graph"

// TransitiveClosure answers all-pairs reachability on a digraph by
// keeping one depth-first tree per source vertex. The V trees cost
// O(V^2) memory, which suits the small or dense digraphs where
// constant-time reachability queries pay for themselves.
type TransitiveClosure struct {
	all []*Paths
}

// NewTransitiveClosure runs depth-first search from every vertex.
// O(V(V+E)) time, O(V^2) memory.
func NewTransitiveClosure(g *graph.Digraph) (*TransitiveClosure, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tc := &TransitiveClosure{all: make([]*Paths, g.V())}
	for v := range tc.all {
		p, err := NewPaths(g, v)
		if err != nil {
			return nil, err
		}
		tc.all[v] = p
	}

	return tc, nil
}

// Reachable reports whether a directed path v->...->w exists. O(1).
func (tc *TransitiveClosure) Reachable(v, w int) (bool, error) {
	if err := validate(v, len(tc.all)); err != nil {
		return false, err
	}

	return tc.all[v].HasPathTo(w)
}
