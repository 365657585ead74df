package dfs

import "github.com/katalvlaran/dskit/graph"

// SCC computes strongly connected components with Kosaraju's two-pass
// algorithm: a first DFS over the reverse digraph fixes the root order,
// a second DFS over the original labels each tree as one component.
type SCC struct {
	count  int
	id     []int
	marked []bool
}

// NewSCC analyzes g. O(V + E), two passes.
func NewSCC(g *graph.Digraph) (*SCC, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	order, err := NewOrder(g.Reverse())
	if err != nil {
		return nil, err
	}

	s := &SCC{id: make([]int, g.V()), marked: make([]bool, g.V())}
	for _, v := range order.ReversePost() {
		if !s.marked[v] {
			if err = s.dfs(g, v); err != nil {
				return nil, err
			}
			s.count++
		}
	}

	return s, nil
}

func (s *SCC) dfs(g *graph.Digraph, v int) error {
	s.marked[v] = true
	s.id[v] = s.count
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		if !s.marked[w] {
			if err = s.dfs(g, w); err != nil {
				return err
			}
		}
	}

	return nil
}

// Count reports the number of strongly connected components.
func (s *SCC) Count() int { return s.count }

// ID reports the component id of v, in [0, Count). Components are
// numbered in the order the second pass discovers them.
func (s *SCC) ID(v int) (int, error) {
	if err := validate(v, len(s.id)); err != nil {
		return 0, err
	}

	return s.id[v], nil
}

// StronglyConnected reports whether v and w can reach each other.
func (s *SCC) StronglyConnected(v, w int) (bool, error) {
	if err := validate(v, len(s.id)); err != nil {
		return false, err
	}
	if err := validate(w, len(s.id)); err != nil {
		return false, err
	}

	return s.id[v] == s.id[w], nil
}
