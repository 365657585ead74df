package dfs

import "github.com/katalvlaran/dskit/graph"

// Components partitions an undirected graph into its connected
// components. Component ids are assigned in increasing order of the
// lowest vertex in each component.
type Components struct {
	count int
	id    []int
}

// NewComponents runs one depth-first pass over every vertex. O(V + E).
func NewComponents(g *graph.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := &Components{id: make([]int, g.V())}
	marked := make([]bool, g.V())
	for s := 0; s < g.V(); s++ {
		if !marked[s] {
			if err := c.dfs(g, s, marked); err != nil {
				return nil, err
			}
			c.count++
		}
	}

	return c, nil
}

func (c *Components) dfs(g *graph.Graph, v int, marked []bool) error {
	marked[v] = true
	c.id[v] = c.count
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		if !marked[w] {
			if err = c.dfs(g, w, marked); err != nil {
				return err
			}
		}
	}

	return nil
}

// Count reports the number of connected components.
func (c *Components) Count() int { return c.count }

// ID reports the component id of v, in [0, Count).
func (c *Components) ID(v int) (int, error) {
	if err := validate(v, len(c.id)); err != nil {
		return 0, err
	}

	return c.id[v], nil
}

// Connected reports whether v and w share a component.
func (c *Components) Connected(v, w int) (bool, error) {
	if err := validate(v, len(c.id)); err != nil {
		return false, err
	}
	if err := validate(w, len(c.id)); err != nil {
		return false, err
	}

	return c.id[v] == c.id[w], nil
}
