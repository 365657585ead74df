package dfs

import "github.com/katalvlaran/dskit/graph"

// Cycle detects a directed cycle. When one exists, Cycle() reports it
// with the repeated vertex at both ends.
type Cycle struct {
	marked  []bool
	onStack []bool
	edgeTo  []int
	cycle   []int
}

// NewCycle searches every DFS tree of g for a back edge. O(V + E).
func NewCycle(g *graph.Digraph) (*Cycle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.V()
	c := &Cycle{
		marked:  make([]bool, n),
		onStack: make([]bool, n),
		edgeTo:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		if !c.marked[v] {
			if err := c.dfs(g, v); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

func (c *Cycle) dfs(g *graph.Digraph, v int) error {
	c.marked[v] = true
	c.onStack[v] = true
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		switch {
		case c.HasCycle():
			return nil
		case !c.marked[w]:
			c.edgeTo[w] = v
			if err = c.dfs(g, w); err != nil {
				return err
			}
		case c.onStack[w]:
			// Back edge v->w closes a cycle; unwind edgeTo from v back
			// to w, flip into forward order, then close the loop.
			c.cycle = nil
			for x := v; x != w; x = c.edgeTo[x] {
				c.cycle = append(c.cycle, x)
			}
			c.cycle = append(c.cycle, w)
			for i, j := 0, len(c.cycle)-1; i < j; i, j = i+1, j-1 {
				c.cycle[i], c.cycle[j] = c.cycle[j], c.cycle[i]
			}
			c.cycle = append(c.cycle, w)
		}
	}
	c.onStack[v] = false

	return nil
}

// HasCycle reports whether a directed cycle was found.
func (c *Cycle) HasCycle() bool { return len(c.cycle) > 0 }

// Cycle returns the detected cycle in traversal order, first vertex
// repeated at the end, or nil when the digraph is acyclic.
func (c *Cycle) Cycle() []int {
	if !c.HasCycle() {
		return nil
	}

	return c.cycle
}
