package graph

import "fmt"

// Graph is an undirected graph over vertices 0..V-1 with adjacency
// lists. Parallel edges and self-loops are permitted.
type Graph struct {
	v   int
	e   int
	adj [][]int
}

// NewGraph returns an empty undirected graph with v vertices.
// Returns ErrNegativeOrder if v is negative.
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, v)
	}

	return &Graph{v: v, adj: make([][]int, v)}, nil
}

// V reports the number of vertices (the order of the graph).
func (g *Graph) V() int { return g.v }

// E reports the number of edges (the size of the graph).
func (g *Graph) E() int { return g.e }

// validate checks every vertex against [0, V).
func (g *Graph) validate(vertices ...int) error {
	for _, v := range vertices {
		if v < 0 || v >= g.v {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, g.v)
		}
	}

	return nil
}

// AddEdge connects v and w; both adjacency lists grow. O(1).
func (g *Graph) AddEdge(v, w int) error {
	if err := g.validate(v, w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.e++

	return nil
}

// Adj returns the neighbors of v in insertion order. The slice is the
// live adjacency list; callers must not modify it.
func (g *Graph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Degree reports the number of edges incident to v.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validate(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}
