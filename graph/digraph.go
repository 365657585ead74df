package graph

import "fmt"

// Digraph is a directed graph over vertices 0..V-1 with adjacency lists.
type Digraph struct {
	v   int
	e   int
	adj [][]int
}

// NewDigraph returns an empty digraph with v vertices.
// Returns ErrNegativeOrder if v is negative.
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, v)
	}

	return &Digraph{v: v, adj: make([][]int, v)}, nil
}

// V reports the number of vertices.
func (g *Digraph) V() int { return g.v }

// E reports the number of edges.
func (g *Digraph) E() int { return g.e }

func (g *Digraph) validate(vertices ...int) error {
	for _, v := range vertices {
		if v < 0 || v >= g.v {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, g.v)
		}
	}

	return nil
}

// AddEdge connects v to w (one direction only). O(1).
func (g *Digraph) AddEdge(v, w int) error {
	if err := g.validate(v, w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.e++

	return nil
}

// Adj returns the vertices v points to, in insertion order. The slice is
// the live adjacency list; callers must not modify it.
func (g *Digraph) Adj(v int) ([]int, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Reverse returns a new digraph with every edge flipped. Kosaraju's SCC
// runs its first pass over the reverse.
func (g *Digraph) Reverse() *Digraph {
	r := &Digraph{v: g.v, adj: make([][]int, g.v)}
	for v, neighbors := range g.adj {
		for _, w := range neighbors {
			r.adj[w] = append(r.adj[w], v)
			r.e++
		}
	}

	return r
}
