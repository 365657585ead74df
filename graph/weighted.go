package graph

import "fmt"

// EdgeWeightedGraph is an undirected graph whose edges carry float64
// weights. Each Edge appears in the adjacency list of both endpoints.
type EdgeWeightedGraph struct {
	v   int
	e   int
	adj [][]Edge
}

// NewEdgeWeightedGraph returns an empty weighted graph with v vertices.
// Returns ErrNegativeOrder if v is negative.
func NewEdgeWeightedGraph(v int) (*EdgeWeightedGraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, v)
	}

	return &EdgeWeightedGraph{v: v, adj: make([][]Edge, v)}, nil
}

// V reports the number of vertices.
func (g *EdgeWeightedGraph) V() int { return g.v }

// E reports the number of edges.
func (g *EdgeWeightedGraph) E() int { return g.e }

func (g *EdgeWeightedGraph) validate(vertices ...int) error {
	for _, v := range vertices {
		if v < 0 || v >= g.v {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, g.v)
		}
	}

	return nil
}

// AddEdge adds e to the adjacency list of both endpoints. O(1).
func (g *EdgeWeightedGraph) AddEdge(e Edge) error {
	v := e.Either()
	w, err := e.Other(v)
	if err != nil {
		return err
	}
	if err = g.validate(v, w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.e++

	return nil
}

// Adj returns the edges incident to v. The slice is the live adjacency
// list; callers must not modify it.
func (g *EdgeWeightedGraph) Adj(v int) ([]Edge, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Edges returns every edge exactly once. Self-loops appear once as well;
// the v <= other filter keeps only one of the two list entries.
func (g *EdgeWeightedGraph) Edges() []Edge {
	edges := make([]Edge, 0, g.e)
	for v := 0; v < g.v; v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			other, _ := e.Other(v)
			if other > v {
				edges = append(edges, e)
			} else if other == v {
				// Each self-loop sits twice in adj[v]; take every other one.
				if selfLoops%2 == 0 {
					edges = append(edges, e)
				}
				selfLoops++
			}
		}
	}

	return edges
}

// EdgeWeightedDigraph is a directed graph whose edges carry float64
// weights. Dijkstra's algorithm runs over this type.
type EdgeWeightedDigraph struct {
	v   int
	e   int
	adj [][]DirectedEdge
}

// NewEdgeWeightedDigraph returns an empty weighted digraph with v
// vertices. Returns ErrNegativeOrder if v is negative.
func NewEdgeWeightedDigraph(v int) (*EdgeWeightedDigraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, v)
	}

	return &EdgeWeightedDigraph{v: v, adj: make([][]DirectedEdge, v)}, nil
}

// V reports the number of vertices.
func (g *EdgeWeightedDigraph) V() int { return g.v }

// E reports the number of edges.
func (g *EdgeWeightedDigraph) E() int { return g.e }

func (g *EdgeWeightedDigraph) validate(vertices ...int) error {
	for _, v := range vertices {
		if v < 0 || v >= g.v {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, g.v)
		}
	}

	return nil
}

// AddEdge adds e to the adjacency list of its tail. O(1).
func (g *EdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	if err := g.validate(e.From(), e.To()); err != nil {
		return err
	}
	g.adj[e.From()] = append(g.adj[e.From()], e)
	g.e++

	return nil
}

// Adj returns the edges leaving v. The slice is the live adjacency list;
// callers must not modify it.
func (g *EdgeWeightedDigraph) Adj(v int) ([]DirectedEdge, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// Edges returns every directed edge.
func (g *EdgeWeightedDigraph) Edges() []DirectedEdge {
	edges := make([]DirectedEdge, 0, g.e)
	for v := 0; v < g.v; v++ {
		edges = append(edges, g.adj[v]...)
	}

	return edges
}
