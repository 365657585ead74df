package mst

import (
	"math"

	"github.com/katalvlaran/dskit/containers"
	"github.com/katalvlaran/dskit/graph"
)

// Prim holds a minimum spanning forest computed by the eager variant of
// Prim's algorithm.
type Prim struct {
	edges  []graph.Edge
	weight float64

	marked []bool
	distTo []float64
	edgeTo []graph.Edge
	pq     *containers.MinPQ[int]
}

// NewPrim computes the minimum spanning forest of g. Each pass grows
// one tree from the lowest unmarked vertex. O(E log V).
func NewPrim(g *graph.EdgeWeightedGraph) (*Prim, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.V()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	p := &Prim{
		marked: make([]bool, n),
		distTo: make([]float64, n),
		edgeTo: make([]graph.Edge, n),
		pq:     containers.NewMinPQ[int](),
	}
	for v := range p.distTo {
		p.distTo[v] = math.Inf(1)
	}

	for s := 0; s < n; s++ {
		if !p.marked[s] {
			if err := p.grow(g, s); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// grow runs one eager pass rooted at s.
func (p *Prim) grow(g *graph.EdgeWeightedGraph, s int) error {
	p.distTo[s] = 0
	_ = p.pq.Enqueue(s, 0)

	for !p.pq.IsEmpty() {
		v, _ := p.pq.Dequeue()
		p.marked[v] = true
		if v != s {
			// Dequeuing a non-root vertex fixes its cheapest crossing edge.
			p.edges = append(p.edges, p.edgeTo[v])
			p.weight += p.distTo[v]
		}

		adj, err := g.Adj(v)
		if err != nil {
			return err
		}
		for _, e := range adj {
			w, err := e.Other(v)
			if err != nil {
				return err
			}
			if p.marked[w] || e.Weight() >= p.distTo[w] {
				continue
			}
			p.distTo[w] = e.Weight()
			p.edgeTo[w] = e
			if p.pq.Contains(w) {
				_ = p.pq.Update(w, p.distTo[w])
			} else {
				_ = p.pq.Enqueue(w, p.distTo[w])
			}
		}
	}

	return nil
}

// Edges returns the forest edges in acceptance order.
func (p *Prim) Edges() []graph.Edge { return p.edges }

// Weight reports the total weight of the forest.
func (p *Prim) Weight() float64 { return p.weight }
