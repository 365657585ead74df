package mst

import (
	"container/heap"

	"github.com/katalvlaran/dskit/graph"
)

// edgeHeap orders edges by ascending weight for container/heap.
type edgeHeap []graph.Edge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(graph.Edge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Kruskal holds a minimum spanning forest computed by Kruskal's
// algorithm: edges by ascending weight, union-find to reject cycles.
type Kruskal struct {
	edges  []graph.Edge
	weight float64
}

// NewKruskal computes the minimum spanning forest of g. O(E log E).
func NewKruskal(g *graph.EdgeWeightedGraph) (*Kruskal, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.V() == 0 {
		return nil, ErrEmptyGraph
	}

	h := edgeHeap(g.Edges())
	heap.Init(&h)
	uf, err := graph.NewUnionFind(g.V())
	if err != nil {
		return nil, err
	}

	k := &Kruskal{}
	for h.Len() > 0 && len(k.edges) < g.V()-1 {
		e := heap.Pop(&h).(graph.Edge)
		v := e.Either()
		w, err := e.Other(v)
		if err != nil {
			return nil, err
		}
		joined, err := uf.Connected(v, w)
		if err != nil {
			return nil, err
		}
		if joined {
			continue
		}
		if err = uf.Union(v, w); err != nil {
			return nil, err
		}
		k.edges = append(k.edges, e)
		k.weight += e.Weight()
	}

	return k, nil
}

// Edges returns the forest edges in acceptance order, which for
// Kruskal is ascending weight.
func (k *Kruskal) Edges() []graph.Edge { return k.edges }

// Weight reports the total weight of the forest.
func (k *Kruskal) Weight() float64 { return k.weight }
