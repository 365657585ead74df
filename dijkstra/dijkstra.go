package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dskit/containers"
	"github.com/katalvlaran/dskit/graph"
)

var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("dijkstra: nil graph")
	// ErrNegativeWeight is returned when the graph contains an edge with
	// a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
	// ErrUnreachable is returned by DistTo and PathTo when no path from
	// the source to the queried vertex exists.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// ShortestPaths holds the shortest-path tree rooted at a source vertex.
type ShortestPaths struct {
	source int
	distTo []float64
	edgeTo []graph.DirectedEdge
	seen   []bool
}

// New computes shortest paths from source over g. O(E log V).
func New(g *graph.EdgeWeightedDigraph, source int) (*ShortestPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.V()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", graph.ErrVertexRange, source, n)
	}
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeWeight, e)
		}
	}

	sp := &ShortestPaths{
		source: source,
		distTo: make([]float64, n),
		edgeTo: make([]graph.DirectedEdge, n),
		seen:   make([]bool, n),
	}
	for v := range sp.distTo {
		sp.distTo[v] = math.Inf(1)
	}
	sp.distTo[source] = 0
	sp.seen[source] = true

	// Relax vertices in order of distance from the source. The queue
	// holds at most one entry per vertex; improvements decrease its key.
	pq := containers.NewMinPQ[int]()
	_ = pq.Enqueue(source, 0)
	for !pq.IsEmpty() {
		v, _ := pq.Dequeue()
		adj, err := g.Adj(v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			w := e.To()
			if d := sp.distTo[v] + e.Weight(); d < sp.distTo[w] {
				sp.distTo[w] = d
				sp.edgeTo[w] = e
				sp.seen[w] = true
				if pq.Contains(w) {
					_ = pq.Update(w, d)
				} else {
					_ = pq.Enqueue(w, d)
				}
			}
		}
	}

	return sp, nil
}

// Source reports the vertex the tree is rooted at.
func (sp *ShortestPaths) Source() int { return sp.source }

func (sp *ShortestPaths) validate(v int) error {
	if v < 0 || v >= len(sp.distTo) {
		return fmt.Errorf("%w: %d not in [0, %d)", graph.ErrVertexRange, v, len(sp.distTo))
	}

	return nil
}

// HasPathTo reports whether v is reachable from the source.
func (sp *ShortestPaths) HasPathTo(v int) (bool, error) {
	if err := sp.validate(v); err != nil {
		return false, err
	}

	return sp.seen[v], nil
}

// DistTo reports the weight of the shortest path to v.
// Returns ErrUnreachable when no path exists.
func (sp *ShortestPaths) DistTo(v int) (float64, error) {
	if err := sp.validate(v); err != nil {
		return 0, err
	}
	if !sp.seen[v] {
		return 0, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	return sp.distTo[v], nil
}

// PathTo reports the shortest path to v as the sequence of edges from
// the source. Returns ErrUnreachable when no path exists; the path to
// the source itself is empty.
func (sp *ShortestPaths) PathTo(v int) ([]graph.DirectedEdge, error) {
	if err := sp.validate(v); err != nil {
		return nil, err
	}
	if !sp.seen[v] {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	var path []graph.DirectedEdge
	for x := v; x != sp.source; x = sp.edgeTo[x].From() {
		path = append(path, sp.edgeTo[x])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
