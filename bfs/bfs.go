package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dskit/containers"
	"github.com/katalvlaran/dskit/graph"
)

// ErrNilGraph is returned when New receives a nil adjacency view.
var ErrNilGraph = errors.New("bfs: nil graph")

// ErrUnreachable is returned by PathTo and DistTo when no path from the
// source to the queried vertex exists.
var ErrUnreachable = errors.New("bfs: vertex unreachable from source")

// Graph is the adjacency view the search needs. Both graph.Graph and
// graph.Digraph satisfy it.
type Graph interface {
	V() int
	Adj(v int) ([]int, error)
}

// Paths holds the breadth-first tree rooted at a source vertex.
type Paths struct {
	source int
	marked []bool
	edgeTo []int
	distTo []int
}

// isNil also catches a typed-nil concrete graph handed over through the
// interface, which would otherwise panic on the first method call.
func isNil(g Graph) bool {
	switch t := g.(type) {
	case nil:
		return true
	case *graph.Graph:
		return t == nil
	case *graph.Digraph:
		return t == nil
	default:
		return false
	}
}

// New runs breadth-first search on g from source and returns the
// resulting shortest-path tree. O(V + E).
func New(g Graph, source int) (*Paths, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	n := g.V()
	p := &Paths{
		source: source,
		marked: make([]bool, n),
		edgeTo: make([]int, n),
		distTo: make([]int, n),
	}
	if err := p.validate(source); err != nil {
		return nil, err
	}

	// 1. Seed the frontier with the source at distance zero.
	frontier := containers.NewQueue[int]()
	p.marked[source] = true
	frontier.Enqueue(source)

	// 2. Expand in FIFO order; the first visit to a vertex is along a
	//    shortest path, so mark on enqueue and never revisit.
	for !frontier.IsEmpty() {
		v, _ := frontier.Dequeue()
		adj, err := g.Adj(v)
		if err != nil {
			return nil, err
		}
		for _, w := range adj {
			if !p.marked[w] {
				p.marked[w] = true
				p.edgeTo[w] = v
				p.distTo[w] = p.distTo[v] + 1
				frontier.Enqueue(w)
			}
		}
	}

	return p, nil
}

// Source reports the vertex the tree is rooted at.
func (p *Paths) Source() int { return p.source }

func (p *Paths) validate(v int) error {
	if v < 0 || v >= len(p.marked) {
		return fmt.Errorf("%w: %d not in [0, %d)", graph.ErrVertexRange, v, len(p.marked))
	}

	return nil
}

// HasPathTo reports whether v is reachable from the source.
func (p *Paths) HasPathTo(v int) (bool, error) {
	if err := p.validate(v); err != nil {
		return false, err
	}

	return p.marked[v], nil
}

// DistTo reports the number of edges on the shortest path to v.
// Returns ErrUnreachable when no path exists.
func (p *Paths) DistTo(v int) (int, error) {
	if err := p.validate(v); err != nil {
		return 0, err
	}
	if !p.marked[v] {
		return 0, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	return p.distTo[v], nil
}

// PathTo reports the shortest path from the source to v, both endpoints
// included. Returns ErrUnreachable when no path exists.
func (p *Paths) PathTo(v int) ([]int, error) {
	if err := p.validate(v); err != nil {
		return nil, err
	}
	if !p.marked[v] {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	// Walk parent links back to the source, then reverse in place.
	path := make([]int, 0, p.distTo[v]+1)
	for x := v; x != p.source; x = p.edgeTo[x] {
		path = append(path, x)
	}
	path = append(path, p.source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
