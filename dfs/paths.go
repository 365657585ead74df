package dfs

import (
	"fmt"

	"github.com/katalvlaran/dskit/graph"
)

// Graph is the adjacency view the searches need. Both graph.Graph and
// graph.Digraph satisfy it.
type Graph interface {
	V() int
	Adj(v int) ([]int, error)
}

// Paths holds the depth-first tree rooted at a source vertex. Unlike
// the breadth-first variant, reported paths are not shortest; they
// follow the order edges were explored.
type Paths struct {
	source int
	marked []bool
	edgeTo []int
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

// NewPaths runs depth-first search on g from source. O(V + E).
func NewPaths(g Graph, source int) (*Paths, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	n := g.V()
	p := &Paths{source: source, marked: make([]bool, n), edgeTo: make([]int, n)}
	if err := validate(source, n); err != nil {
		return nil, err
	}
	if err := p.dfs(g, source); err != nil {
		return nil, err
	}

	return p, nil
}

func validate(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", graph.ErrVertexRange, v, n)
	}

	return nil
}

func (p *Paths) dfs(g Graph, v int) error {
	p.marked[v] = true
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		if !p.marked[w] {
			p.edgeTo[w] = v
			if err = p.dfs(g, w); err != nil {
				return err
			}
		}
	}

	return nil
}

// Source reports the vertex the tree is rooted at.
func (p *Paths) Source() int { return p.source }

// HasPathTo reports whether v is reachable from the source.
func (p *Paths) HasPathTo(v int) (bool, error) {
	if err := validate(v, len(p.marked)); err != nil {
		return false, err
	}

	return p.marked[v], nil
}

// PathTo reports a path from the source to v, both endpoints included.
// Returns ErrUnreachable when no path exists.
func (p *Paths) PathTo(v int) ([]int, error) {
	if err := validate(v, len(p.marked)); err != nil {
		return nil, err
	}
	if !p.marked[v] {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	var path []int
	for x := v; x != p.source; x = p.edgeTo[x] {
		path = append(path, x)
	}
	path = append(path, p.source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
