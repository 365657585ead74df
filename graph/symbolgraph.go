package graph

import "fmt"

// SymbolGraph is an undirected graph whose vertices carry string labels.
// Unlike the integer-indexed types, it grows on demand: a label seen for
// the first time is assigned the next free index. Duplicate edges are
// ignored, so E counts distinct label pairs.
type SymbolGraph struct {
	e    int
	st   map[string]int // label -> index
	keys []string       // index -> label
	adj  [][]int
}

// NewSymbolGraph returns an empty symbol graph.
func NewSymbolGraph() *SymbolGraph {
	return &SymbolGraph{st: make(map[string]int)}
}

// V reports the number of labelled vertices.
func (g *SymbolGraph) V() int { return len(g.keys) }

// E reports the number of distinct edges.
func (g *SymbolGraph) E() int { return g.e }

// Exists reports whether the label has been seen.
func (g *SymbolGraph) Exists(s string) bool {
	_, ok := g.st[s]

	return ok
}

// IndexOf reports the index assigned to the label, in first-seen order.
// Returns ErrUnknownLabel for a label never added.
func (g *SymbolGraph) IndexOf(s string) (int, error) {
	i, ok := g.st[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}

	return i, nil
}

// NameOf reports the label at the given index.
func (g *SymbolGraph) NameOf(v int) (string, error) {
	if v < 0 || v >= len(g.keys) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(g.keys))
	}

	return g.keys[v], nil
}

// indexOrAdd returns the index for the label, assigning one if new.
func (g *SymbolGraph) indexOrAdd(s string) int {
	if i, ok := g.st[s]; ok {
		return i
	}
	i := len(g.keys)
	g.st[s] = i
	g.keys = append(g.keys, s)
	g.adj = append(g.adj, nil)

	return i
}

// AddEdge connects v and w, creating either vertex if its label is new.
// Adding an edge that already exists is a no-op.
func (g *SymbolGraph) AddEdge(v, w string) {
	vi := g.indexOrAdd(v)
	wi := g.indexOrAdd(w)
	for _, x := range g.adj[vi] {
		if x == wi {
			return
		}
	}
	g.adj[vi] = append(g.adj[vi], wi)
	g.adj[wi] = append(g.adj[wi], vi)
	g.e++
}

// HasEdge reports whether the edge v-w exists.
func (g *SymbolGraph) HasEdge(v, w string) bool {
	vi, ok := g.st[v]
	if !ok {
		return false
	}
	wi, ok := g.st[w]
	if !ok {
		return false
	}
	for _, x := range g.adj[vi] {
		if x == wi {
			return true
		}
	}

	return false
}

// Adj returns the labels adjacent to v in insertion order.
func (g *SymbolGraph) Adj(v string) ([]string, error) {
	vi, ok := g.st[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, v)
	}
	names := make([]string, len(g.adj[vi]))
	for i, w := range g.adj[vi] {
		names[i] = g.keys[w]
	}

	return names, nil
}

// Graph materializes the integer view of the symbol graph, suitable for
// the traversal packages. Use IndexOf and NameOf to translate between
// labels and the vertices of the returned graph.
func (g *SymbolGraph) Graph() *Graph {
	ig, _ := NewGraph(len(g.keys)) // order is never negative here
	for v, neighbors := range g.adj {
		for _, w := range neighbors {
			if w >= v {
				_ = ig.AddEdge(v, w)
			}
		}
	}

	return ig
}
