package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/graph"
)

// tinyG is the 13-vertex sample graph used across the traversal tests.
var tinyG = [][2]int{
	{0, 5}, {4, 3}, {0, 1}, {9, 12}, {6, 4}, {5, 4}, {0, 2},
	{11, 12}, {9, 10}, {0, 6}, {7, 8}, {9, 11}, {5, 3},
}

func buildTinyGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(13)
	require.NoError(t, err)
	for _, e := range tinyG {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestGraph_Basics(t *testing.T) {
	g := buildTinyGraph(t)

	assert.Equal(t, 13, g.V())
	assert.Equal(t, 13, g.E())

	adj, err := g.Adj(0)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 2, 6}, adj)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = g.Degree(8)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestGraph_Errors(t *testing.T) {
	_, err := graph.NewGraph(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)

	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 3), graph.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(-1, 2), graph.ErrVertexRange)
	_, err = g.Adj(5)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, graph.ErrVertexRange)

	// A failed AddEdge must leave the graph untouched.
	assert.Equal(t, 0, g.E())
}

func TestDigraph_Reverse(t *testing.T) {
	g, err := graph.NewDigraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(3, 0))

	adj, err := g.Adj(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, adj)

	r := g.Reverse()
	assert.Equal(t, g.V(), r.V())
	assert.Equal(t, g.E(), r.E())
	adj, err = r.Adj(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, adj)
	adj, err = r.Adj(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, adj)
}

func TestEdge_Accessors(t *testing.T) {
	e := graph.NewEdge(3, 7, 0.25)

	assert.Equal(t, 0.25, e.Weight())
	v := e.Either()
	w, err := e.Other(v)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 7}, []int{v, w})

	_, err = e.Other(5)
	assert.ErrorIs(t, err, graph.ErrNotInEdge)

	assert.True(t, e.Less(graph.NewEdge(0, 1, 0.5)))
	assert.Equal(t, "3-7 0.25", e.String())

	de := graph.NewDirectedEdge(3, 7, 0.25)
	assert.Equal(t, 3, de.From())
	assert.Equal(t, 7, de.To())
	assert.Equal(t, "3->7 0.25", de.String())
}

func TestEdgeWeightedGraph_Edges(t *testing.T) {
	g, err := graph.NewEdgeWeightedGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(graph.NewEdge(0, 1, 0.5)))
	require.NoError(t, g.AddEdge(graph.NewEdge(1, 2, 0.3)))
	require.NoError(t, g.AddEdge(graph.NewEdge(3, 4, 0.9)))
	require.NoError(t, g.AddEdge(graph.NewEdge(2, 2, 0.1))) // self-loop

	assert.Equal(t, 5, g.V())
	assert.Equal(t, 4, g.E())

	edges := g.Edges()
	assert.Len(t, edges, 4)
	total := 0.0
	for _, e := range edges {
		total += e.Weight()
	}
	assert.InDelta(t, 1.8, total, 1e-9)

	assert.ErrorIs(t, g.AddEdge(graph.NewEdge(0, 9, 1.0)), graph.ErrVertexRange)
}

func TestEdgeWeightedDigraph_Edges(t *testing.T) {
	g, err := graph.NewEdgeWeightedDigraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(0, 1, 1.5)))
	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(1, 2, 2.5)))
	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(2, 0, 3.5)))

	assert.Equal(t, 3, g.E())
	assert.Len(t, g.Edges(), 3)

	adj, err := g.Adj(1)
	require.NoError(t, err)
	require.Len(t, adj, 1)
	assert.Equal(t, 2, adj[0].To())

	assert.ErrorIs(t, g.AddEdge(graph.NewDirectedEdge(3, 0, 1)), graph.ErrVertexRange)
}

func TestUnionFind(t *testing.T) {
	uf, err := graph.NewUnionFind(10)
	require.NoError(t, err)
	assert.Equal(t, 10, uf.Count())

	pairs := [][2]int{
		{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}, {8, 9},
		{5, 0}, {7, 2}, {6, 1}, {1, 0}, {6, 7},
	}
	for _, p := range pairs {
		require.NoError(t, uf.Union(p[0], p[1]))
	}
	assert.Equal(t, 2, uf.Count())

	for _, tc := range []struct {
		p, q int
		want bool
	}{
		{0, 1, true}, {7, 5, true}, {3, 9, true}, {2, 8, false}, {1, 9, false},
	} {
		got, err := uf.Connected(tc.p, tc.q)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "connected(%d, %d)", tc.p, tc.q)
	}

	require.NoError(t, uf.Union(7, 8))
	assert.Equal(t, 1, uf.Count())
	got, err := uf.Connected(1, 9)
	require.NoError(t, err)
	assert.True(t, got)

	_, err = uf.Find(10)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = graph.NewUnionFind(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)
}

func TestSymbolGraph(t *testing.T) {
	routes := [][2]string{
		{"JFK", "MCO"}, {"ORD", "DEN"}, {"ORD", "HOU"}, {"DFW", "PHX"},
		{"JFK", "ATL"}, {"ORD", "DFW"}, {"ORD", "PHX"}, {"ATL", "HOU"},
		{"DEN", "PHX"}, {"PHX", "LAX"}, {"JFK", "ORD"}, {"DEN", "LAS"},
		{"DFW", "HOU"}, {"ORD", "ATL"}, {"LAS", "LAX"}, {"ATL", "MCO"},
		{"HOU", "MCO"}, {"LAS", "PHX"},
	}
	g := graph.NewSymbolGraph()
	for _, r := range routes {
		g.AddEdge(r[0], r[1])
	}

	assert.Equal(t, 10, g.V())
	assert.Equal(t, 18, g.E())

	// Indexes follow first-seen order.
	for i, label := range []string{"JFK", "MCO", "ORD", "DEN"} {
		idx, err := g.IndexOf(label)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		name, err := g.NameOf(i)
		require.NoError(t, err)
		assert.Equal(t, label, name)
	}

	assert.True(t, g.Exists("LAX"))
	assert.False(t, g.Exists("SFO"))
	_, err := g.IndexOf("SFO")
	assert.ErrorIs(t, err, graph.ErrUnknownLabel)
	_, err = g.NameOf(10)
	assert.ErrorIs(t, err, graph.ErrVertexRange)

	adj, err := g.Adj("JFK")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"MCO", "ATL", "ORD"}, adj)

	assert.True(t, g.HasEdge("JFK", "ATL"))
	assert.True(t, g.HasEdge("ATL", "JFK"))
	assert.False(t, g.HasEdge("ORD", "LAX"))

	// Re-adding an existing edge changes nothing.
	g.AddEdge("JFK", "ATL")
	assert.Equal(t, 18, g.E())

	// New labels grow the graph.
	g.AddEdge("LAX", "SAN")
	assert.Equal(t, 11, g.V())
	assert.Equal(t, 19, g.E())
	idx, err := g.IndexOf("SAN")
	require.NoError(t, err)
	assert.Equal(t, 10, idx)

	// The integer projection keeps vertex and edge counts.
	ig := g.Graph()
	assert.Equal(t, g.V(), ig.V())
	assert.Equal(t, g.E(), ig.E())
}
