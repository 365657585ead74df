package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/dijkstra"
	"github.com/katalvlaran/dskit/graph"
)

// tinyEWD is the classic 8-vertex weighted digraph.
var tinyEWD = []struct {
	from, to int
	weight   float64
}{
	{4, 5, 0.35}, {5, 4, 0.35}, {4, 7, 0.37}, {5, 7, 0.28},
	{7, 5, 0.28}, {5, 1, 0.32}, {0, 4, 0.38}, {0, 2, 0.26},
	{7, 3, 0.39}, {1, 3, 0.29}, {2, 7, 0.34}, {6, 2, 0.40},
	{3, 6, 0.52}, {6, 0, 0.58}, {6, 4, 0.93},
}

func buildTinyEWD(t *testing.T) *graph.EdgeWeightedDigraph {
	t.Helper()
	g, err := graph.NewEdgeWeightedDigraph(8)
	require.NoError(t, err)
	for _, e := range tinyEWD {
		require.NoError(t, g.AddEdge(graph.NewDirectedEdge(e.from, e.to, e.weight)))
	}

	return g
}

func TestShortestPaths_Distances(t *testing.T) {
	sp, err := dijkstra.New(buildTinyEWD(t), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Source())

	want := []float64{0, 1.05, 0.26, 0.99, 0.38, 0.73, 1.51, 0.60}
	for v, d := range want {
		got, err := sp.DistTo(v)
		require.NoError(t, err)
		assert.InDelta(t, d, got, 1e-9, "vertex %d", v)
	}
}

func TestShortestPaths_Paths(t *testing.T) {
	sp, err := dijkstra.New(buildTinyEWD(t), 0)
	require.NoError(t, err)

	path, err := sp.PathTo(6)
	require.NoError(t, err)
	assert.Equal(t, []graph.DirectedEdge{
		graph.NewDirectedEdge(0, 2, 0.26),
		graph.NewDirectedEdge(2, 7, 0.34),
		graph.NewDirectedEdge(7, 3, 0.39),
		graph.NewDirectedEdge(3, 6, 0.52),
	}, path)

	// The path to the source is empty, not an error.
	path, err = sp.PathTo(0)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestShortestPaths_Unreachable(t *testing.T) {
	g, err := graph.NewEdgeWeightedDigraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(0, 1, 1.0)))

	sp, err := dijkstra.New(g, 0)
	require.NoError(t, err)

	ok, err := sp.HasPathTo(2)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = sp.DistTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = sp.PathTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPaths_Errors(t *testing.T) {
	_, err := dijkstra.New(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g, err := graph.NewEdgeWeightedDigraph(3)
	require.NoError(t, err)
	_, err = dijkstra.New(g, 3)
	assert.ErrorIs(t, err, graph.ErrVertexRange)

	require.NoError(t, g.AddEdge(graph.NewDirectedEdge(0, 1, -0.5)))
	_, err = dijkstra.New(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
