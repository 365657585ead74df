package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/graph"
	"github.com/katalvlaran/dskit/mst"
)

// tinyEWG is the classic 8-vertex weighted graph with MST weight 1.81.
var tinyEWG = []struct {
	v, w   int
	weight float64
}{
	{4, 5, 0.35}, {4, 7, 0.37}, {5, 7, 0.28}, {0, 7, 0.16},
	{1, 5, 0.32}, {0, 4, 0.38}, {2, 3, 0.17}, {1, 7, 0.19},
	{0, 2, 0.26}, {1, 2, 0.36}, {1, 3, 0.29}, {2, 7, 0.34},
	{6, 2, 0.40}, {3, 6, 0.52}, {6, 0, 0.58}, {6, 4, 0.93},
}

func buildTinyEWG(t *testing.T) *graph.EdgeWeightedGraph {
	t.Helper()
	g, err := graph.NewEdgeWeightedGraph(8)
	require.NoError(t, err)
	for _, e := range tinyEWG {
		require.NoError(t, g.AddEdge(graph.NewEdge(e.v, e.w, e.weight)))
	}

	return g
}

func TestPrim(t *testing.T) {
	p, err := mst.NewPrim(buildTinyEWG(t))
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{
		graph.NewEdge(0, 7, 0.16),
		graph.NewEdge(1, 7, 0.19),
		graph.NewEdge(0, 2, 0.26),
		graph.NewEdge(2, 3, 0.17),
		graph.NewEdge(5, 7, 0.28),
		graph.NewEdge(4, 5, 0.35),
		graph.NewEdge(6, 2, 0.40),
	}, p.Edges())
	assert.InDelta(t, 1.81, p.Weight(), 1e-9)
}

func TestKruskal(t *testing.T) {
	k, err := mst.NewKruskal(buildTinyEWG(t))
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{
		graph.NewEdge(0, 7, 0.16),
		graph.NewEdge(2, 3, 0.17),
		graph.NewEdge(1, 7, 0.19),
		graph.NewEdge(0, 2, 0.26),
		graph.NewEdge(5, 7, 0.28),
		graph.NewEdge(4, 5, 0.35),
		graph.NewEdge(6, 2, 0.40),
	}, k.Edges())
	assert.InDelta(t, 1.81, k.Weight(), 1e-9)
}

// TestForest checks both algorithms span a disconnected graph.
func TestForest(t *testing.T) {
	g, err := graph.NewEdgeWeightedGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(graph.NewEdge(0, 1, 1.0)))
	require.NoError(t, g.AddEdge(graph.NewEdge(1, 2, 2.0)))
	require.NoError(t, g.AddEdge(graph.NewEdge(0, 2, 3.0)))
	require.NoError(t, g.AddEdge(graph.NewEdge(3, 4, 0.5)))

	p, err := mst.NewPrim(g)
	require.NoError(t, err)
	assert.Len(t, p.Edges(), 3)
	assert.InDelta(t, 3.5, p.Weight(), 1e-9)

	k, err := mst.NewKruskal(g)
	require.NoError(t, err)
	assert.Len(t, k.Edges(), 3)
	assert.InDelta(t, 3.5, k.Weight(), 1e-9)
}

func TestErrors(t *testing.T) {
	_, err := mst.NewPrim(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, err = mst.NewKruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	empty, err := graph.NewEdgeWeightedGraph(0)
	require.NoError(t, err)
	_, err = mst.NewPrim(empty)
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)
	_, err = mst.NewKruskal(empty)
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)
}
