package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/dskit/dijkstra"
	"github.com/katalvlaran/dskit/graph"
)

// ExampleNew routes between four cities along the cheapest legs.
func ExampleNew() {
	g, _ := graph.NewEdgeWeightedDigraph(4)
	_ = g.AddEdge(graph.NewDirectedEdge(0, 1, 5.0))
	_ = g.AddEdge(graph.NewDirectedEdge(0, 2, 1.0))
	_ = g.AddEdge(graph.NewDirectedEdge(2, 1, 2.0))
	_ = g.AddEdge(graph.NewDirectedEdge(1, 3, 1.0))
	_ = g.AddEdge(graph.NewDirectedEdge(2, 3, 7.0))

	sp, _ := dijkstra.New(g, 0)

	dist, _ := sp.DistTo(3)
	fmt.Printf("distance: %.2f\n", dist)
	path, _ := sp.PathTo(3)
	for _, e := range path {
		fmt.Println(e)
	}

	// Output:
	// distance: 4.00
	// 0->2 1.00
	// 2->1 2.00
	// 1->3 1.00
}
