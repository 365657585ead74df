package graph

import "fmt"

// Edge is a weighted undirected edge. Edges compare by weight, which is
// what Kruskal's edge heap and Prim's crossing-edge scan need.
type Edge struct {
	v, w   int
	weight float64
}

// NewEdge returns the undirected edge v-w with the given weight.
func NewEdge(v, w int, weight float64) Edge {
	return Edge{v: v, w: w, weight: weight}
}

// Weight reports the weight of the edge.
func (e Edge) Weight() float64 { return e.weight }

// Either returns one endpoint of the edge.
func (e Edge) Either() int { return e.v }

// Other returns the endpoint that is not vertex. Returns ErrNotInEdge
// when vertex is on neither end.
func (e Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: %d not on %v", ErrNotInEdge, vertex, e)
	}
}

// Less orders edges by weight.
func (e Edge) Less(other Edge) bool { return e.weight < other.weight }

// String renders the edge as "v-w weight" with two decimals.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d %.2f", e.v, e.w, e.weight)
}

// DirectedEdge is a weighted directed edge v->w.
type DirectedEdge struct {
	from, to int
	weight   float64
}

// NewDirectedEdge returns the directed edge from->to with the given weight.
func NewDirectedEdge(from, to int, weight float64) DirectedEdge {
	return DirectedEdge{from: from, to: to, weight: weight}
}

// From returns the tail of the edge.
func (e DirectedEdge) From() int { return e.from }

// To returns the head of the edge.
func (e DirectedEdge) To() int { return e.to }

// Weight reports the weight of the edge.
func (e DirectedEdge) Weight() float64 { return e.weight }

// String renders the edge as "v->w weight" with two decimals.
func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.from, e.to, e.weight)
}
