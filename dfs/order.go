package dfs

// Order records the preorder, postorder and reverse postorder of a
// depth-first forest covering every vertex, roots taken in increasing
// vertex order.
type Order struct {
	marked      []bool
	pre         []int
	post        []int
	reversePost []int
}

// NewOrder runs depth-first search from every unvisited vertex. O(V + E).
func NewOrder(g Graph) (*Order, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	n := g.V()
	o := &Order{
		marked: make([]bool, n),
		pre:    make([]int, 0, n),
		post:   make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if !o.marked[v] {
			if err := o.dfs(g, v); err != nil {
				return nil, err
			}
		}
	}
	o.reversePost = make([]int, n)
	for i, v := range o.post {
		o.reversePost[n-1-i] = v
	}

	return o, nil
}

func (o *Order) dfs(g Graph, v int) error {
	o.pre = append(o.pre, v)
	o.marked[v] = true
	adj, err := g.Adj(v)
	if err != nil {
		return err
	}
	for _, w := range adj {
		if !o.marked[w] {
			if err = o.dfs(g, w); err != nil {
				return err
			}
		}
	}
	o.post = append(o.post, v)

	return nil
}

// Pre returns vertices in the order they were first visited.
func (o *Order) Pre() []int { return o.pre }

// Post returns vertices in the order their subtrees completed.
func (o *Order) Post() []int { return o.post }

// ReversePost returns the postorder reversed. For a DAG this is a
// topological order.
func (o *Order) ReversePost() []int { return o.reversePost }
