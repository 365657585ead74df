package graph

import "fmt"

// UnionFind tracks connectivity among components 0..n-1 with the
// quick-find scheme: every component stores the id of the set it
// belongs to, so Find and Connected are O(1) while Union is O(n).
type UnionFind struct {
	count int
	id    []int
}

// NewUnionFind returns a union-find over n isolated components.
// Returns ErrNegativeOrder if n is negative.
func NewUnionFind(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}

	return &UnionFind{count: n, id: id}, nil
}

// Count reports the number of disjoint sets.
func (u *UnionFind) Count() int { return u.count }

func (u *UnionFind) validate(components ...int) error {
	for _, p := range components {
		if p < 0 || p >= len(u.id) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, p, len(u.id))
		}
	}

	return nil
}

// Find reports the set id of component p. O(1).
func (u *UnionFind) Find(p int) (int, error) {
	if err := u.validate(p); err != nil {
		return 0, err
	}

	return u.id[p], nil
}

// Connected reports whether p and q belong to the same set. O(1).
func (u *UnionFind) Connected(p, q int) (bool, error) {
	if err := u.validate(p, q); err != nil {
		return false, err
	}

	return u.id[p] == u.id[q], nil
}

// Union merges the sets of p and q. Every member of p's set is
// relabelled with q's id, so a single Union costs O(n).
func (u *UnionFind) Union(p, q int) error {
	if err := u.validate(p, q); err != nil {
		return err
	}
	pID, qID := u.id[p], u.id[q]
	if pID == qID {
		return nil
	}
	for i := range u.id {
		if u.id[i] == pID {
			u.id[i] = qID
		}
	}
	u.count--

	return nil
}
