package treemap

import "fmt"

// Get retrieves the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
//
// Complexity: O(log n).
func (m *Map[K, V]) Get(key K) (V, error) {
	x := m.root
	for x != nil {
		switch c := m.cmp(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x.val, nil
		}
	}

	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is present. It never returns an error.
func (m *Map[K, V]) Contains(key K) bool {
	_, err := m.Get(key)

	return err == nil
}

// Min returns the smallest key.
// Returns ErrEmptyTree on an empty map.
func (m *Map[K, V]) Min() (K, error) {
	if m.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return minNode(m.root).key, nil
}

// Max returns the largest key.
// Returns ErrEmptyTree on an empty map.
func (m *Map[K, V]) Max() (K, error) {
	if m.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return maxNode(m.root).key, nil
}

// Select returns the key of rank k (0-indexed): the key with exactly k
// stored keys smaller than it.
// Returns ErrIndexOutOfRange if k is outside [0, Len()).
//
// Complexity: O(log n), driven entirely by cached subtree sizes.
func (m *Map[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= m.Len() {
		var zero K

		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, k)
	}

	h := m.root
	for {
		// t keys precede h within this subtree.
		t := size(h.left)
		switch {
		case t > k:
			h = h.left
		case t < k:
			h = h.right
			k -= t + 1
		default:
			return h.key, nil
		}
	}
}

// Rank returns the 0-indexed position of key in ascending order.
// Returns ErrKeyNotFound if the key is absent.
//
// Complexity: O(log n).
func (m *Map[K, V]) Rank(key K) (int, error) {
	r, ok := m.rank(key, m.root)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return r, nil
}

// rank counts the keys smaller than key; ok is false if key is absent.
func (m *Map[K, V]) rank(key K, h *node[K, V]) (int, bool) {
	if h == nil {
		return 0, false
	}

	switch c := m.cmp(key, h.key); {
	case c < 0:
		return m.rank(key, h.left)
	case c > 0:
		r, ok := m.rank(key, h.right)

		return 1 + size(h.left) + r, ok
	default:
		return size(h.left), true
	}
}

// Floor returns the greatest stored key not greater than key.
// Returns ErrNoSuchBound if every stored key is greater than key.
//
// Complexity: O(log n).
func (m *Map[K, V]) Floor(key K) (K, error) {
	h := m.floor(key, m.root)
	if h == nil {
		var zero K

		return zero, fmt.Errorf("%w: floor of %v", ErrNoSuchBound, key)
	}

	return h.key, nil
}

// floor finds the floor node of key in the subtree h, or nil.
func (m *Map[K, V]) floor(key K, h *node[K, V]) *node[K, V] {
	if h == nil {
		return nil
	}

	c := m.cmp(key, h.key)
	if c == 0 {
		return h
	}
	if c < 0 {
		return m.floor(key, h.left)
	}
	// h qualifies; a tighter bound may still hide in the right subtree.
	if t := m.floor(key, h.right); t != nil {
		return t
	}

	return h
}

// Ceiling returns the least stored key not less than key.
// Returns ErrNoSuchBound if every stored key is less than key.
//
// Complexity: O(log n).
func (m *Map[K, V]) Ceiling(key K) (K, error) {
	h := m.ceiling(key, m.root)
	if h == nil {
		var zero K

		return zero, fmt.Errorf("%w: ceiling of %v", ErrNoSuchBound, key)
	}

	return h.key, nil
}

// ceiling finds the ceiling node of key in the subtree h, or nil.
func (m *Map[K, V]) ceiling(key K, h *node[K, V]) *node[K, V] {
	if h == nil {
		return nil
	}

	c := m.cmp(key, h.key)
	if c == 0 {
		return h
	}
	if c > 0 {
		return m.ceiling(key, h.right)
	}
	if t := m.ceiling(key, h.left); t != nil {
		return t
	}

	return h
}
