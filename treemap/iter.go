package treemap

import "iter"

// Iteration is a pure read over the tree state at call time. The sequences
// are restartable and finite; mutating the map while a traversal is in
// flight is unsupported (materialize or finish the traversal first).

// All yields every (key, value) pair in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(m.root, yield)
	}
}

// Backward yields every (key, value) pair in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		reverse(m.root, yield)
	}
}

// Keys yields every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		inorder(m.root, func(k K, _ V) bool { return yield(k) })
	}
}

// ReverseKeys yields every key in descending order.
func (m *Map[K, V]) ReverseKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		reverse(m.root, func(k K, _ V) bool { return yield(k) })
	}
}

// Values yields every value in ascending order of its key.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		inorder(m.root, func(_ K, v V) bool { return yield(v) })
	}
}

// inorder walks left subtree, node, right subtree; it stops early and
// reports false as soon as yield does.
func inorder[K, V any](h *node[K, V], yield func(K, V) bool) bool {
	if h == nil {
		return true
	}
	if !inorder(h.left, yield) {
		return false
	}
	if !yield(h.key, h.val) {
		return false
	}

	return inorder(h.right, yield)
}

// reverse walks right subtree, node, left subtree.
func reverse[K, V any](h *node[K, V], yield func(K, V) bool) bool {
	if h == nil {
		return true
	}
	if !reverse(h.right, yield) {
		return false
	}
	if !yield(h.key, h.val) {
		return false
	}

	return reverse(h.left, yield)
}
