// Package bst implements a plain (unbalanced) binary search tree symbol
// table with cached subtree sizes.
//
// Tree has the same public contract as treemap.Map — insertion, deletion,
// lookup, order statistics and ordered iteration — but performs no
// rebalancing at all: ordered insertion degrades the height to O(n).
// It exists as the simple baseline the balanced tree is measured against.
package bst

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors returned by Tree operations.
var (
	// ErrKeyNotFound indicates a lookup, delete or rank on an absent key.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyTree indicates Min, Max or DeleteMin on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrIndexOutOfRange indicates Select with a rank outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bst: rank index out of range")

	// ErrNoSuchBound indicates Floor or Ceiling with no qualifying key.
	ErrNoSuchBound = errors.New("bst: no qualifying key for bound")
)

// node is a single key/value pair owning at most two child subtrees.
type node[K, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
	size  int // nodes in the subtree rooted here, including this one
}

// Tree is an unbalanced BST symbol table. Create with New or NewFunc.
// Single-threaded by design; see the treemap package doc for the shared
// concurrency contract.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  func(K, K) int
}

// New returns an empty Tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty Tree ordered by the three-way comparison cmp.
func NewFunc[K, V any](cmp func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// Len reports the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return size(t.root) }

// IsEmpty reports whether the tree contains no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.root == nil }

func size[K, V any](h *node[K, V]) int {
	if h == nil {
		return 0
	}

	return h.size
}

// Put inserts (key, val) or replaces the value under an existing key.
//
// Complexity: O(height), O(n) worst case under ordered insertion.
func (t *Tree[K, V]) Put(key K, val V) {
	t.root = t.put(t.root, key, val)
}

func (t *Tree[K, V]) put(h *node[K, V], key K, val V) *node[K, V] {
	if h == nil {
		return &node[K, V]{key: key, val: val, size: 1}
	}

	switch c := t.cmp(key, h.key); {
	case c < 0:
		h.left = t.put(h.left, key, val)
	case c > 0:
		h.right = t.put(h.right, key, val)
	default:
		h.val = val
	}
	h.size = 1 + size(h.left) + size(h.right)

	return h
}

// Get retrieves the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (t *Tree[K, V]) Get(key K) (V, error) {
	x := t.root
	for x != nil {
		switch c := t.cmp(key, x.key); {
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

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, err := t.Get(key)

	return err == nil
}

// Delete removes the entry for key via direct splice or successor
// promotion. Returns ErrKeyNotFound if the key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	root, err := t.delete(t.root, key)
	if err != nil {
		return err
	}
	t.root = root

	return nil
}

func (t *Tree[K, V]) delete(h *node[K, V], key K) (*node[K, V], error) {
	if h == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	switch c := t.cmp(key, h.key); {
	case c < 0:
		left, err := t.delete(h.left, key)
		if err != nil {
			return h, err
		}
		h.left = left
	case c > 0:
		right, err := t.delete(h.right, key)
		if err != nil {
			return h, err
		}
		h.right = right
	default:
		if h.right == nil {
			return h.left, nil
		}
		if h.left == nil {
			return h.right, nil
		}
		s := minNode(h.right)
		h.key, h.val = s.key, s.val
		h.right = deleteMin(h.right)
	}
	h.size = 1 + size(h.left) + size(h.right)

	return h, nil
}

// DeleteMin removes the entry with the smallest key.
// Returns ErrEmptyTree on an empty tree.
func (t *Tree[K, V]) DeleteMin() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	t.root = deleteMin(t.root)

	return nil
}

func deleteMin[K, V any](h *node[K, V]) *node[K, V] {
	if h.left == nil {
		return h.right
	}
	h.left = deleteMin(h.left)
	h.size = 1 + size(h.left) + size(h.right)

	return h
}

func minNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.left != nil {
		h = h.left
	}

	return h
}

func maxNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.right != nil {
		h = h.right
	}

	return h
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return minNode(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return maxNode(t.root).key, nil
}

// Select returns the key of rank k (0-indexed), or ErrIndexOutOfRange.
func (t *Tree[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= t.Len() {
		var zero K

		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, k)
	}

	h := t.root
	for {
		switch s := size(h.left); {
		case s > k:
			h = h.left
		case s < k:
			h = h.right
			k -= s + 1
		default:
			return h.key, nil
		}
	}
}

// Rank returns the 0-indexed position of key, or ErrKeyNotFound.
func (t *Tree[K, V]) Rank(key K) (int, error) {
	r, ok := t.rank(key, t.root)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return r, nil
}

func (t *Tree[K, V]) rank(key K, h *node[K, V]) (int, bool) {
	if h == nil {
		return 0, false
	}

	switch c := t.cmp(key, h.key); {
	case c < 0:
		return t.rank(key, h.left)
	case c > 0:
		r, ok := t.rank(key, h.right)

		return 1 + size(h.left) + r, ok
	default:
		return size(h.left), true
	}
}

// Floor returns the greatest stored key not greater than key, or
// ErrNoSuchBound.
func (t *Tree[K, V]) Floor(key K) (K, error) {
	h := t.floor(key, t.root)
	if h == nil {
		var zero K

		return zero, fmt.Errorf("%w: floor of %v", ErrNoSuchBound, key)
	}

	return h.key, nil
}

func (t *Tree[K, V]) floor(key K, h *node[K, V]) *node[K, V] {
	if h == nil {
		return nil
	}

	c := t.cmp(key, h.key)
	if c == 0 {
		return h
	}
	if c < 0 {
		return t.floor(key, h.left)
	}
	if x := t.floor(key, h.right); x != nil {
		return x
	}

	return h
}

// Ceiling returns the least stored key not less than key, or
// ErrNoSuchBound.
func (t *Tree[K, V]) Ceiling(key K) (K, error) {
	h := t.ceiling(key, t.root)
	if h == nil {
		var zero K

		return zero, fmt.Errorf("%w: ceiling of %v", ErrNoSuchBound, key)
	}

	return h.key, nil
}

func (t *Tree[K, V]) ceiling(key K, h *node[K, V]) *node[K, V] {
	if h == nil {
		return nil
	}

	c := t.cmp(key, h.key)
	if c == 0 {
		return h
	}
	if c > 0 {
		return t.ceiling(key, h.right)
	}
	if x := t.ceiling(key, h.left); x != nil {
		return x
	}

	return h
}

// Keys yields every key in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		inorder(t.root, func(k K, _ V) bool { return yield(k) })
	}
}

// All yields every (key, value) pair in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

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
