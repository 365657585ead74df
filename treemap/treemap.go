// Package treemap implements an ordered map as a left-leaning red-black
// binary search tree with cached subtree sizes.
//
// Every node carries one color bit on the link from its parent. The tree
// maintains three structural invariants across every insertion: no
// right-leaning red link, no two consecutive red links on a left spine,
// and the same number of black links on every path from the root to a nil
// link. Together with the BST order these bound the height by O(log n).
//
// Complexity:
//
//   - Put/Get/Delete/Rank/Select/Floor/Ceiling: O(log n)
//   - Min/Max: O(log n)
//   - Full iteration: O(n)
package treemap

import (
	"cmp"
	"fmt"
)

// Link colors. A nil link is always BLACK; the root link is forced BLACK
// after every insertion.
const (
	red   = true
	black = false
)

// node is a single key/value pair owning at most two child subtrees.
type node[K, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
	size  int  // nodes in the subtree rooted here, including this one
	red   bool // color of the link from the parent to this node
}

// Map is an ordered map over keys with a strict total order.
// A Map must be created with New or NewFunc; the zero value has no
// comparator and is not usable.
//
// Map is designed for single-threaded, synchronous use: no operation
// blocks, and concurrent mutation without external synchronization is
// undefined behavior.
type Map[K, V any] struct {
	root *node[K, V]
	cmp  func(K, K) int
}

// New returns an empty Map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty Map ordered by the three-way comparison cmp.
// cmp must define a strict total order: negative when a < b, zero when
// a == b, positive when a > b.
func NewFunc[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len reports the number of entries in the map.
func (m *Map[K, V]) Len() int { return size(m.root) }

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.root == nil }

// size reports the cached subtree size; size(nil) == 0.
func size[K, V any](h *node[K, V]) int {
	if h == nil {
		return 0
	}

	return h.size
}

// isRed reports whether the link to h is RED; nil links are BLACK.
func isRed[K, V any](h *node[K, V]) bool { return h != nil && h.red }

// rotateLeft fixes a right-leaning RED link by making h.right the new
// subtree root. h keeps BST order: everything between the two keys stays
// between them. Precondition: isRed(h.right).
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = red
	x.size = h.size
	h.size = 1 + size(h.left) + size(h.right)

	return x
}

// rotateRight fixes two consecutive RED links on the left by making
// h.left the new subtree root. Precondition: isRed(h.left).
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = red
	x.size = h.size
	h.size = 1 + size(h.left) + size(h.right)

	return x
}

// flipColors splits a temporary 4-node: h turns RED, both children turn
// BLACK. Precondition: both children are non-nil.
func flipColors[K, V any](h *node[K, V]) {
	h.red = red
	h.left.red = black
	h.right.red = black
}

// Put inserts (key, val) if key is absent, growing the map by one entry,
// or replaces the existing value, leaving the size unchanged.
//
// Complexity: O(log n).
func (m *Map[K, V]) Put(key K, val V) {
	m.root = m.put(m.root, key, val)
	// A flip at the top may have turned the root RED; the conceptual root
	// link is always BLACK, so re-assert it unconditionally.
	m.root.red = black
}

// put descends to the insertion point, attaches a new RED leaf, and
// repairs the color invariant bottom-up as the recursion unwinds.
func (m *Map[K, V]) put(h *node[K, V], key K, val V) *node[K, V] {
	// 1) A nil link is the insertion point: new RED leaf of size 1.
	if h == nil {
		return &node[K, V]{key: key, val: val, size: 1, red: red}
	}

	// 2) Descend by comparison; equal keys replace the value in place.
	switch c := m.cmp(key, h.key); {
	case c < 0:
		h.left = m.put(h.left, key, val)
	case c > 0:
		h.right = m.put(h.right, key, val)
	default:
		h.val = val
	}

	// 3) Repair on the way back up, in this exact order:
	//    right-leaning red link, two reds on the left, temporary 4-node.
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}

	// 4) Size is recomputed last, after any rotation settled the children.
	h.size = 1 + size(h.left) + size(h.right)

	return h
}

// Delete removes the entry for key, shrinking the map by one entry.
// Returns ErrKeyNotFound if the key is absent; the map is unchanged then.
//
// Deletion is structural only: nodes are spliced out or replaced by their
// in-order successor and sizes recomputed, but no rotations or color
// repairs run on the deletion path. Repeated deletions can therefore
// degrade balance toward a plain BST; see the package doc.
//
// Complexity: O(height).
func (m *Map[K, V]) Delete(key K) error {
	root, err := m.delete(m.root, key)
	if err != nil {
		return err
	}
	m.root = root

	return nil
}

// delete locates key in the subtree h and removes its node: direct splice
// when a child is missing, successor promotion otherwise.
func (m *Map[K, V]) delete(h *node[K, V], key K) (*node[K, V], error) {
	if h == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	switch c := m.cmp(key, h.key); {
	case c < 0:
		left, err := m.delete(h.left, key)
		if err != nil {
			return h, err
		}
		h.left = left
	case c > 0:
		right, err := m.delete(h.right, key)
		if err != nil {
			return h, err
		}
		h.right = right
	default:
		// Splice directly when at most one child exists.
		if h.right == nil {
			return h.left, nil
		}
		if h.left == nil {
			return h.right, nil
		}
		// Two children: adopt the in-order successor's pair, then remove
		// the successor from the right subtree.
		s := minNode(h.right)
		h.key, h.val = s.key, s.val
		h.right = deleteMin(h.right)
	}

	h.size = 1 + size(h.left) + size(h.right)

	return h, nil
}

// DeleteMin removes the entry with the smallest key.
// Returns ErrEmptyTree on an empty map.
//
// Complexity: O(height).
func (m *Map[K, V]) DeleteMin() error {
	if m.root == nil {
		return ErrEmptyTree
	}
	m.root = deleteMin(m.root)

	return nil
}

// deleteMin unlinks the all-left minimum of the subtree h and recomputes
// sizes on the unwind.
func deleteMin[K, V any](h *node[K, V]) *node[K, V] {
	if h.left == nil {
		return h.right
	}
	h.left = deleteMin(h.left)
	h.size = 1 + size(h.left) + size(h.right)

	return h
}

// minNode descends all-left to the smallest node of a non-nil subtree.
func minNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.left != nil {
		h = h.left
	}

	return h
}

// maxNode descends all-right to the largest node of a non-nil subtree.
func maxNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.right != nil {
		h = h.right
	}

	return h
}
