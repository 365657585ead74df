package symtab

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// BinarySearch is an ordered symbol table over two parallel slices: keys
// kept sorted, values at matching indices. Search is logarithmic; insert
// and delete pay an O(n) slice shift.
// The zero value is an empty table ready to use.
type BinarySearch[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

// NewBinarySearch returns an empty binary-search symbol table.
func NewBinarySearch[K cmp.Ordered, V any]() *BinarySearch[K, V] {
	return &BinarySearch[K, V]{}
}

// Len reports the number of entries in the table.
func (b *BinarySearch[K, V]) Len() int { return len(b.keys) }

// IsEmpty reports whether the table holds no entries.
func (b *BinarySearch[K, V]) IsEmpty() bool { return len(b.keys) == 0 }

// Rank returns the number of stored keys smaller than key — the index of
// key if present, or its insertion point if absent. Never errors.
//
// Complexity: O(log n).
func (b *BinarySearch[K, V]) Rank(key K) int {
	lo, hi := 0, len(b.keys)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case key < b.keys[mid]:
			hi = mid - 1
		case key > b.keys[mid]:
			lo = mid + 1
		default:
			return mid
		}
	}

	return lo
}

// Put inserts (key, val) at its rank, shifting the tail right, or
// replaces an existing value in place.
//
// Complexity: O(log n) search + O(n) shift on insert.
func (b *BinarySearch[K, V]) Put(key K, val V) {
	i := b.Rank(key)
	if i < len(b.keys) && b.keys[i] == key {
		b.vals[i] = val

		return
	}
	b.keys = slices.Insert(b.keys, i, key)
	b.vals = slices.Insert(b.vals, i, val)
}

// Get retrieves the value stored under key, or ErrKeyNotFound.
func (b *BinarySearch[K, V]) Get(key K) (V, error) {
	i := b.Rank(key)
	if i < len(b.keys) && b.keys[i] == key {
		return b.vals[i], nil
	}

	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is present.
func (b *BinarySearch[K, V]) Contains(key K) bool {
	i := b.Rank(key)

	return i < len(b.keys) && b.keys[i] == key
}

// Delete removes the entry for key, shifting the tail left, or returns
// ErrKeyNotFound.
func (b *BinarySearch[K, V]) Delete(key K) error {
	i := b.Rank(key)
	if i >= len(b.keys) || b.keys[i] != key {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	b.keys = slices.Delete(b.keys, i, i+1)
	b.vals = slices.Delete(b.vals, i, i+1)

	return nil
}

// Min returns the smallest key, or ErrEmptyTable.
func (b *BinarySearch[K, V]) Min() (K, error) {
	if b.IsEmpty() {
		var zero K

		return zero, ErrEmptyTable
	}

	return b.keys[0], nil
}

// Max returns the largest key, or ErrEmptyTable.
func (b *BinarySearch[K, V]) Max() (K, error) {
	if b.IsEmpty() {
		var zero K

		return zero, ErrEmptyTable
	}

	return b.keys[len(b.keys)-1], nil
}

// Select returns the key of rank k, or ErrIndexOutOfRange.
func (b *BinarySearch[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= len(b.keys) {
		var zero K

		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, k)
	}

	return b.keys[k], nil
}

// Floor returns the greatest stored key not greater than key, or
// ErrNoSuchBound.
func (b *BinarySearch[K, V]) Floor(key K) (K, error) {
	i := b.Rank(key)
	if i < len(b.keys) && b.keys[i] == key {
		return key, nil
	}
	if i == 0 {
		var zero K

		return zero, fmt.Errorf("%w: floor of %v", ErrNoSuchBound, key)
	}

	return b.keys[i-1], nil
}

// Ceiling returns the least stored key not less than key, or
// ErrNoSuchBound.
func (b *BinarySearch[K, V]) Ceiling(key K) (K, error) {
	i := b.Rank(key)
	if i >= len(b.keys) {
		var zero K

		return zero, fmt.Errorf("%w: ceiling of %v", ErrNoSuchBound, key)
	}

	return b.keys[i], nil
}

// Keys yields every key in ascending order.
func (b *BinarySearch[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range b.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All yields every (key, value) pair in ascending key order.
func (b *BinarySearch[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range b.keys {
			if !yield(k, b.vals[i]) {
				return
			}
		}
	}
}
