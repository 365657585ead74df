package symtab

import (
	"fmt"
	"iter"
)

// lnode is one element of a sequential-search chain.
type lnode[K comparable, V any] struct {
	key  K
	val  V
	next *lnode[K, V]
}

// Sequential is an unordered symbol table over a singly linked list.
// Search walks the list front to back, most recently inserted first.
// The zero value is an empty table ready to use.
type Sequential[K comparable, V any] struct {
	head *lnode[K, V]
	n    int
}

// NewSequential returns an empty sequential-search symbol table.
func NewSequential[K comparable, V any]() *Sequential[K, V] {
	return &Sequential[K, V]{}
}

// Len reports the number of entries in the table.
func (s *Sequential[K, V]) Len() int { return s.n }

// IsEmpty reports whether the table holds no entries.
func (s *Sequential[K, V]) IsEmpty() bool { return s.n == 0 }

// Put inserts (key, val) at the head, or replaces an existing value in
// place. O(n).
func (s *Sequential[K, V]) Put(key K, val V) {
	for x := s.head; x != nil; x = x.next {
		if x.key == key {
			x.val = val

			return
		}
	}
	s.head = &lnode[K, V]{key: key, val: val, next: s.head}
	s.n++
}

// Get retrieves the value stored under key, or ErrKeyNotFound. O(n).
func (s *Sequential[K, V]) Get(key K) (V, error) {
	for x := s.head; x != nil; x = x.next {
		if x.key == key {
			return x.val, nil
		}
	}

	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is present.
func (s *Sequential[K, V]) Contains(key K) bool {
	_, err := s.Get(key)

	return err == nil
}

// Delete unlinks the entry for key, or returns ErrKeyNotFound. O(n).
func (s *Sequential[K, V]) Delete(key K) error {
	var prev *lnode[K, V]
	for x := s.head; x != nil; prev, x = x, x.next {
		if x.key != key {
			continue
		}
		if prev == nil {
			s.head = x.next
		} else {
			prev.next = x.next
		}
		s.n--

		return nil
	}

	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// All yields every (key, value) pair, most recently inserted first.
func (s *Sequential[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := s.head; x != nil; x = x.next {
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// Keys yields every key, most recently inserted first.
func (s *Sequential[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for x := s.head; x != nil; x = x.next {
			if !yield(x.key) {
				return
			}
		}
	}
}
