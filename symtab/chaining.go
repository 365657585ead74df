package symtab

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// defaultBuckets is the fixed bucket count of a chaining table; a prime
// spreads hashes even when key bits correlate with small factors.
const defaultBuckets = 997

// Chaining is a separate-chaining hash symbol table: an array of
// Sequential chains, one per bucket. Expected chain length is n/M, so
// every operation runs in expected O(n/M).
type Chaining[K comparable, V any] struct {
	seed    maphash.Seed
	buckets []*Sequential[K, V] // nil until the bucket first receives a key
	n       int
}

// NewChaining returns an empty separate-chaining hash table with the
// default bucket count.
func NewChaining[K comparable, V any]() *Chaining[K, V] {
	return &Chaining[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: make([]*Sequential[K, V], defaultBuckets),
	}
}

// Len reports the number of entries in the table.
func (c *Chaining[K, V]) Len() int { return c.n }

// IsEmpty reports whether the table holds no entries.
func (c *Chaining[K, V]) IsEmpty() bool { return c.n == 0 }

// hash maps key to a bucket index under this table's seed.
func (c *Chaining[K, V]) hash(key K) int {
	return int(maphash.Comparable(c.seed, key) % uint64(len(c.buckets)))
}

// Put inserts (key, val) into its bucket's chain, or replaces an existing
// value in place.
func (c *Chaining[K, V]) Put(key K, val V) {
	h := c.hash(key)
	if c.buckets[h] == nil {
		c.buckets[h] = NewSequential[K, V]()
	}
	before := c.buckets[h].Len()
	c.buckets[h].Put(key, val)
	if c.buckets[h].Len() > before {
		c.n++
	}
}

// Get retrieves the value stored under key, or ErrKeyNotFound.
func (c *Chaining[K, V]) Get(key K) (V, error) {
	h := c.hash(key)
	if c.buckets[h] == nil {
		var zero V

		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return c.buckets[h].Get(key)
}

// Contains reports whether key is present.
func (c *Chaining[K, V]) Contains(key K) bool {
	_, err := c.Get(key)

	return err == nil
}

// Delete removes the entry for key from its chain, or returns
// ErrKeyNotFound.
func (c *Chaining[K, V]) Delete(key K) error {
	h := c.hash(key)
	if c.buckets[h] == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if err := c.buckets[h].Delete(key); err != nil {
		return err
	}
	c.n--

	return nil
}

// All yields every (key, value) pair in bucket order; the order is
// hash-dependent and not meaningful.
func (c *Chaining[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range c.buckets {
			if chain == nil {
				continue
			}
			for k, v := range chain.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
