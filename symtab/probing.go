package symtab

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// defaultCapacity is the initial slot count of a probing table.
const defaultCapacity = 16

// Options configures a Probing table.
type Options struct {
	// Capacity is the initial number of slots; must be a positive power
	// of two so the table can halve down to it and double up from it.
	Capacity int
}

// Option is a functional option for NewProbing.
type Option func(*Options)

// WithCapacity sets the initial slot count. Panics on a non-positive
// value; invalid configuration is a programming error, not a runtime
// condition.
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic("symtab: capacity must be positive")
		}
		o.Capacity = capacity
	}
}

// Probing is a linear-probing hash symbol table: open addressing over
// parallel key/value slots. A collision walks forward (wrapping) to the
// next free slot. The table doubles at one-half load and halves at
// one-eighth, keeping every operation expected O(1).
type Probing[K comparable, V any] struct {
	seed maphash.Seed
	keys []*K // nil marks a free slot
	vals []V
	n    int
}

// NewProbing returns an empty linear-probing hash table.
func NewProbing[K comparable, V any](opts ...Option) *Probing[K, V] {
	cfg := Options{Capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Probing[K, V]{
		seed: maphash.MakeSeed(),
		keys: make([]*K, cfg.Capacity),
		vals: make([]V, cfg.Capacity),
	}
}

// Len reports the number of entries in the table.
func (p *Probing[K, V]) Len() int { return p.n }

// IsEmpty reports whether the table holds no entries.
func (p *Probing[K, V]) IsEmpty() bool { return p.n == 0 }

// hash maps key to a starting slot under this table's seed.
func (p *Probing[K, V]) hash(key K) int {
	return int(maphash.Comparable(p.seed, key) % uint64(len(p.keys)))
}

// resize rebuilds the table into cap slots, re-inserting every entry
// under the same seed.
func (p *Probing[K, V]) resize(capacity int) {
	next := &Probing[K, V]{
		seed: p.seed,
		keys: make([]*K, capacity),
		vals: make([]V, capacity),
	}
	for i, k := range p.keys {
		if k != nil {
			next.Put(*k, p.vals[i])
		}
	}
	p.keys = next.keys
	p.vals = next.vals
}

// Put inserts (key, val) at the first free slot of key's probe sequence,
// or replaces an existing value in place. Doubles the table at one-half
// load before probing.
//
// Complexity: expected O(1) under the load invariant.
func (p *Probing[K, V]) Put(key K, val V) {
	if 2*p.n >= len(p.keys) {
		p.resize(2 * len(p.keys))
	}

	i := p.hash(key)
	for ; p.keys[i] != nil; i = (i + 1) % len(p.keys) {
		if *p.keys[i] == key {
			p.vals[i] = val

			return
		}
	}

	k := key
	p.keys[i] = &k
	p.vals[i] = val
	p.n++
}

// Get retrieves the value stored under key, or ErrKeyNotFound.
func (p *Probing[K, V]) Get(key K) (V, error) {
	for i := p.hash(key); p.keys[i] != nil; i = (i + 1) % len(p.keys) {
		if *p.keys[i] == key {
			return p.vals[i], nil
		}
	}

	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is present.
func (p *Probing[K, V]) Contains(key K) bool {
	_, err := p.Get(key)

	return err == nil
}

// Delete removes the entry for key, then re-inserts the rest of its probe
// cluster so later lookups never stop early at the hole. Halves the table
// at one-eighth load.
//
// Returns ErrKeyNotFound if the key is absent.
func (p *Probing[K, V]) Delete(key K) error {
	if !p.Contains(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	// 1) Find and clear the key's slot.
	i := p.hash(key)
	for *p.keys[i] != key {
		i = (i + 1) % len(p.keys)
	}
	p.keys[i] = nil
	var zero V
	p.vals[i] = zero
	p.n--

	// 2) Re-insert everything after the hole up to the next free slot.
	for i = (i + 1) % len(p.keys); p.keys[i] != nil; i = (i + 1) % len(p.keys) {
		k, v := *p.keys[i], p.vals[i]
		p.keys[i] = nil
		p.vals[i] = zero
		p.n--
		p.Put(k, v)
	}

	// 3) Shrink once the table is mostly holes.
	if p.n > 0 && 8*p.n <= len(p.keys) {
		p.resize(len(p.keys) / 2)
	}

	return nil
}

// All yields every (key, value) pair in slot order; the order is
// hash-dependent and not meaningful.
func (p *Probing[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range p.keys {
			if k == nil {
				continue
			}
			if !yield(*k, p.vals[i]) {
				return
			}
		}
	}
}
