package containers

import "fmt"

// entry pairs a key with its current priority inside the heap slice.
type entry[K comparable] struct {
	key K
	pri float64
}

// MinPQ is an indexed binary min-heap: each key appears at most once, and
// its priority can be lowered or raised in place with Update. This is the
// collaborator contract consumed by Prim's MST and Dijkstra's shortest
// paths (enqueue / dequeue / peek / update-priority).
//
// Heap order lives in a 1-based slice (pq[0] unused, parent of k is k/2,
// as in the classic array heap); pos maps every key to its slice index so
// Update can restore order from the key's position in O(log n).
type MinPQ[K comparable] struct {
	pq  []entry[K] // 1-based heap of (key, priority)
	pos map[K]int  // key -> index in pq
}

// NewMinPQ returns an empty indexed minimum priority queue.
func NewMinPQ[K comparable]() *MinPQ[K] {
	return &MinPQ[K]{
		pq:  make([]entry[K], 1),
		pos: make(map[K]int),
	}
}

// Len reports the number of keys in the queue.
func (p *MinPQ[K]) Len() int { return len(p.pq) - 1 }

// IsEmpty reports whether the queue holds no keys.
func (p *MinPQ[K]) IsEmpty() bool { return p.Len() == 0 }

// Contains reports whether key currently has an entry.
func (p *MinPQ[K]) Contains(key K) bool {
	_, ok := p.pos[key]

	return ok
}

// Enqueue adds key with the given priority.
// Returns ErrKeyExists if the key already has an entry: a MinPQ holds at
// most one entry per key; use Update to change its priority.
//
// Complexity: O(log n).
func (p *MinPQ[K]) Enqueue(key K, pri float64) error {
	if p.Contains(key) {
		return fmt.Errorf("%w: %v", ErrKeyExists, key)
	}

	p.pq = append(p.pq, entry[K]{key: key, pri: pri})
	p.pos[key] = p.Len()
	p.swim(p.Len())

	return nil
}

// Dequeue removes and returns the key with the smallest priority.
// Returns ErrEmptyQueue on an empty queue.
//
// Complexity: O(log n).
func (p *MinPQ[K]) Dequeue() (K, error) {
	if p.IsEmpty() {
		var zero K

		return zero, ErrEmptyQueue
	}

	top := p.pq[1].key
	n := p.Len()
	p.swap(1, n)
	p.pq = p.pq[:n]
	delete(p.pos, top)
	if !p.IsEmpty() {
		p.sink(1)
	}

	return top, nil
}

// Peek returns the key with the smallest priority without removing it.
// Returns ErrEmptyQueue on an empty queue.
func (p *MinPQ[K]) Peek() (K, error) {
	if p.IsEmpty() {
		var zero K

		return zero, ErrEmptyQueue
	}

	return p.pq[1].key, nil
}

// Update changes the priority of an existing key and restores heap order
// from its position.
// Returns ErrKeyAbsent if the key has no entry.
//
// Complexity: O(log n).
func (p *MinPQ[K]) Update(key K, pri float64) error {
	i, ok := p.pos[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyAbsent, key)
	}

	old := p.pq[i].pri
	p.pq[i].pri = pri
	if pri < old {
		p.swim(i)
	} else {
		p.sink(i)
	}

	return nil
}

// swim restores heap order bottom-up from index k.
func (p *MinPQ[K]) swim(k int) {
	for k > 1 && p.pq[k/2].pri > p.pq[k].pri {
		p.swap(k/2, k)
		k /= 2
	}
}

// sink restores heap order top-down from index k.
func (p *MinPQ[K]) sink(k int) {
	n := p.Len()
	for 2*k <= n {
		j := 2 * k
		if j < n && p.pq[j].pri > p.pq[j+1].pri {
			j++
		}
		if p.pq[k].pri <= p.pq[j].pri {
			break
		}
		p.swap(k, j)
		k = j
	}
}

// swap exchanges two heap slots and keeps the position index in sync.
func (p *MinPQ[K]) swap(i, j int) {
	p.pq[i], p.pq[j] = p.pq[j], p.pq[i]
	p.pos[p.pq[i].key] = i
	p.pos[p.pq[j].key] = j
}
