// Package containers provides the linear collaborators of the catalogue:
// a LIFO stack, a FIFO queue and an indexed minimum priority queue.
//
// Overview:
//
//   - Stack[T]  — singly-linked, last-in-first-out; O(1) Push/Pop/Peek.
//   - Queue[T]  — singly-linked, first-in-first-out; O(1) Enqueue/Dequeue.
//   - MinPQ[K]  — binary min-heap with float64 priorities, indexed by key:
//     at most one entry per key, with O(log n) Enqueue/Dequeue/Update.
//
// MinPQ is the contract the graph algorithms consume: Prim's MST and
// Dijkstra's shortest paths enqueue a vertex once and lower its priority
// in place (eager decrease-key) instead of pushing duplicates.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyStack: Pop/Peek on an empty stack.
//   - ErrEmptyQueue: Dequeue/Peek on an empty queue or priority queue.
//   - ErrKeyExists:  MinPQ.Enqueue with a key already present.
//   - ErrKeyAbsent:  MinPQ.Update with a key not present.
//
// Thread safety: none; callers synchronize externally.
package containers
