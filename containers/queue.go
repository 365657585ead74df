package containers

import "iter"

// Queue is a FIFO container backed by a singly linked list with a tail
// pointer. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head *snode[T]
	tail *snode[T]
	n    int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Len reports the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.n }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.n == 0 }

// Enqueue appends val at the back of the queue. O(1).
func (q *Queue[T]) Enqueue(val T) {
	node := &snode[T]{val: val}
	if q.tail != nil {
		q.tail.next = node
	} else {
		q.head = node
	}
	q.tail = node
	q.n++
}

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue on an empty queue. O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	front := q.head
	q.head = front.next
	front.next = nil
	q.n--
	if q.head == nil {
		q.tail = nil
	}

	return front.val, nil
}

// Peek returns the front element without removing it.
// Returns ErrEmptyQueue on an empty queue.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.head.val, nil
}

// All yields the elements front-to-back without consuming them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := q.head; x != nil; x = x.next {
			if !yield(x.val) {
				return
			}
		}
	}
}
