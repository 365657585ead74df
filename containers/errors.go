package containers

import "errors"

var (
	// ErrEmptyStack indicates Pop or Peek on an empty stack.
	ErrEmptyStack = errors.New("containers: stack is empty")
	// ErrEmptyQueue indicates Dequeue or Peek on an empty (priority) queue.
	ErrEmptyQueue = errors.New("containers: queue is empty")
	// ErrKeyExists indicates MinPQ.Enqueue with a key already present.
	ErrKeyExists = errors.New("containers: key already in priority queue")
	// ErrKeyAbsent indicates MinPQ.Update with a key not present.
	ErrKeyAbsent = errors.New("containers: key not in priority queue")
)
