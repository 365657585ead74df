package containers

import "iter"

// snode is one element of a singly-linked stack or queue.
type snode[T any] struct {
	val  T
	next *snode[T]
}

// Stack is a LIFO container backed by a singly linked list.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	head *snode[T]
	n    int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Len reports the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.n }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.n == 0 }

// Push places val on top of the stack. O(1).
func (s *Stack[T]) Push(val T) {
	s.head = &snode[T]{val: val, next: s.head}
	s.n++
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack on an empty stack. O(1).
func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T

		return zero, ErrEmptyStack
	}

	top := s.head
	s.head = top.next
	top.next = nil
	s.n--

	return top.val, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack on an empty stack.
func (s *Stack[T]) Peek() (T, error) {
	if s.head == nil {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.head.val, nil
}

// All yields the elements top-to-bottom without consuming them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := s.head; x != nil; x = x.next {
			if !yield(x.val) {
				return
			}
		}
	}
}
