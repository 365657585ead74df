package sorting

import (
	"cmp"
	"slices"
)

// Heap sorts by building an in-place max-heap, then repeatedly swapping
// the root behind the shrinking heap boundary.
//
// Complexity: O(n log n) time, O(1) extra space; not stable.
func Heap[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	n := len(b)

	// 1) Bottom-up heap construction.
	for i := n/2 - 1; i >= 0; i-- {
		heapify(b, n, i)
	}

	// 2) Extract the max n-1 times.
	for i := n - 1; i > 0; i-- {
		b[0], b[i] = b[i], b[0]
		heapify(b, i, 0)
	}

	return b
}

// heapify sinks element i within the first n elements until both children
// are no larger.
func heapify[T cmp.Ordered](heap []T, n, i int) {
	top := i
	l, r := 2*i+1, 2*i+2
	if l < n && heap[top] < heap[l] {
		top = l
	}
	if r < n && heap[top] < heap[r] {
		top = r
	}
	if top != i {
		heap[i], heap[top] = heap[top], heap[i]
		heapify(heap, n, top)
	}
}
