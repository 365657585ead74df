package sorting

import (
	"cmp"
	"slices"
)

// Merge sorts by recursive halving and two-way merging. Stable: equal
// elements keep their input order.
//
// Complexity: O(n log n) time, O(n) extra space.
func Merge[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	if len(b) <= 1 {
		return b
	}
	// One scratch buffer serves every merge; the recursion itself
	// allocates nothing.
	mergeSort(b, make([]T, len(b)))

	return b
}

// mergeSort sorts a in place, using the equally sized aux as scratch.
func mergeSort[T cmp.Ordered](a, aux []T) {
	if len(a) <= 1 {
		return
	}

	mid := len(a) / 2
	mergeSort(a[:mid], aux[:mid])
	mergeSort(a[mid:], aux[mid:])
	copy(aux, a)
	merge(aux[:mid], aux[mid:], a)
}

// merge interleaves two sorted halves back into dst, smaller-first,
// taking from left on ties to preserve stability.
func merge[T cmp.Ordered](left, right, dst []T) []T {
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if left[l] <= right[r] {
			dst[l+r] = left[l]
			l++
		} else {
			dst[l+r] = right[r]
			r++
		}
	}
	for ; l < len(left); l++ {
		dst[l+r] = left[l]
	}
	for ; r < len(right); r++ {
		dst[l+r] = right[r]
	}

	return dst
}
