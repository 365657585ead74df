package sorting

import (
	"cmp"
	"slices"
)

// Insertion sorts by growing a sorted prefix, shifting larger elements
// right to open the slot for each new element.
//
// Complexity: O(n) on sorted input, O(n²) worst case; O(1) extra space.
func Insertion[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	for i := 1; i < len(b); i++ {
		tmp := b[i]
		j := i - 1
		for j >= 0 && b[j] > tmp {
			b[j+1] = b[j]
			j--
		}
		b[j+1] = tmp
	}

	return b
}

// Selection sorts by repeatedly swapping the minimum of the unsorted
// suffix into place.
//
// Complexity: O(n²) comparisons, exactly n-1 swaps; O(1) extra space.
func Selection[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	n := len(b)
	for i := 0; i < n; i++ {
		lo := i
		for j := i + 1; j < n; j++ {
			if b[j] < b[lo] {
				lo = j
			}
		}
		b[i], b[lo] = b[lo], b[i]
	}

	return b
}

// Bubble sorts by sweeping adjacent out-of-order pairs to the end until
// no pair remains.
//
// Complexity: O(n²); O(1) extra space.
func Bubble[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	n := len(b)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if b[j] > b[j+1] {
				b[j], b[j+1] = b[j+1], b[j]
			}
		}
	}

	return b
}

// Shell sorts with a halving gap sequence: insertion sort over strided
// sublists, finishing with a plain gap-1 pass.
//
// Complexity: between O(n log n) and O(n log² n) for this gap sequence.
func Shell[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	n := len(b)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			tmp := b[i]
			j := i
			for j >= gap && b[j-gap] > tmp {
				b[j] = b[j-gap]
				j -= gap
			}
			b[j] = tmp
		}
	}

	return b
}
