package sorting

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Quick sorts with Lomuto-style partitioning around the last element,
// after a uniform shuffle that makes the O(n²) adversarial case
// vanishingly unlikely.
//
// Complexity: O(n log n) expected time, O(log n) expected stack depth.
func Quick[T cmp.Ordered](a []T) []T {
	b := slices.Clone(a)
	rand.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	quicksort(b, 0, len(b)-1)

	return b
}

// quicksort recursively places the partition element, then sorts both
// sides.
func quicksort[T cmp.Ordered](b []T, start, end int) {
	if start >= end {
		return
	}
	p := partition(b, start, end)
	quicksort(b, start, p-1)
	quicksort(b, p+1, end)
}

// partition sweeps a follower/leader pair: elements smaller than the
// pivot (b[end]) are swapped down to the follower, which ends up at the
// pivot's final position.
func partition[T cmp.Ordered](b []T, start, end int) int {
	follower := start
	for leader := start; leader < end; leader++ {
		if b[leader] < b[end] {
			b[follower], b[leader] = b[leader], b[follower]
			follower++
		}
	}
	b[follower], b[end] = b[end], b[follower]

	return follower
}
