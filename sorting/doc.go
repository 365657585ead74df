// Package sorting implements seven classic comparison sorts as pure
// functions: the input slice is never mutated, a freshly sorted copy is
// returned.
//
// Overview:
//
//	Insertion — O(n)..O(n²) time, O(1) extra; fast on nearly-sorted input
//	Selection — O(n²) time, O(1) extra; minimal number of swaps
//	Bubble    — O(n²) time, O(1) extra; the didactic baseline
//	Shell     — between O(n log n) and O(n log² n) with halving gaps
//	Merge     — O(n log n) time, O(n) extra; stable
//	Quick     — O(n log n) expected after a random shuffle, O(log n) stack
//	Heap      — O(n log n) time, O(1) extra; not stable
//
// All functions share one signature shape:
//
//	func Merge[T cmp.Ordered](a []T) []T
//
// Elements only need the natural ordering of cmp.Ordered; for custom
// orders, sort indices or adapt keys before calling.
//
// Thread safety: the functions read their input and touch nothing else,
// so concurrent calls over distinct or shared inputs are safe.
package sorting
