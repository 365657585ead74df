package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dskit/sorting"
)

func randomInput(n int) []int {
	rng := rand.New(rand.NewSource(1))
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Int()
	}

	return a
}

func BenchmarkMerge(b *testing.B) {
	a := randomInput(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Merge(a)
	}
}

func BenchmarkQuick(b *testing.B) {
	a := randomInput(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Quick(a)
	}
}

func BenchmarkHeap(b *testing.B) {
	a := randomInput(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Heap(a)
	}
}

func BenchmarkShell(b *testing.B) {
	a := randomInput(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Shell(a)
	}
}
