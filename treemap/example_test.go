// Package treemap_test provides runnable examples for the ordered map.
// Each example runs via “go test -run Example”, showing code and output.
package treemap_test

import (
	"fmt"

	"github.com/katalvlaran/dskit/treemap"
)

// ExampleMap demonstrates the basic put/get/order-statistics round trip
// on the six-letter scenario.
func ExampleMap() {
	// 1) Create an ordered map keyed by string.
	m := treemap.New[string, string]()

	// 2) Insert six entries in scrambled order.
	for _, k := range []string{"m", "c", "s", "t", "b", "y"} {
		m.Put(k, "Letter "+k)
	}

	// 3) Size, extremes and positional queries.
	lo, _ := m.Min()
	hi, _ := m.Max()
	fmt.Printf("len=%d min=%s max=%s\n", m.Len(), lo, hi)

	r, _ := m.Rank("s")
	k, _ := m.Select(3)
	fmt.Printf("rank(s)=%d select(3)=%s\n", r, k)

	// 4) Nearest-key queries for keys that are not stored.
	f, _ := m.Floor("n")
	c, _ := m.Ceiling("r")
	fmt.Printf("floor(n)=%s ceiling(r)=%s\n", f, c)

	// Output:
	// len=6 min=b max=y
	// rank(s)=3 select(3)=s
	// floor(n)=m ceiling(r)=s
}

// ExampleMap_iteration demonstrates ascending and descending traversal.
func ExampleMap_iteration() {
	m := treemap.New[string, int]()
	for i, k := range []string{"m", "c", "s", "t", "b", "y"} {
		m.Put(k, i)
	}

	for k := range m.Keys() {
		fmt.Print(k, " ")
	}
	fmt.Println()
	for k := range m.ReverseKeys() {
		fmt.Print(k, " ")
	}
	fmt.Println()

	// Output:
	// b c m s t y
	// y t s m c b
}

// ExampleNewFunc demonstrates an explicit comparator: shortest-first
// string ordering.
func ExampleNewFunc() {
	cmpLen := func(a, b string) int {
		switch la, lb := len(a), len(b); {
		case la != lb:
			return la - lb
		default:
			if a < b {
				return -1
			}
			if a > b {
				return 1
			}

			return 0
		}
	}

	m := treemap.NewFunc[string, int](cmpLen)
	m.Put("bbb", 3)
	m.Put("a", 1)
	m.Put("cc", 2)

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// a 1
	// cc 2
	// bbb 3
}
