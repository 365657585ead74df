// Package symtab provides the simpler symbol tables of the catalogue:
// an unordered linked list, a binary-search table over parallel sorted
// slices, and two hash tables (separate chaining, linear probing).
//
// Overview:
//
//   - Sequential[K, V]   — unordered singly-linked list; O(n) search,
//     O(1) insert at the head after a miss. The didactic baseline and the
//     bucket type of the chaining table.
//   - BinarySearch[K, V] — two parallel slices kept in key order; O(log n)
//     search via Rank, O(n) insert/delete (slice shift). Supports the
//     ordered operations (Min/Max/Select/Floor/Ceiling).
//   - Chaining[K, V]     — M buckets of Sequential chains, hashed with
//     hash/maphash; expected O(n/M) per operation.
//   - Probing[K, V]      — open addressing with linear probing; doubles at
//     one-half load, shrinks at one-eighth, and re-inserts the probe
//     cluster after a delete to keep lookups intact.
//
// Hashing: both hash tables draw 64-bit hashes from maphash.Comparable
// with a per-table seed, so two tables never share a collision pattern.
//
// Error handling (sentinel errors):
//
//   - ErrKeyNotFound:     Get or Delete on an absent key.
//   - ErrEmptyTable:      Min or Max on an empty BinarySearch table.
//   - ErrIndexOutOfRange: Select with a rank outside [0, Len()).
//   - ErrNoSuchBound:     Floor/Ceiling with no qualifying key.
//
// Thread safety: none; callers synchronize externally.
//
// See also: treemap for the balanced ordered map these tables lead up to.
package symtab
