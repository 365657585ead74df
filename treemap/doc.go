// Package treemap provides a generic ordered map implemented as a
// left-leaning red-black binary search tree with cached subtree sizes.
//
// Overview:
//
//   - Map[K, V] stores unique keys under a strict total order and supports
//     insertion, deletion, lookup, order statistics (rank, select, floor,
//     ceiling, min, max) and lazy ordered iteration.
//   - Each node carries one color bit on the link from its parent. The
//     insertion path maintains three invariants: no right-leaning red
//     link, no two consecutive red links on a left spine, and perfect
//     black balance (every root-to-nil path crosses the same number of
//     black links). These simulate a balanced 2-3 tree with binary nodes
//     and bound the height by O(log n).
//   - Each node also caches the size of its subtree, which makes Rank and
//     Select O(log n) without any auxiliary index.
//
// When to use:
//
//   - Whenever you need a map plus ordering: range-style iteration,
//     nearest-key queries (Floor/Ceiling), or positional access
//     (Rank/Select).
//   - As the balanced alternative to bst.Tree, which has the same contract
//     but degrades to linear height under ordered insertion.
//
// Key features:
//
//   - New for naturally ordered keys (cmp.Ordered), NewFunc for an
//     explicit three-way comparison over arbitrary key types.
//   - Order statistics expressed purely in cached subtree sizes.
//   - iter.Seq / iter.Seq2 based traversal in both directions.
//
// Known limitation — deletion does not rebalance:
//
//   - Delete and DeleteMin perform structural removal (direct splice or
//     in-order successor promotion) and recompute sizes, but run no
//     compensating rotations or color repairs on the deletion path.
//     Every invariant except black balance survives mechanically; black
//     balance can degrade under repeated deletions, so a delete-heavy
//     workload loses the logarithmic-height guarantee while remaining a
//     correct BST. Insert-only workloads keep the full guarantee.
//
// Error handling (sentinel errors):
//
//   - ErrKeyNotFound:     Get, Delete or Rank on an absent key.
//   - ErrEmptyTree:       Min, Max or DeleteMin on an empty map.
//   - ErrIndexOutOfRange: Select with a rank outside [0, Len()).
//   - ErrNoSuchBound:     Floor/Ceiling with no qualifying key.
//
// All failures are reported synchronously at the offending call; nothing
// is retried or recovered internally, and no operation ever leaves the
// tree structurally inconsistent on an error path.
//
// Performance and complexity:
//
//   - Put, Get, Contains, Rank, Select, Floor, Ceiling, Min, Max:
//     O(log n) under the maintained invariant (O(height) for deletions
//     after heavy delete workloads).
//   - Full traversal: O(n); recursion depth is bounded by tree height.
//
// Thread safety:
//
//   - None. A Map assumes exclusive access by one logical owner; callers
//     that share an instance across goroutines must synchronize
//     externally. Iteration over a concurrently mutated map is undefined.
//
// See also:
//
//   - bst: the unbalanced tree with the same contract.
//   - symtab: hashed and sequential symbol tables without ordering.
package treemap
