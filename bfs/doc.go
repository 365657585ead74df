// Package bfs computes single-source shortest paths by edge count with
// breadth-first search.
//
// What:
//
//   - New(g, source) explores every vertex reachable from source in
//     non-decreasing distance and records the breadth-first tree.
//   - HasPathTo, PathTo and DistTo answer reachability, path and
//     distance queries in time proportional to the answer.
//
// Why:
//
//   - In an unweighted graph the breadth-first tree realizes shortest
//     paths, so one O(V + E) pass answers any number of queries.
//
// The search accepts any adjacency view with V() and Adj(v), so it runs
// unchanged over graph.Graph and graph.Digraph.
//
// Determinism: neighbors are enqueued in adjacency-list order, so the
// tree (and every reported path) is reproducible for a given graph.
//
// Complexity: construction O(V + E) time, O(V) memory; PathTo is O(L)
// for a path of length L.
//
// Error handling: New returns ErrNilGraph for a nil view and wraps
// graph.ErrVertexRange for an out-of-range source or query vertex;
// PathTo and DistTo return ErrUnreachable when no path exists.
//
// Thread safety: a Paths value is immutable after New and safe for
// concurrent readers.
package bfs
