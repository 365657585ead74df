// Package graph provides the adjacency-list graph types the traversal
// and optimization packages operate on, plus two small companions:
// union-find and a symbol graph for string-labelled vertices.
//
// Overview:
//
//   - Vertices are integers 0..V-1, fixed at construction. Every
//     operation that takes a vertex validates it against [0, V) and
//     returns ErrVertexRange otherwise. Parallel edges and self-loops
//     are permitted, as in the classic formulations.
//   - Graph               — undirected, unweighted.
//   - Digraph             — directed, unweighted; supports Reverse.
//   - EdgeWeightedGraph   — undirected with float64 edge weights (Edge).
//   - EdgeWeightedDigraph — directed with float64 weights (DirectedEdge).
//   - UnionFind           — quick-find connectivity over 0..n-1.
//   - SymbolGraph         — undirected graph over string labels; grows
//     on demand and projects onto a Graph via its integer view.
//
// Construction is append-only: once built, a graph is safe for any
// number of concurrent readers, since no query mutates it. Mixing
// AddEdge with concurrent reads needs external synchronization.
//
// Complexity: AddEdge O(1); Adj(v) returns the adjacency slice directly,
// so iteration over all neighbors of all vertices is O(V + E).
//
// See also: bfs, dfs, mst and dijkstra for the algorithms on these types.
package graph
