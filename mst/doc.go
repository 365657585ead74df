// Package mst computes minimum spanning trees of edge-weighted
// undirected graphs with the two classic greedy algorithms.
//
// What:
//
//   - Prim    — grows one tree from vertex 0, keeping at most one
//     candidate edge per non-tree vertex on an indexed priority queue
//     and decreasing its key when a cheaper crossing edge appears.
//   - Kruskal — scans all edges by ascending weight and accepts an
//     edge whenever union-find says it joins two different trees.
//
// Both return the tree edges in the order the algorithm accepted them
// plus the total weight. On a connected graph the two trees have equal
// weight; with distinct edge weights they are the same tree.
//
// For a disconnected graph the result is a minimum spanning forest:
// Prim covers only the component of vertex 0's tree per pass and
// restarts from the next unmarked vertex, so every vertex is spanned.
//
// Complexity: Prim O(E log V) with the indexed heap, Kruskal
// O(E log E) for the edge sort plus near-constant union-find.
//
// Error handling: constructors return ErrNilGraph for a nil graph and
// ErrEmptyGraph for a graph without vertices.
package mst
