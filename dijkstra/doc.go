// Package dijkstra computes single-source shortest paths on an
// edge-weighted digraph with non-negative weights.
//
// What:
//
//   - New(g, source) relaxes edges in order of increasing distance from
//     the source, using an indexed min-priority queue with at most one
//     entry per vertex and eager decrease-key on improvement.
//   - DistTo, HasPathTo and PathTo answer distance, reachability and
//     path queries against the resulting shortest-path tree.
//
// Why:
//
//   - With non-negative weights, the greedy choice is final: once a
//     vertex leaves the queue its distance never improves, so one
//     O(E log V) pass serves any number of queries.
//
// Negative weights break that argument, so New rejects any graph
// containing a negative-weight edge with ErrNegativeWeight up front
// rather than returning silently wrong distances.
//
// Complexity: construction O(E log V) time, O(V) memory; PathTo is
// linear in the reported path.
//
// Error handling: New returns ErrNilGraph for a nil graph, wraps
// graph.ErrVertexRange for an out-of-range source or query vertex, and
// DistTo/PathTo return ErrUnreachable when no path exists.
//
// Thread safety: a ShortestPaths value is immutable after New and safe
// for concurrent readers.
package dijkstra
