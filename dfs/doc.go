// Package dfs bundles the depth-first search family of graph clients:
// source paths, connectivity, cycle detection, vertex orderings,
// topological sort and strongly connected components.
//
// What:
//
//   - Paths       — paths from one source to every reachable vertex.
//   - Components  — connected components of an undirected graph.
//   - Cycle       — finds a directed cycle if one exists.
//   - Order       — preorder, postorder and reverse postorder of a DFS
//     forest over all vertices.
//   - Topological — linearizes a DAG; returns ErrCyclic otherwise.
//   - SCC         — Kosaraju's strongly connected components.
//   - TransitiveClosure — all-pairs reachability, one DFS per vertex.
//
// Why:
//
//   - One linear-time preprocessing pass per client, then constant-time
//     queries. The orderings feed the dependency-resolution clients:
//     topological sort is exactly the reverse postorder of a DAG, and
//     Kosaraju runs a second DFS in reverse postorder of the reverse
//     digraph.
//
// Every client takes the adjacency view it minimally needs, so the
// undirected clients accept graph.Graph and the directed ones
// graph.Digraph. All of them validate vertices against [0, V) and
// return graph.ErrVertexRange beyond it.
//
// Complexity: each constructor is O(V + E) time and O(V) memory,
// except TransitiveClosure which searches from every vertex for
// O(V(V+E)) time and O(V^2) memory; queries are O(1) except PathTo and
// Cycle, which are linear in the answer.
//
// Thread safety: every client is immutable after construction and safe
// for concurrent readers.
package dfs
