// Package dskit is an in-memory catalogue of classic data structures and
// algorithms — ordered maps, linear containers, sorting routines, symbol
// tables and graph algorithms.
//
// 🚀 What is dskit?
//
//	A modern, single-threaded, low-dependency library that brings together:
//		• Ordered map: a left-leaning red-black BST with order statistics
//		• Containers: stack, queue, indexed minimum priority queue
//		• Sorting: insertion, selection, bubble, shell, merge, quick, heap
//		• Symbol tables: sequential, binary-search, chaining & probing hash
//		• Graphs: adjacency lists, BFS/DFS, topological sort, SCC
//		• Weighted graphs: Prim & Kruskal MST, Dijkstra shortest paths
//
// ✨ Why choose dskit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable guarantees – documented complexity and sentinel errors
//   - Generic – type-parameterized keys and values, explicit total orders
//   - Pure algorithms – no hidden I/O, no global state
//
// Under the hood, everything is organized as one package per family:
//
//	treemap/    — THE CORE: ordered map as a left-leaning red-black tree
//	bst/        — plain (unbalanced) binary search tree symbol table
//	containers/ — Stack, Queue, MinPQ (one entry per key, re-prioritizable)
//	sorting/    — seven classic sorts over ordered element types
//	symtab/     — sequential, binary-search and hashed symbol tables
//	graph/      — Graph, Digraph, weighted variants, UnionFind, SymbolGraph
//	bfs/, dfs/  — traversals, components, cycles, topological order, SCC
//	mst/        — minimum spanning trees (Prim, Kruskal)
//	dijkstra/   — single-source shortest paths
//
// Quick ASCII example:
//
//	        (m)
//	       /   \
//	     (c)   (t)
//	     / \   / \
//	   (b)    (s)(y)
//
//	the ordered map keeps every path from root to leaf logarithmic.
//
// Dive into each package's doc.go for full examples, complexity tables and
// the exact error contract.
//
//	go get github.com/katalvlaran/dskit
package dskit
