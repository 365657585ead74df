package dfs

import "errors"

var (
	// ErrNilGraph indicates a nil graph passed to a constructor.
	ErrNilGraph = errors.New("dfs: nil graph")
	// ErrUnreachable indicates a path query for a vertex the source
	// cannot reach.
	ErrUnreachable = errors.New("dfs: vertex unreachable from source")
	// ErrCyclic indicates a topological sort over a digraph with a cycle.
	ErrCyclic = errors.New("dfs: digraph is not acyclic")
)
