package mst

import "errors"

var (
	// ErrNilGraph indicates a nil graph passed to a constructor.
	ErrNilGraph = errors.New("mst: nil graph")
	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")
)
