package graph

import "errors"

var (
	// ErrVertexRange indicates a vertex outside [0, V).
	ErrVertexRange = errors.New("graph: vertex out of range")
	// ErrNegativeOrder indicates construction with a negative vertex count.
	ErrNegativeOrder = errors.New("graph: vertex count must be non-negative")
	// ErrNotInEdge indicates Edge.Other with a vertex on neither endpoint.
	ErrNotInEdge = errors.New("graph: vertex not incident to edge")
	// ErrUnknownLabel indicates a SymbolGraph lookup with an unknown label.
	ErrUnknownLabel = errors.New("graph: unknown vertex label")
)
