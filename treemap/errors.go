package treemap

import "errors"

// Sentinel errors returned by Map operations.
var (
	// ErrKeyNotFound indicates a lookup, delete or rank on a key that is
	// not present in the map.
	ErrKeyNotFound = errors.New("treemap: key not found")

	// ErrEmptyTree indicates Min, Max or DeleteMin on an empty map.
	ErrEmptyTree = errors.New("treemap: map is empty")

	// ErrIndexOutOfRange indicates Select with a rank outside [0, Len()).
	ErrIndexOutOfRange = errors.New("treemap: rank index out of range")

	// ErrNoSuchBound indicates Floor or Ceiling with no qualifying key,
	// e.g. Floor of a key smaller than every stored key.
	ErrNoSuchBound = errors.New("treemap: no qualifying key for bound")
)
