package symtab

import "errors"

var (
	// ErrKeyNotFound indicates Get or Delete on an absent key.
	ErrKeyNotFound = errors.New("symtab: key not found")
	// ErrEmptyTable indicates Min or Max on an empty table.
	ErrEmptyTable = errors.New("symtab: table is empty")
	// ErrIndexOutOfRange indicates Select with a rank outside [0, Len()).
	ErrIndexOutOfRange = errors.New("symtab: rank index out of range")
	// ErrNoSuchBound indicates Floor or Ceiling with no qualifying key.
	ErrNoSuchBound = errors.New("symtab: no qualifying key for bound")
)
