package buffer

import "errors"

// Position errors.
var (
	// ErrOutOfRange indicates that pos, or pos+len for a delete,
	// exceeds the document size.
	ErrOutOfRange = errors.New("buffer: position out of range")
)

// Allocation errors.
var (
	// ErrOutOfMemory indicates that allocating a buffer, piece,
	// Change, or Action failed. The Go allocator panics rather than
	// returning an error on real exhaustion, and no code path in this
	// package currently returns ErrOutOfMemory; it exists
	// so the contract of spec.md §7 is satisfiable by callers that
	// embed this package in a context where allocation can be made to
	// fail (e.g. a bounded arena).
	ErrOutOfMemory = errors.New("buffer: allocation failed")
)
