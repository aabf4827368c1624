//go:build unix

package editor

import "errors"

// File errors.
var (
	// ErrNotRegularFile indicates that Load was asked to map something
	// other than a regular file (a directory, device, or pipe).
	ErrNotRegularFile = errors.New("editor: not a regular file")

	// ErrIO wraps a failure in the underlying mmap/open/write/rename
	// syscalls that Load/Save perform. Check for it with errors.Is;
	// the triggering syscall error appears only in the message text.
	ErrIO = errors.New("editor: i/o error")

	// ErrClosed indicates that an operation was attempted on an Editor
	// whose Close method has already run.
	ErrClosed = errors.New("editor: use of closed editor")
)
