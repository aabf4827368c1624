//go:build unix

// Package editor provides the file-backed facade over the piece-table
// buffer engine: Load/Save, and thin pass-throughs for every editing
// operation in package buffer (SPEC_FULL.md "Editor Facade"). Load and
// Save depend on mmap(2) and rename(2), so this package — like
// original_source/editor.c's own loader — is POSIX-only.
package editor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/oligo/pted/buffer"
)

// Option configures an Editor. Grounded on the functional-options
// shape used throughout the config layer in
// _examples/dshills-keystorm/internal/config.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	appendBufferSize int
}

// WithLogger overrides the logger the Editor and its buffer.PieceTable
// report diagnostics to.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

// WithAppendBufferSize overrides the minimum capacity of each append
// buffer the underlying buffer.Store allocates (buffer.BufferMin by
// default). Mainly useful for tests that want to force buffer
// rollover without writing a megabyte of text.
func WithAppendBufferSize(n int) Option {
	return func(c *config) {
		c.appendBufferSize = n
	}
}

// Editor is a loaded document: a buffer.PieceTable plus the file it
// was loaded from (if any) and the mapping backing its original
// content.
type Editor struct {
	pt      *buffer.PieceTable
	path    string
	mapping mapping
	hasFile bool
	closed  bool
}

// Load opens path, memory-maps it read-only, and returns an Editor
// whose initial content is the file's bytes. Pass "" to start a new,
// empty document instead (original_source/editor.c's editor_load,
// which accepts NULL for the same purpose).
func Load(path string, opts ...Option) (*Editor, error) {
	c := resolveConfig(opts)

	if path == "" {
		return &Editor{
			pt: buffer.NewPieceTableWithMinSize(nil, c.appendBufferSize),
		}, nil
	}

	m, err := mapFile(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded", "path", path, "bytes", len(m.data))

	return &Editor{
		pt:      buffer.NewPieceTableWithMinSize(m.data, c.appendBufferSize),
		path:    path,
		mapping: m,
		hasFile: true,
	}, nil
}

func resolveConfig(opts []Option) *config {
	c := &config{appendBufferSize: buffer.BufferMin}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger != nil {
		SetLogger(c.logger)
		buffer.SetLogger(c.logger)
	}
	return c
}

// Close releases the memory mapping of the file this Editor was
// loaded from, if any. It does not touch any in-progress edits; call
// Save first if they should be kept.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.hasFile {
		return e.mapping.close()
	}
	return nil
}

func (e *Editor) checkOpen() error {
	if e.closed {
		return ErrClosed
	}
	return nil
}

// Insert inserts text at pos. See buffer.PieceTable.Insert.
func (e *Editor) Insert(pos int, text []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	return e.pt.Insert(pos, text)
}

// Delete removes n bytes starting at pos. See buffer.PieceTable.Delete.
func (e *Editor) Delete(pos, n int) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	return e.pt.Delete(pos, n)
}

// Replace deletes len(text) bytes at pos and inserts text in their
// place. See buffer.PieceTable.Replace.
func (e *Editor) Replace(pos int, text []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	return e.pt.Replace(pos, text)
}

// Undo reverts the most recent Action. See buffer.PieceTable.Undo.
func (e *Editor) Undo() bool {
	if e.closed {
		return false
	}
	return e.pt.Undo()
}

// Redo re-applies the most recently undone Action. See
// buffer.PieceTable.Redo.
func (e *Editor) Redo() bool {
	if e.closed {
		return false
	}
	return e.pt.Redo()
}

// Snapshot ends the current Action so the next edit starts a new one.
// See buffer.PieceTable.Snapshot.
func (e *Editor) Snapshot() {
	if e.closed {
		return
	}
	e.pt.Snapshot()
}

// Modified reports whether the document has changed since the last
// successful Save (or since Load, if never saved).
func (e *Editor) Modified() bool {
	if e.closed {
		return false
	}
	return e.pt.Modified()
}

// Size returns the current document length in bytes.
func (e *Editor) Size() int {
	if e.closed {
		return 0
	}
	return e.pt.Size()
}

// Iterate walks the document's bytes from pos to the end. See
// buffer.PieceTable.Iterate.
func (e *Editor) Iterate(pos int, fn func([]byte) bool) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	return e.pt.Iterate(pos, fn)
}

// NewIterator returns a cursor over the document's pieces. See
// buffer.PieceTable.NewIterator.
func (e *Editor) NewIterator() (*buffer.Iterator, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	return e.pt.NewIterator(), nil
}

// WriteTo writes the document's current content to w, in document
// order. It supplements the documented operation set with the walk
// original_source/editor.c performs inline inside editor_save via
// editor_iterate+copy_content. Save does not use it: saveFile writes
// the temp file through an mmap.
func (e *Editor) WriteTo(w io.Writer) (int64, error) {
	if err := e.checkOpen(); err != nil {
		return 0, err
	}

	var written int64
	var writeErr error
	err := e.pt.Iterate(0, func(b []byte) bool {
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if err != nil {
		return written, err
	}
	return written, writeErr
}

// Save atomically writes the document's current content to path
// (defaulting to the path it was loaded from, if path is "") and
// marks the document unmodified. See original_source/editor.c's
// editor_save.
func (e *Editor) Save(path string) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if path == "" {
		path = e.path
	}
	if path == "" {
		return fmt.Errorf("%w: no path to save to", ErrIO)
	}

	if err := saveFile(path, e.pt); err != nil {
		return err
	}

	e.pt.MarkSaved()
	logger.Debug("saved", "path", path, "bytes", e.pt.Size())
	return nil
}

// Stats summarizes the document's internal structure, for
// diagnostics, tests, and cmd/ptedit's :stats command. See
// buffer.PieceTable.Stats.
func (e *Editor) Stats() buffer.Stats {
	if e.closed {
		return buffer.Stats{}
	}
	return e.pt.Stats()
}

// DebugString renders the document's piece sequence one piece per
// line. See buffer.PieceTable.DebugString.
func (e *Editor) DebugString() string {
	if e.closed {
		return ""
	}
	return e.pt.DebugString()
}
