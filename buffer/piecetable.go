// Package buffer implements the piece-table text engine: an in-memory
// document representation that supports insert, delete, replace, and
// multi-level undo/redo without ever copying the unmodified parts of
// the document (spec.md §2, §3, §4).
package buffer

import "fmt"

// PieceTable is the engine underlying an editable document. It owns
// the backing byte storage, the active piece sequence, the offset
// index that accelerates locate(), and the two undo/redo stacks of
// Actions. It has no notion of files; loading and saving bytes is the
// editor package's job (SPEC_FULL.md §"Editor Facade").
type PieceTable struct {
	store  *Store
	pieces *pieceList
	index  *offsetIndex

	undo actionStack
	redo actionStack

	current *Action

	// tailPiece and cacheChange together gate the append-cache fast
	// path; see cache.go.
	tailPiece   *piece
	cacheChange *Change

	size int

	// savedAction marks the undo-stack Action that was on top the last
	// time the document was saved; Modified reports whether the top of
	// the undo stack has moved since (spec.md §4.9).
	savedAction *Action
}

// NewPieceTable builds a PieceTable over original, which becomes the
// document's initial content and is never copied or mutated — it is
// typically the memory-mapped contents of a loaded file. Pass nil for
// a new, empty document.
func NewPieceTable(original []byte) *PieceTable {
	return NewPieceTableWithMinSize(original, BufferMin)
}

// NewPieceTableWithMinSize is NewPieceTable with a caller-chosen
// minimum append-buffer capacity.
func NewPieceTableWithMinSize(original []byte, minSize int) *PieceTable {
	pt := &PieceTable{
		store:  NewStoreWithMinSize(original, minSize),
		pieces: newPieceList(),
		index:  newOffsetIndex(),
	}

	if len(original) > 0 {
		p := &piece{
			content: ref{buf: pt.store.Original(), off: 0, len: len(original)},
			len:     len(original),
		}
		p.prev, p.next = pt.pieces.begin, pt.pieces.end
		pt.pieces.begin.next = p
		pt.pieces.end.prev = p
		pt.size = len(original)
	}

	return pt
}

// Size returns the current document length in bytes.
func (pt *PieceTable) Size() int {
	return pt.size
}

// Modified reports whether the document has changed since the last
// MarkSaved call (or since creation, if MarkSaved has never been
// called).
func (pt *PieceTable) Modified() bool {
	return pt.undo.top() != pt.savedAction
}

// MarkSaved records the current undo-stack top as the saved point and
// ends the current Action, exactly as Snapshot does. The editor
// package calls this after a successful Save.
func (pt *PieceTable) MarkSaved() {
	pt.savedAction = pt.undo.top()
	pt.Snapshot()
}

// Snapshot ends the current Action, if any, so that the next mutation
// starts a fresh one (spec.md §4.8). It also clears the append cache,
// since the piece a cache extension would grow belongs to the Action
// being closed.
func (pt *PieceTable) Snapshot() {
	pt.current = nil
	pt.tailPiece = nil
	pt.cacheChange = nil
}

// ensureAction returns the Action currently accepting new Changes,
// allocating one — and pushing it onto the undo stack, and discarding
// the redo stack — if none is open.
func (pt *PieceTable) ensureAction() *Action {
	if pt.current == nil {
		pt.current = newAction()
		pt.undo.push(pt.current)
		pt.redo.clear()
	}
	return pt.current
}

// locate resolves a document position to the piece that contains it
// and the byte offset within that piece, per spec.md §4.1: the first
// piece p (walking from begin) with cumulative(p) <= pos <=
// cumulative(p)+p.len. pos == 0 and pos == size are handled directly;
// everything in between goes through the offset index.
func (pt *PieceTable) locate(pos int) (*piece, int, error) {
	if pos < 0 || pos > pt.size {
		return nil, 0, ErrOutOfRange
	}
	if pos == 0 {
		return pt.pieces.begin, 0, nil
	}
	if pos == pt.size {
		last := pt.pieces.last()
		return last, last.len, nil
	}

	p, start, ok := pt.index.find(pt.pieces, pos-1)
	if !ok {
		return nil, 0, ErrOutOfRange
	}
	return p, pos - start, nil
}

// Insert inserts text at pos, which must satisfy 0 <= pos <= Size()
// (spec.md §4.4). Inserting zero bytes at a valid pos succeeds without
// recording a Change; at an invalid pos it returns ErrOutOfRange.
func (pt *PieceTable) Insert(pos int, text []byte) error {
	if len(text) == 0 {
		if pos < 0 || pos > pt.size {
			return ErrOutOfRange
		}
		return nil
	}

	p, off, err := pt.locate(pos)
	if err != nil {
		return err
	}

	action := pt.ensureAction()

	if pt.cacheInsert(p, off, text) {
		return nil
	}

	content, err := pt.store.store(text)
	if err != nil {
		return err
	}

	var change *Change
	var textPiece *piece

	switch {
	case off == p.len:
		// Boundary insert against p: attach between p and p.next. Checked
		// before off == 0 so that locate(0) — which returns the begin
		// sentinel with off == 0 == p.len — lands here rather than in the
		// p.prev case below, where p.prev is nil for the begin sentinel
		// (original_source/editor.c's editor_insert checks off == p->len
		// first for the same reason).
		textPiece = &piece{content: content, len: len(text)}
		old := spanBetween(p, p.next)
		newSpan := spanOfNew(textPiece)
		spanSwap(old, newSpan)
		change = &Change{old: old, new: newSpan}

	case off == 0:
		// Boundary insert against p.prev: attach between p.prev and p.
		textPiece = &piece{content: content, len: len(text)}
		old := spanBetween(p.prev, p)
		newSpan := spanOfNew(textPiece)
		spanSwap(old, newSpan)
		change = &Change{old: old, new: newSpan}

	default:
		// Mid-piece insert: split p into a prefix, the new text, and a
		// suffix, all three replacing the single piece p.
		before := &piece{content: ref{buf: p.content.buf, off: p.content.off, len: off}, len: off}
		textPiece = &piece{content: content, len: len(text)}
		after := &piece{content: ref{buf: p.content.buf, off: p.content.off + off, len: p.len - off}, len: p.len - off}

		old := spanOfRun(p, p)
		newSpan := spanOfNew(before, textPiece, after)
		spanSwap(old, newSpan)
		change = &Change{old: old, new: newSpan}
	}

	pt.index.invalidate()
	action.append(change)
	pt.size += len(text)

	pt.tailPiece = textPiece
	pt.cacheChange = change

	logger.Debug("insert", "pos", pos, "bytes", len(text))
	return nil
}

// Delete removes n bytes starting at pos, which must satisfy
// 0 <= pos, pos+n <= Size() (spec.md §4.5). Deleting zero bytes always
// succeeds without recording a Change.
func (pt *PieceTable) Delete(pos, n int) error {
	if n == 0 {
		return nil
	}
	if pos < 0 || pos+n > pt.size {
		return ErrOutOfRange
	}

	p, off, err := pt.locate(pos)
	if err != nil {
		return err
	}

	action := pt.ensureAction()

	if pt.cacheDelete(p, off, n) {
		return nil
	}

	midStart := off > 0
	start := p
	if !midStart {
		start = p.next
	}

	cumulative := 0
	end := start
	for {
		contrib := end.len
		if end == p && midStart {
			contrib = end.len - off
		}
		cumulative += contrib
		if cumulative >= n {
			break
		}
		end = end.next
	}
	excess := cumulative - n
	midEnd := excess > 0

	var newPieces []*piece
	if midStart {
		newPieces = append(newPieces, &piece{
			content: ref{buf: p.content.buf, off: p.content.off, len: off},
			len:     off,
		})
	}
	if midEnd {
		newPieces = append(newPieces, &piece{
			content: ref{buf: end.content.buf, off: end.content.off + (end.len - excess), len: excess},
			len:     excess,
		})
	}

	old := spanOfRun(start, end)
	var newSpan Span
	if len(newPieces) == 0 {
		newSpan = spanBetween(start.prev, end.next)
	} else {
		newSpan = spanOfNew(newPieces...)
	}
	spanSwap(old, newSpan)

	change := &Change{old: old, new: newSpan}
	pt.index.invalidate()
	action.append(change)
	pt.size -= n
	pt.cacheChange = change

	logger.Debug("delete", "pos", pos, "bytes", n)
	return nil
}

// Replace is delete(pos, len(text)) followed by insert(pos, text),
// both folded into the same Action so a single Undo reverts the whole
// replacement. It succeeds only if both sub-operations do, but — per
// the original editor's control flow — a failed delete does not stop
// the insert from being attempted (spec.md §4.6).
func (pt *PieceTable) Replace(pos int, text []byte) error {
	delErr := pt.Delete(pos, len(text))
	insErr := pt.Insert(pos, text)
	if delErr != nil {
		return delErr
	}
	return insErr
}

// Undo reverts the most recent Action and moves it to the redo stack.
// It reports whether there was anything to undo.
func (pt *PieceTable) Undo() bool {
	a := pt.undo.pop()
	if a == nil {
		return false
	}
	a.undo()
	for _, c := range a.changes {
		pt.size += c.old.len - c.new.len
	}
	pt.redo.push(a)

	pt.current = nil
	pt.tailPiece = nil
	pt.cacheChange = nil
	pt.index.invalidate()
	return true
}

// Redo re-applies the most recently undone Action and moves it back
// onto the undo stack. It reports whether there was anything to redo.
func (pt *PieceTable) Redo() bool {
	a := pt.redo.pop()
	if a == nil {
		return false
	}
	a.redo()
	for _, c := range a.changes {
		pt.size += c.new.len - c.old.len
	}
	pt.undo.push(a)

	pt.current = nil
	pt.tailPiece = nil
	pt.cacheChange = nil
	pt.index.invalidate()
	return true
}

// Pieces returns the number of active pieces, for diagnostics and
// tests (Stats() in the editor package).
func (pt *PieceTable) Pieces() int {
	return pt.pieces.count()
}

// UndoDepth and RedoDepth report the number of Actions on each stack,
// for diagnostics and tests.
func (pt *PieceTable) UndoDepth() int { return pt.undo.depth() }
func (pt *PieceTable) RedoDepth() int { return pt.redo.depth() }

// Stats summarizes a PieceTable's internal structure. It supplements
// the documented operation set with the aggregate original_source/
// editor.c's allocation-counter debug instrumentation would have
// reported, had it survived into a single accessor instead of global
// counters (SPEC_FULL.md "SUPPLEMENTED FEATURES").
type Stats struct {
	Size      int
	Pieces    int
	Buffers   int
	UndoDepth int
	RedoDepth int
	Modified  bool
}

// Stats returns a snapshot of pt's current Stats.
func (pt *PieceTable) Stats() Stats {
	return Stats{
		Size:      pt.size,
		Pieces:    pt.pieces.count(),
		Buffers:   pt.store.BufferCount(),
		UndoDepth: pt.undo.depth(),
		RedoDepth: pt.redo.depth(),
		Modified:  pt.Modified(),
	}
}

// DebugString renders the active piece sequence one piece per line —
// index, byte length, and a truncated preview of its content —
// mirroring original_source/editor.c's editor_debug/print_piece
// without the raw pointer addresses that dump writes to stderr.
func (pt *PieceTable) DebugString() string {
	var sb []byte
	i := 0
	pt.pieces.walk(func(p *piece) bool {
		b := p.content.bytes()
		if len(b) > 40 {
			b = b[:40]
		}
		sb = append(sb, fmt.Sprintf("%d: len=%d %q\n", i, p.len, b)...)
		i++
		return true
	})
	return string(sb)
}
