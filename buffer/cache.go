package buffer

// The append cache lets a run of sequential edits at the same point —
// the common case while typing — grow or shrink one piece in place
// instead of allocating a new piece and Change per keystroke.
//
// Grounded on the teacher's buffer/piecetable.go (tryAppendToLastPiece,
// lastInsertPiece, lastAction) and original_source/editor.c's
// cache_piece/editor_insert fast path. A piece is eligible only if it
// is both the most recently inserted text piece (tailPiece) and the
// START of the most recently made Change's new span — which means a
// piece created in the middle of a split (the "new" piece of a
// mid-piece insert, where the new span is [B,A] and the inserted piece
// is the unlisted middle one) is never eligible, even though it is the
// tail of the append buffer. DESIGN.md records this as
// a deliberate reproduction of the original's narrow eligibility rule
// rather than a bug fix.

// cacheEligible reports whether p is still the fast-append target: the
// tail of the head append buffer, and the start of the current
// Action's most recently appended Change.
func (pt *PieceTable) cacheEligible(p *piece) bool {
	if p == nil || pt.tailPiece == nil || pt.cacheChange == nil {
		return false
	}
	if p != pt.tailPiece || p != pt.cacheChange.new.start {
		return false
	}

	head := pt.store.Head()
	if head == nil || p.content.buf != head {
		return false
	}
	return p.content.off+p.content.len == head.used
}

// cacheInsert attempts to satisfy an insert of text at offset off
// within p by growing p and the head append buffer in place. It
// reports whether it succeeded; on failure the caller must fall back
// to the general split/splice path.
func (pt *PieceTable) cacheInsert(p *piece, off int, text []byte) bool {
	if !pt.cacheEligible(p) || off < 0 || off > p.len {
		return false
	}

	head := pt.store.Head()
	if head.free() < len(text) {
		return false
	}

	pos := p.content.off + off
	tail := head.used
	if off < p.len {
		copy(head.content[pos+len(text):tail+len(text)], head.content[pos:tail])
	}
	copy(head.content[pos:pos+len(text)], text)
	head.used += len(text)

	p.len += len(text)
	p.content.len += len(text)
	pt.cacheChange.new.len += len(text)
	pt.size += len(text)
	pt.index.invalidate()

	logger.Debug("cache insert", "bytes", len(text), "piece_len", p.len)
	return true
}

// cacheDelete attempts to satisfy deleting the n bytes starting at
// offset off within p by shrinking p and the head append buffer in
// place.
func (pt *PieceTable) cacheDelete(p *piece, off, n int) bool {
	if !pt.cacheEligible(p) || off < 0 || n < 0 || off+n > p.len {
		return false
	}

	head := pt.store.Head()
	pos := p.content.off + off
	tail := head.used
	copy(head.content[pos:tail-n], head.content[pos+n:tail])
	head.used -= n

	p.len -= n
	p.content.len -= n
	pt.cacheChange.new.len -= n
	pt.size -= n
	pt.index.invalidate()

	logger.Debug("cache delete", "bytes", n, "piece_len", p.len)
	return true
}
