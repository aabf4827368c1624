package buffer

// Iterate calls fn once per active piece's bytes, in document order,
// starting from the piece containing pos and continuing to the end of
// the document. It stops early if fn returns false. Iterate does not
// copy: each []byte passed to fn aliases the backing buffer directly,
// so fn must not retain it past the call (spec.md §4.10).
func (pt *PieceTable) Iterate(pos int, fn func(b []byte) bool) error {
	if pos < 0 || pos > pt.size {
		return ErrOutOfRange
	}

	p, off, err := pt.locate(pos)
	if err != nil {
		return err
	}

	if p == pt.pieces.begin {
		p = p.next
		off = 0
	}

	for n := p; n != pt.pieces.end; n = n.next {
		b := n.content.bytes()
		if n == p && off > 0 {
			b = b[off:]
		}
		if len(b) == 0 {
			continue
		}
		if !fn(b) {
			break
		}
	}
	return nil
}

// Iterator is a resumable cursor over the active piece sequence,
// grounded on the same walk Iterate performs but exposed step-by-step
// for callers that need to interleave iteration with other work (the
// editor package hands it out through Editor.NewIterator).
type Iterator struct {
	pl  *pieceList
	cur *piece
}

// NewIterator returns an Iterator positioned before the first active
// piece. Call Next to advance to it.
func (pt *PieceTable) NewIterator() *Iterator {
	return &Iterator{pl: pt.pieces, cur: pt.pieces.begin}
}

// Next advances the cursor to the next active piece and reports
// whether one exists.
func (it *Iterator) Next() bool {
	if it.cur == it.pl.end {
		return false
	}
	it.cur = it.cur.next
	return it.cur != it.pl.end
}

// Prev moves the cursor to the previous active piece and reports
// whether one exists.
func (it *Iterator) Prev() bool {
	if it.cur == it.pl.begin {
		return false
	}
	it.cur = it.cur.prev
	return it.cur != it.pl.begin
}

// Valid reports whether the cursor is on an active (non-sentinel)
// piece.
func (it *Iterator) Valid() bool {
	return it.cur != it.pl.begin && it.cur != it.pl.end
}

// Get returns the bytes of the piece under the cursor. It aliases the
// backing buffer; callers must not retain it past the next mutation.
func (it *Iterator) Get() []byte {
	if !it.Valid() {
		return nil
	}
	return it.cur.content.bytes()
}
