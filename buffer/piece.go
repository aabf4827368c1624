package buffer

// piece is an immutable (logically) descriptor of a byte range inside
// one backingBuffer. The sequence of active pieces between the begin
// and end sentinels is the document content.
//
// Pieces are linked purely by pointer; nothing frees them explicitly.
// A piece stays reachable for as long as some Change (active or in a
// surviving Action) or the active sequence references it, and the Go
// garbage collector reclaims it the moment nothing does. See
// SPEC_FULL.md §3 for why this replaces the original C's
// global-allocation-list/arena design.
type piece struct {
	content ref
	len     int

	prev, next *piece
}

// newSentinel returns a zero-length piece used as a begin or end
// marker. Sentinels are never referenced as a Change's span content.
func newSentinel() *piece {
	return &piece{}
}

// pieceList is the doubly-linked, sentinel-bracketed piece sequence,
// following the head/tail sentinel design at
// https://www.catch22.net/tuts/neatpad/piece-chains/ (also the
// teacher's own citation for buffer/piece.go).
type pieceList struct {
	begin, end *piece
}

func newPieceList() *pieceList {
	begin, end := newSentinel(), newSentinel()
	begin.next = end
	end.prev = begin
	return &pieceList{begin: begin, end: end}
}

// first returns the first real (non-sentinel) piece, or the end
// sentinel if the sequence is empty.
func (pl *pieceList) first() *piece {
	return pl.begin.next
}

// last returns the last real piece, or the begin sentinel if the
// sequence is empty.
func (pl *pieceList) last() *piece {
	return pl.end.prev
}

func (pl *pieceList) empty() bool {
	return pl.begin.next == pl.end
}

// walk calls fn for every active (non-sentinel) piece in order,
// stopping early if fn returns false.
func (pl *pieceList) walk(fn func(p *piece) bool) {
	for n := pl.begin.next; n != pl.end; n = n.next {
		if !fn(n) {
			return
		}
	}
}

// count returns the number of active pieces. O(n); used by tests and
// Stats(), never on a hot path.
func (pl *pieceList) count() int {
	n := 0
	pl.walk(func(*piece) bool { n++; return true })
	return n
}
