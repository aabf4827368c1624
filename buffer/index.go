package buffer

import (
	"cmp"

	"github.com/rdleal/intervalst/interval"
)

// offsetIndex accelerates locate() with an interval tree keyed by
// cumulative byte offset, the "balanced tree keyed by cumulative
// length" substitution spec.md §4.1 explicitly allows in place of a
// linear walk from begin.
//
// Each active piece occupies a half-open byte range [start, start+len)
// in the document. Structural changes (spanSwap) shift every
// downstream piece's range, which costs as much to repair
// incrementally as to rebuild outright, so the index is simply
// invalidated on every mutation and rebuilt lazily on the next
// locate(). Repeated lookups between mutations — the common case
// during Save and multi-step iteration — get O(log n) instead of
// O(n) each.
//
// Grounded on the interval.MultiValueSearchTree usage in
// textstyle/decoration/decoration.go (the teacher's decoration-range
// query index), repurposed here from decoration ranges to piece
// ranges.
// offsetPiece pairs a piece with the cumulative offset at which its
// byte range begins, so a lookup hit can recover the in-piece offset
// without a second walk.
type offsetPiece struct {
	p     *piece
	start int
}

type offsetIndex struct {
	tree  *interval.MultiValueSearchTree[offsetPiece, int]
	valid bool
}

func newOffsetIndex() *offsetIndex {
	return &offsetIndex{}
}

// invalidate marks the index stale. The next locate() call rebuilds
// it from the current piece sequence.
func (idx *offsetIndex) invalidate() {
	idx.valid = false
	idx.tree = nil
}

func (idx *offsetIndex) rebuild(pl *pieceList) {
	tree := interval.NewMultiValueSearchTree[offsetPiece](func(a, b int) int {
		return cmp.Compare(a, b)
	})

	off := 0
	pl.walk(func(p *piece) bool {
		if p.len > 0 {
			tree.Insert(off, off+p.len, offsetPiece{p: p, start: off})
		}
		off += p.len
		return true
	})

	idx.tree = tree
	idx.valid = true
}

// find returns the piece whose byte range contains byteIdx and the
// cumulative offset at which that range begins, given
// 0 <= byteIdx < size. It rebuilds the index first if invalidated.
func (idx *offsetIndex) find(pl *pieceList, byteIdx int) (p *piece, start int, ok bool) {
	if !idx.valid {
		idx.rebuild(pl)
	}

	// The tree's intervals are closed, so this query can also hit the
	// neighbour whose range ends at byteIdx; keep only the piece whose
	// half-open range actually holds byteIdx.
	found, hit := idx.tree.AllIntersections(byteIdx, byteIdx+1)
	if !hit {
		return nil, 0, false
	}
	for _, op := range found {
		if op.start <= byteIdx && byteIdx < op.start+op.p.len {
			return op.p, op.start, true
		}
	}
	return nil, 0, false
}
