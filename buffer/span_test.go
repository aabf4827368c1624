package buffer

import "testing"

func chain(pieces ...*piece) {
	for i := 0; i+1 < len(pieces); i++ {
		pieces[i].next = pieces[i+1]
		pieces[i+1].prev = pieces[i]
	}
}

func TestSpanSwapBoundaryInsertAndUndo(t *testing.T) {
	pl := newPieceList()
	a := &piece{len: 1}
	chain(pl.begin, a, pl.end)

	old := spanBetween(a, pl.end)
	n := &piece{len: 1}
	newSpan := spanOfNew(n)

	spanSwap(old, newSpan)
	if pl.begin.next != a || a.next != n || n.next != pl.end {
		t.Fatal("insert did not link as expected")
	}

	spanSwap(newSpan, old)
	if a.next != pl.end || pl.end.prev != a {
		t.Fatal("undo did not restore the original link")
	}
}

func TestSpanSwapReplaceInPlaceAndUndo(t *testing.T) {
	pl := newPieceList()
	a := &piece{len: 3}
	chain(pl.begin, a, pl.end)

	old := spanOfRun(a, a)
	b, c := &piece{len: 1}, &piece{len: 2}
	newSpan := spanOfNew(b, c)

	spanSwap(old, newSpan)
	if pl.begin.next != b || b.next != c || c.next != pl.end {
		t.Fatal("replace did not link as expected")
	}

	spanSwap(newSpan, old)
	if pl.begin.next != a || a.next != pl.end {
		t.Fatal("undo did not restore the single original piece")
	}
}

func TestSpanSwapUnlinkAndUndo(t *testing.T) {
	pl := newPieceList()
	a, b, c := &piece{len: 1}, &piece{len: 1}, &piece{len: 1}
	chain(pl.begin, a, b, c, pl.end)

	old := spanOfRun(b, b)
	newSpan := spanBetween(a, c)

	spanSwap(old, newSpan)
	if a.next != c || c.prev != a {
		t.Fatal("delete did not unlink b")
	}

	spanSwap(newSpan, old)
	if a.next != b || b.next != c || c.prev != b {
		t.Fatal("undo did not relink b")
	}
}
