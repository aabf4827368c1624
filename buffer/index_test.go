package buffer

import "testing"

func TestOffsetIndexFind(t *testing.T) {
	pl := newPieceList()
	a := &piece{len: 3} // [0,3)
	b := &piece{len: 5} // [3,8)
	c := &piece{len: 2} // [8,10)
	chain(pl.begin, a, b, c, pl.end)

	idx := newOffsetIndex()

	p, start, ok := idx.find(pl, 0)
	if !ok || p != a || start != 0 {
		t.Fatalf("byte 0: got p=%v start=%d ok=%v", p, start, ok)
	}

	p, start, ok = idx.find(pl, 2)
	if !ok || p != a || start != 0 {
		t.Fatalf("byte 2: got p=%v start=%d ok=%v", p, start, ok)
	}

	p, start, ok = idx.find(pl, 3)
	if !ok || p != b || start != 3 {
		t.Fatalf("byte 3: got p=%v start=%d ok=%v", p, start, ok)
	}

	p, start, ok = idx.find(pl, 9)
	if !ok || p != c || start != 8 {
		t.Fatalf("byte 9: got p=%v start=%d ok=%v", p, start, ok)
	}
}

func TestOffsetIndexInvalidateForcesRebuild(t *testing.T) {
	pl := newPieceList()
	a := &piece{len: 4}
	chain(pl.begin, a, pl.end)

	idx := newOffsetIndex()
	if _, _, ok := idx.find(pl, 1); !ok {
		t.Fatal("expected a hit before mutation")
	}

	b := &piece{len: 2}
	chain(a, b, pl.end)
	idx.invalidate()

	p, start, ok := idx.find(pl, 5)
	if !ok || p != b || start != 4 {
		t.Fatalf("after invalidate: got p=%v start=%d ok=%v", p, start, ok)
	}
}
