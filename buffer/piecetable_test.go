package buffer

import "testing"

func text(pt *PieceTable) string {
	buf := make([]byte, 0, pt.Size())
	pt.Iterate(0, func(b []byte) bool {
		buf = append(buf, b...)
		return true
	})
	return string(buf)
}

func TestInsert(t *testing.T) {
	pt := NewPieceTable(nil)
	pt.Insert(0, []byte("Hello, world"))
	pt.Insert(6, []byte(" Go"))

	if got := text(pt); got != "Hello, Go world" {
		t.Fatalf("got %q", got)
	}

	pt = NewPieceTable([]byte("Hello, world"))
	pt.Insert(6, []byte(" Go"))
	pt.Insert(6, []byte(" welcome to the"))

	if got := text(pt); got != "Hello, welcome to the Go world" {
		t.Fatalf("got %q", got)
	}
}

func TestInsertOutOfRange(t *testing.T) {
	pt := NewPieceTable([]byte("abc"))
	if err := pt.Insert(4, []byte("x")); err != ErrOutOfRange {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
	if err := pt.Insert(-1, []byte("x")); err != ErrOutOfRange {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

func TestAppendCacheCoalescesTyping(t *testing.T) {
	pt := NewPieceTable(nil)
	pt.Insert(0, []byte("H"))
	pt.Insert(1, []byte("e"))
	pt.Insert(2, []byte("l"))
	pt.Insert(3, []byte("l"))
	pt.Insert(4, []byte("o"))

	if got := text(pt); got != "Hello" {
		t.Fatalf("got %q", got)
	}
	if n := pt.Pieces(); n != 1 {
		t.Fatalf("want 1 coalesced piece, got %d", n)
	}

	pt.Insert(5, []byte(", world"))
	if n := pt.Pieces(); n != 1 {
		t.Fatalf("want continued coalescing, got %d pieces", n)
	}
	if got := text(pt); got != "Hello, world" {
		t.Fatalf("got %q", got)
	}
}

func TestMidPieceInsertBreaksCacheEligibility(t *testing.T) {
	// A mid-piece insert leaves the inserted piece unable to satisfy the
	// original narrow eligibility rule (new.start must equal the cached
	// piece), so the very next boundary-adjacent insert cannot coalesce
	// with it — see cache.go and DESIGN.md.
	pt := NewPieceTable([]byte("XY"))
	pt.Insert(1, []byte("a")) // splits "XY" into X | a | Y
	pieces := pt.Pieces()

	pt.Insert(2, []byte("b")) // right after "a", but not cache-eligible
	if pt.Pieces() != pieces+1 {
		t.Fatalf("expected a fresh piece, want %d got %d", pieces+1, pt.Pieces())
	}
	if got := text(pt); got != "XabY" {
		t.Fatalf("got %q", got)
	}
}

func TestDeleteWholePiece(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, world"))
	if err := pt.Delete(0, 7); err != nil {
		t.Fatal(err)
	}
	if got := text(pt); got != "world" {
		t.Fatalf("got %q", got)
	}
}

func TestDeleteMidPiece(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, world"))
	if err := pt.Delete(5, 2); err != nil {
		t.Fatal(err)
	}
	if got := text(pt); got != "Helloworld" {
		t.Fatalf("got %q", got)
	}
}

func TestDeleteAcrossPieces(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, "))
	pt.Snapshot()
	pt.Insert(7, []byte("world"))
	pt.Snapshot()

	if err := pt.Delete(3, 6); err != nil {
		t.Fatal(err)
	}
	if got := text(pt); got != "Helrld" {
		t.Fatalf("got %q", got)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	pt := NewPieceTable([]byte("abc"))
	if err := pt.Delete(2, 5); err != ErrOutOfRange {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

func TestCacheStopsAcrossBufferRollover(t *testing.T) {
	// With a tiny append buffer, a long run of single-byte inserts must
	// eventually spill into a second backingBuffer; the piece that
	// crosses that boundary can no longer be the tail of the new head
	// buffer, so coalescing restarts instead of silently corrupting a
	// piece that spans two buffers.
	pt := NewPieceTableWithMinSize(nil, 4)
	for _, b := range []byte("abcdefgh") {
		if err := pt.Insert(pt.Size(), []byte{b}); err != nil {
			t.Fatal(err)
		}
	}

	if got := text(pt); got != "abcdefgh" {
		t.Fatalf("got %q", got)
	}
	if n := pt.Pieces(); n <= 1 {
		t.Fatalf("expected rollover to produce more than one piece, got %d", n)
	}
}

func TestReplace(t *testing.T) {
	pt := NewPieceTable([]byte("abcdef"))
	if err := pt.Replace(2, []byte("ZZ")); err != nil {
		t.Fatal(err)
	}
	if got := text(pt); got != "abZZef" {
		t.Fatalf("got %q", got)
	}

	if !pt.Undo() {
		t.Fatal("expected undo to succeed")
	}
	if got := text(pt); got != "abcdef" {
		t.Fatalf("replace should undo as a single action, got %q", got)
	}
}

func TestUndoRedo(t *testing.T) {
	pt := NewPieceTable(nil)
	pt.Insert(0, []byte("Hello, "))
	pt.Snapshot()
	pt.Insert(7, []byte("world"))
	pt.Snapshot()

	if pt.UndoDepth() != 2 {
		t.Fatalf("want undo depth 2, got %d", pt.UndoDepth())
	}
	if pt.RedoDepth() != 0 {
		t.Fatalf("want redo depth 0, got %d", pt.RedoDepth())
	}
	if pt.Size() != 12 {
		t.Fatalf("want size 12, got %d", pt.Size())
	}

	if !pt.Undo() {
		t.Fatal("expected undo to succeed")
	}
	if got := text(pt); got != "Hello, " {
		t.Fatalf("got %q", got)
	}
	if pt.UndoDepth() != 1 || pt.RedoDepth() != 1 {
		t.Fatalf("unexpected stack depths: undo=%d redo=%d", pt.UndoDepth(), pt.RedoDepth())
	}

	if !pt.Redo() {
		t.Fatal("expected redo to succeed")
	}
	if got := text(pt); got != "Hello, world" {
		t.Fatalf("got %q", got)
	}

	if !pt.Undo() || !pt.Undo() {
		t.Fatal("expected both actions to undo")
	}
	if got := text(pt); got != "" {
		t.Fatalf("got %q", got)
	}
	if pt.Undo() {
		t.Fatal("expected undo stack to be empty")
	}
}

func TestEditAfterUndoDiscardsRedo(t *testing.T) {
	pt := NewPieceTable(nil)
	pt.Insert(0, []byte("abc"))
	pt.Snapshot()
	pt.Insert(3, []byte("def"))
	pt.Snapshot()

	pt.Undo()
	if pt.RedoDepth() != 1 {
		t.Fatalf("want redo depth 1, got %d", pt.RedoDepth())
	}

	pt.Insert(3, []byte("xyz"))
	if pt.RedoDepth() != 0 {
		t.Fatalf("editing after undo should discard redo, got depth %d", pt.RedoDepth())
	}
	if got := text(pt); got != "abcxyz" {
		t.Fatalf("got %q", got)
	}
}

func TestModifiedAndMarkSaved(t *testing.T) {
	pt := NewPieceTable([]byte("abc"))
	if pt.Modified() {
		t.Fatal("freshly loaded document should not be modified")
	}

	pt.Insert(3, []byte("d"))
	if !pt.Modified() {
		t.Fatal("expected Modified after an edit")
	}

	pt.MarkSaved()
	if pt.Modified() {
		t.Fatal("expected Modified to clear after MarkSaved")
	}

	pt.Undo()
	if !pt.Modified() {
		t.Fatal("expected Modified after undoing past the saved point")
	}
}

func TestSnapshotSeparatesActions(t *testing.T) {
	pt := NewPieceTable(nil)
	pt.Insert(0, []byte("a"))
	pt.Insert(1, []byte("b"))
	if pt.UndoDepth() != 1 {
		t.Fatalf("uninterrupted typing should share one action, got depth %d", pt.UndoDepth())
	}

	pt.Snapshot()
	pt.Insert(2, []byte("c"))
	if pt.UndoDepth() != 2 {
		t.Fatalf("want a new action after Snapshot, got depth %d", pt.UndoDepth())
	}
}
