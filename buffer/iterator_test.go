package buffer

import "testing"

func TestIterate(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, "))
	pt.Insert(7, []byte("world"))

	var got []byte
	err := pt.Iterate(0, func(b []byte) bool {
		got = append(got, b...)
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello, world" {
		t.Fatalf("got %q", got)
	}
}

func TestIterateFromMidpoint(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, world"))

	var got []byte
	pt.Iterate(7, func(b []byte) bool {
		got = append(got, b...)
		return true
	})
	if string(got) != "world" {
		t.Fatalf("got %q", got)
	}
}

func TestIterateStopsEarly(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, "))
	pt.Insert(7, []byte("world"))

	calls := 0
	pt.Iterate(0, func(b []byte) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Fatalf("want exactly one call, got %d", calls)
	}
}

func TestIteratorCursor(t *testing.T) {
	pt := NewPieceTable([]byte("Hello, "))
	pt.Insert(7, []byte("world"))

	it := pt.NewIterator()
	if it.Valid() {
		t.Fatal("fresh iterator should start before the first piece")
	}

	var got []byte
	for it.Next() {
		got = append(got, it.Get()...)
	}
	if string(got) != "Hello, world" {
		t.Fatalf("got %q", got)
	}

	if it.Next() {
		t.Fatal("expected no more pieces past the end")
	}
	if !it.Prev() {
		t.Fatal("expected to step back onto the last piece")
	}
	if string(it.Get()) != "world" {
		t.Fatalf("got %q", it.Get())
	}
}

func TestIterateOutOfRange(t *testing.T) {
	pt := NewPieceTable([]byte("abc"))
	if err := pt.Iterate(4, func([]byte) bool { return true }); err != ErrOutOfRange {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}
