package buffer

import "testing"

func TestStoreAppendsToHead(t *testing.T) {
	s := NewStore(nil)

	r1, err := s.store([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.store([]byte(" world"))
	if err != nil {
		t.Fatal(err)
	}

	if r1.buf != r2.buf {
		t.Fatal("expected both refs to share the same head buffer while it has room")
	}
	if string(r1.bytes()) != "hello" {
		t.Fatalf("got %q", r1.bytes())
	}
	if string(r2.bytes()) != " world" {
		t.Fatalf("got %q", r2.bytes())
	}
}

func TestStoreAllocatesNewBufferWhenFull(t *testing.T) {
	s := NewStore(nil)
	s.head = &backingBuffer{content: make([]byte, 4)}

	r1, err := s.store([]byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.store([]byte("cdef"))
	if err != nil {
		t.Fatal(err)
	}

	if r1.buf == r2.buf {
		t.Fatal("expected a fresh buffer once the head is full")
	}
	if r2.buf.next != r1.buf {
		t.Fatal("expected new head to chain to the previous one")
	}
}

func TestOriginalBufferIsReadonly(t *testing.T) {
	s := NewStore([]byte("seed"))
	if !s.Original().readonly {
		t.Fatal("expected the original buffer to be marked readonly")
	}
	if s.Head() != nil {
		t.Fatal("expected no head buffer before the first store()")
	}
}
