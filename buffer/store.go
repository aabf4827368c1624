package buffer

// BufferMin is the minimum capacity of a heap-allocated append buffer.
// A store() call asking for more than this gets exactly what it asked
// for; anything smaller gets a buffer of this size so that a long run
// of small edits doesn't allocate a new buffer for each one.
const BufferMin = 1 << 20 // 1 MiB

// backingBuffer is an append-only byte arena. Bytes written to
// [0, used) are never overwritten, except by the append cache, which
// may only rewrite bytes that belong solely to the cache piece and
// only within the head (most recently allocated) append buffer.
//
// The original buffer (holding the file mapped at Load time) is a
// backingBuffer with used == len(content) and is never appended to;
// readonly is true so store() never selects it as a destination.
type backingBuffer struct {
	content  []byte
	used     int
	readonly bool
	next     *backingBuffer
}

func newAppendBuffer(capacity int) *backingBuffer {
	if capacity < BufferMin {
		capacity = BufferMin
	}
	return &backingBuffer{content: make([]byte, capacity)}
}

func newOriginalBuffer(content []byte) *backingBuffer {
	return &backingBuffer{content: content, used: len(content), readonly: true}
}

func (b *backingBuffer) capacity() int {
	return len(b.content)
}

func (b *backingBuffer) free() int {
	return len(b.content) - b.used
}

// ref identifies a byte range within a specific backingBuffer.
type ref struct {
	buf *backingBuffer
	off int
	len int
}

func (r ref) bytes() []byte {
	return r.buf.content[r.off : r.off+r.len]
}

// Store owns the chain of append buffers plus, when the document was
// loaded from a file, the read-only original buffer. Append buffers
// are linked in allocation order, most recent first; store() always
// writes to the head.
type Store struct {
	original *backingBuffer
	head     *backingBuffer
	minSize  int
}

// NewStore creates a Store. original may be nil for an empty document;
// otherwise it is the memory-mapped content of the loaded file. Append
// buffers are allocated with the BufferMin minimum; use
// NewStoreWithMinSize to override it.
func NewStore(original []byte) *Store {
	return NewStoreWithMinSize(original, BufferMin)
}

// NewStoreWithMinSize is NewStore with a caller-chosen minimum append
// buffer capacity, plumbed through from editor.WithAppendBufferSize.
func NewStoreWithMinSize(original []byte, minSize int) *Store {
	s := &Store{minSize: minSize}
	if original != nil {
		s.original = newOriginalBuffer(original)
	}
	return s
}

// Original returns the read-only original buffer, or nil if the
// document was not loaded from a file.
func (s *Store) Original() *backingBuffer {
	return s.original
}

// Head returns the append buffer currently accepting writes, or nil
// if nothing has been appended yet.
func (s *Store) Head() *backingBuffer {
	return s.head
}

// BufferCount returns the number of append buffers currently
// allocated, for Stats().
func (s *Store) BufferCount() int {
	n := 0
	for b := s.head; b != nil; b = b.next {
		n++
	}
	return n
}

// store copies text into the head append buffer if it has room,
// allocating a fresh one otherwise, and returns a ref to the copy.
// store never fails in this implementation (see DESIGN.md on
// ErrOutOfMemory), but returns an error to keep the documented
// contract of spec.md §4.2 satisfiable by callers.
func (s *Store) store(text []byte) (ref, error) {
	if len(text) == 0 {
		return ref{}, nil
	}

	if s.head == nil || s.head.free() < len(text) {
		s.head = &backingBuffer{content: make([]byte, max(len(text), s.minSize)), next: s.head}
	}

	off := s.head.used
	copy(s.head.content[off:], text)
	s.head.used += len(text)

	return ref{buf: s.head, off: off, len: len(text)}, nil
}
