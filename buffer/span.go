package buffer

// Span is a contiguous run of pieces, identified by its inclusive
// endpoints and the sum of their lengths. An empty span has no pieces
// of its own; start/end instead hold the two neighbors that bracket
// the attachment point, so a later spanSwap knows where to splice in
// (spec.md §3 "Span", §4.7 "Span Swap").
type Span struct {
	start, end *piece
	len        int
	empty      bool
}

// spanBetween returns the empty span bracketing the gap between prev
// and next — used whenever a mutation has nothing of its own to
// remove (a boundary insert) or nothing left to insert (a delete that
// consumes whole pieces), but still needs to record the neighbors a
// later reverse spanSwap must splice against.
func spanBetween(prev, next *piece) Span {
	return Span{start: prev, end: next, empty: true}
}

// spanOfRun wraps an already-linked, currently-active run of pieces
// from first to last (inclusive) as a Span, computing its length by
// walking the run.
func spanOfRun(first, last *piece) Span {
	total := 0
	for n := first; ; n = n.next {
		total += n.len
		if n == last {
			break
		}
	}
	return Span{start: first, end: last, len: total}
}

// spanOfNew links a freshly allocated, not-yet-attached run of pieces
// to each other (but not to any neighbor) and wraps it as a Span.
func spanOfNew(pieces ...*piece) Span {
	for i := 0; i+1 < len(pieces); i++ {
		pieces[i].next = pieces[i+1]
		pieces[i+1].prev = pieces[i]
	}
	total := 0
	for _, p := range pieces {
		total += p.len
	}
	return Span{start: pieces[0], end: pieces[len(pieces)-1], len: total}
}

// spanSwap replaces old with new in the piece sequence: the single
// commit point for every mutation (spec.md §4.7). It is its own
// inverse when called with its arguments swapped — old must still be
// linked (or, if empty, old.start/old.end must still be the bracketing
// neighbors) as it was at the moment this Change was built.
func spanSwap(old, new Span) {
	switch {
	case old.empty && new.empty:
		return
	case old.empty:
		old.start.next = new.start
		old.end.prev = new.end
		new.start.prev = old.start
		new.end.next = old.end
	case new.empty:
		old.start.prev.next = old.end.next
		old.end.next.prev = old.start.prev
	default:
		prev, next := old.start.prev, old.end.next
		prev.next = new.start
		next.prev = new.end
		new.start.prev = prev
		new.end.next = next
	}
}
