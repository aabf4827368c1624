package buffer

import (
	"time"

	"golang.org/x/exp/slices"
)

// Change records one old-span/new-span replacement. old.start.prev ==
// new.start.prev and old.end.next == new.end.next at construction
// time (spec.md §3 "Change"); spanSwap relies on that, so a Change can
// only be swapped while its neighbours are linked as they were when it
// was built. That is why undo walks an Action's Changes newest first
// and redo walks them oldest first (see Action below).
type Change struct {
	old, new Span
}

// Action groups the Changes performed since the last Snapshot. changes
// is stored most-recent-first: Append prepends, so index 0 is always
// the most recently made Change.
type Action struct {
	changes []*Change
	time    time.Time
}

func newAction() *Action {
	return &Action{time: time.Now()}
}

// append records a Change as the most recent one in this Action,
// following the slices.Insert bookkeeping pattern the teacher uses to
// keep lineindex.go's line list in order (buffer/lineindex.go).
func (a *Action) append(c *Change) {
	a.changes = slices.Insert(a.changes, 0, c)
}

func (a *Action) empty() bool {
	return len(a.changes) == 0
}

// undo applies the inverse of every Change in this Action, most
// recent first — spec.md §4.7/§4.8.
func (a *Action) undo() {
	for _, c := range a.changes {
		spanSwap(c.new, c.old)
	}
}

// redo re-applies every Change in this Action, oldest first: the
// reverse of undo's walk, so each Change is swapped back in against
// the same neighbours it was built against.
func (a *Action) redo() {
	for i := len(a.changes) - 1; i >= 0; i-- {
		c := a.changes[i]
		spanSwap(c.old, c.new)
	}
}

// actionStack is the LIFO undo/redo stack of Actions, following the
// push/pop/clear shape of the teacher's lineOpStack
// (buffer/lineindex.go), generalized from line-ops to Actions.
type actionStack struct {
	actions []*Action
}

func (s *actionStack) push(a *Action) {
	s.actions = append(s.actions, a)
}

func (s *actionStack) pop() *Action {
	if len(s.actions) == 0 {
		return nil
	}
	a := s.actions[len(s.actions)-1]
	s.actions = s.actions[:len(s.actions)-1]
	return a
}

func (s *actionStack) top() *Action {
	if len(s.actions) == 0 {
		return nil
	}
	return s.actions[len(s.actions)-1]
}

func (s *actionStack) clear() {
	s.actions = s.actions[:0]
}

func (s *actionStack) depth() int {
	return len(s.actions)
}
