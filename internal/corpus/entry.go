package corpus

import "errors"

// Corpus errors
var (
	ErrNotPending = errors.New("entry is not in the pending list")
	ErrNotUsed    = errors.New("entry is not in the used list")
)

// Entry is a single answer in the corpus. Display is the human-readable text
// shown to the players; Match is the normalized form used for duplicate and
// validity checks.
type Entry struct {
	Display string
	Match   string
}

// Location reports where a lookup found its match.
type Location int

const (
	NotFound Location = iota
	InPending
	InUsed
)

// List holds a session's answers split into pending (not yet played) and used
// (already played, in play order). Match strings are unique across both
// halves: an entry moves from pending to used, it is never duplicated.
type List struct {
	Pending []Entry
	Used    []Entry
}

// Lookup searches pending then used for an entry whose Match equals match.
// Matching is on the normalized form only, never on Display.
func (l *List) Lookup(match string) (Entry, Location) {
	for _, e := range l.Pending {
		if e.Match == match {
			return e, InPending
		}
	}
	for _, e := range l.Used {
		if e.Match == match {
			return e, InUsed
		}
	}
	return Entry{}, NotFound
}

// MarkUsed moves e from pending to the end of used. Returns ErrNotPending if
// e is not currently pending, which signals a caller bug rather than a game
// rule rejection.
func (l *List) MarkUsed(e Entry) error {
	for i, p := range l.Pending {
		if p.Match == e.Match {
			l.Pending = append(l.Pending[:i], l.Pending[i+1:]...)
			l.Used = append(l.Used, p)
			return nil
		}
	}
	return ErrNotPending
}

// Unmark moves the used entry with the given display text back to the end of
// pending. Host correction affordance for a mistakenly accepted answer.
func (l *List) Unmark(display string) error {
	for i, u := range l.Used {
		if u.Display == display {
			l.Used = append(l.Used[:i], l.Used[i+1:]...)
			l.Pending = append(l.Pending, u)
			return nil
		}
	}
	return ErrNotUsed
}

// Remaining returns the number of pending entries.
func (l *List) Remaining() int {
	return len(l.Pending)
}

// UsedCount returns the number of used entries.
func (l *List) UsedCount() int {
	return len(l.Used)
}

// Len returns the total entry count.
func (l *List) Len() int {
	return len(l.Pending) + len(l.Used)
}
