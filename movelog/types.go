// Package movelog provides the append-only record of solver mutations.
// Every value assignment and candidate removal made while solving is
// appended in the exact order it occurred; the log is never edited or
// reordered, and is used for audit and replay, never for undo.
package movelog

import "fmt"

// Kind distinguishes the two mutation types recorded in a log.
type Kind int

const (
	// Assign records a cell being given its final value.
	Assign Kind = iota
	// RemoveCandidate records a single candidate digit elimination.
	RemoveCandidate
)

// Entry is one immutable log record.
type Entry struct {
	Cell  int  // cell index, 0-80 row-major
	Kind  Kind // Assign or RemoveCandidate
	Digit int  // digit 1-9
}

// String renders the entry in the persistent line format:
// "<cell>=<digit>" for an assignment, "<cell>-=<digit>" for a removal.
func (e Entry) String() string {
	if e.Kind == Assign {
		return fmt.Sprintf("%d=%d", e.Cell, e.Digit)
	}
	return fmt.Sprintf("%d-=%d", e.Cell, e.Digit)
}

// Log is an ordered sequence of entries.
type Log struct {
	entries []Entry
}

// New creates an empty log.
func New() *Log {
	return &Log{entries: make([]Entry, 0, 256)}
}

// Append adds an entry at the end of the log.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of entries appended so far.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log contents in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns the i-th entry.
func (l *Log) At(i int) Entry {
	return l.entries[i]
}

// Assignments returns only the Assign entries, in append order.
func (l *Log) Assignments() []Entry {
	out := make([]Entry, 0)
	for _, e := range l.entries {
		if e.Kind == Assign {
			out = append(out, e)
		}
	}
	return out
}
