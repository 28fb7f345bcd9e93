package core

import (
	"slices"
	"time"

	"github.com/benbjohnson/clock"
)

// Entry is a single visited state.
type Entry struct {
	State string    `json:"state" yaml:"state"`
	At    time.Time `json:"at" yaml:"at"`
}

// History is a linear undo/redo log of visited states.
//
// The cursor counts how many undo steps separate the machine from the
// newest entry: entries[len-1-cursor] is the current position. Entries
// newer than the cursor form the redo path, which is discarded as soon
// as a new state is recorded.
type History struct {
	entries      []Entry
	cursor       int
	redoDisabled bool
	capacity     int
	clock        clock.Clock
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithCapacity bounds the number of kept entries. When a record exceeds
// the bound the oldest entries are evicted. n <= 0 means unbounded.
func WithCapacity(n int) HistoryOption {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// WithClock sets the clock used to timestamp entries.
func WithClock(c clock.Clock) HistoryOption {
	return func(h *History) {
		if c != nil {
			h.clock = c
		}
	}
}

// NewHistory creates a History containing only initial.
func NewHistory(initial string, opts ...HistoryOption) *History {
	h := &History{clock: clock.New()}
	for _, opt := range opts {
		opt(h)
	}
	h.Reset(initial)
	return h
}

// Record appends state as the newest entry and disables redo.
// Entries beyond the cursor are dropped first, so recording after an
// undo starts a new branch.
func (h *History) Record(state string) {
	if h.cursor > 0 {
		h.entries = h.entries[:len(h.entries)-h.cursor]
		h.cursor = 0
	}
	h.entries = append(h.entries, Entry{State: state, At: h.clock.Now()})
	h.redoDisabled = true

	if h.capacity > 0 && len(h.entries) > h.capacity {
		h.entries = slices.Delete(h.entries, 0, len(h.entries)-h.capacity)
	}
}

// Undo steps one entry back and returns the state found there.
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	h.cursor++
	h.redoDisabled = false
	return h.current(), true
}

// Redo steps one entry forward and returns the state found there.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	h.cursor--
	return h.current(), true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.entries)-h.cursor > 1
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return !h.redoDisabled && h.cursor > 0
}

// Clear removes every entry, including the current one.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = 0
}

// Reset replaces the log with a single entry for state.
func (h *History) Reset(state string) {
	h.entries = []Entry{{State: state, At: h.clock.Now()}}
	h.cursor = 0
	h.redoDisabled = true
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []Entry {
	return slices.Clone(h.entries)
}

// Cursor returns the number of undo steps currently applied.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) current() string {
	return h.entries[len(h.entries)-1-h.cursor].State
}
