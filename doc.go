// Package fsmx provides a configurable finite-state machine with linear
// undo/redo history.
//
// A machine is built from a Config: the initial state and, per state, a
// table mapping event names to target states. The machine moves either
// directly (ChangeState) or along the active state's rule for an event
// (Trigger). Every successful move is recorded in history.
//
// # Usage
//
//	cfg, err := fsmx.ParseConfig([]byte(`
//	initial: normal
//	states:
//	  normal:
//	    transitions:
//	      study: busy
//	  busy:
//	    transitions:
//	      get_tired: sleeping
//	  sleeping: {}
//	`))
//	if err != nil {
//	    return err
//	}
//	m, err := fsmx.New(cfg)
//	if err != nil {
//	    return err
//	}
//	_ = m.Trigger("study")         // busy
//	_ = m.ChangeState("sleeping")  // sleeping
//	m.Undo()                       // busy
//	m.Redo()                       // sleeping
//
// The same configuration can be assembled in code:
//
//	m, err := fsmx.NewBuilder("normal").
//	    State("normal").On("study", "busy").
//	    State("busy").On("get_tired", "sleeping").
//	    State("sleeping").
//	    Build()
//
// # History
//
// History is a log of visited states plus a cursor counting how many undo
// steps are applied. Undo walks back one entry and enables redo; Redo walks
// forward again. Any new move after an undo discards the undone entries, so
// redo is never available right after ChangeState or Trigger. Reset restarts
// history from the configured initial state. WithHistoryLimit bounds the log.
//
// # Error Handling
//
// ChangeState and Trigger return typed errors and leave the machine
// untouched on failure:
//
//	if errors.Is(err, fsmx.ErrUnknownState) { /* ... */ }
//	if errors.Is(err, fsmx.ErrNoSuchTransition) { /* ... */ }
//
// Undo and Redo never fail; they return false when unavailable.
//
// # Concurrency
//
// A Machine is owned by a single goroutine and performs no locking.
package fsmx
