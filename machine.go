package fsmx

import (
	"fmt"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/comalice/fsmx/internal/core"
)

// HistoryEntry is a single visited state with the time it was recorded.
type HistoryEntry = core.Entry

// Machine tracks the active state of a configured FSM and keeps an undo/redo
// history of the states it moved through.
//
// A Machine is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access.
type Machine struct {
	id      string
	initial string
	current string

	registry *core.Registry
	history  *core.History

	logger       *slog.Logger
	clock        clock.Clock
	publisher    Publisher
	historyLimit int
}

// New creates a Machine positioned at cfg.Initial with a history holding
// only that state. cfg is copied; later changes to it are not observed.
func New(cfg Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registry, err := core.NewRegistry(cfg.States)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m := &Machine{
		id:       cfg.ID,
		initial:  cfg.Initial,
		current:  cfg.Initial,
		registry: registry,
		logger:   slog.New(slog.DiscardHandler),
		clock:    clock.New(),
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}

	for _, opt := range opts {
		opt(m)
	}

	m.history = core.NewHistory(m.initial,
		core.WithClock(m.clock),
		core.WithCapacity(m.historyLimit),
	)
	m.logger = m.logger.With(slog.String("machine_id", m.id))

	return m, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config, opts ...Option) *Machine {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create machine: %v", err))
	}
	return m
}

// ID returns the machine ID.
func (m *Machine) ID() string {
	return m.id
}

// Initial returns the configured initial state.
func (m *Machine) Initial() string {
	return m.initial
}

// State returns the active state.
func (m *Machine) State() string {
	return m.current
}

// ChangeState moves directly to target.
// Returns *UnknownStateError, leaving the machine untouched, if target is
// not configured.
func (m *Machine) ChangeState(target string) error {
	if !m.registry.Exists(target) {
		return &UnknownStateError{State: target}
	}
	m.apply(KindChange, "", target)
	return nil
}

// Trigger moves along the active state's rule for event.
// Returns *NoTransitionError if the active state has no rule for event, and
// *UnknownStateError if the rule points at a state that is not configured.
// The machine is untouched on error.
func (m *Machine) Trigger(event string) error {
	target, ok := m.registry.Target(m.current, event)
	if !ok {
		return &NoTransitionError{State: m.current, Event: event}
	}
	if !m.registry.Exists(target) {
		return &UnknownStateError{State: target}
	}
	m.apply(KindTrigger, event, target)
	return nil
}

// Can reports whether Trigger(event) would succeed from the active state.
func (m *Machine) Can(event string) bool {
	target, ok := m.registry.Target(m.current, event)
	return ok && m.registry.Exists(target)
}

// Events returns the events the active state has rules for, sorted.
func (m *Machine) Events() []string {
	return m.registry.Events(m.current)
}

// Reset returns to the configured initial state and restarts history from it.
func (m *Machine) Reset() {
	from := m.current
	m.current = m.initial
	m.history.Reset(m.initial)
	m.notify(KindReset, "", from, m.initial)
}

// States returns every configured state in configuration order.
func (m *Machine) States() []string {
	return m.registry.Names()
}

// StatesWithEvent returns the states that have a rule for event, in
// configuration order.
func (m *Machine) StatesWithEvent(event string) []string {
	return m.registry.NamesWithEvent(event)
}

// Undo moves back to the previous state in history.
// Returns false, changing nothing, when there is nothing to undo.
func (m *Machine) Undo() bool {
	state, ok := m.history.Undo()
	if !ok {
		return false
	}
	from := m.current
	m.current = state
	m.notify(KindUndo, "", from, state)
	return true
}

// Redo moves forward to the state the last Undo left.
// Returns false, changing nothing, when redo is unavailable: nothing was
// undone, or a new move has been made since.
func (m *Machine) Redo() bool {
	state, ok := m.history.Redo()
	if !ok {
		return false
	}
	from := m.current
	m.current = state
	m.notify(KindRedo, "", from, state)
	return true
}

// CanUndo reports whether Undo would succeed.
func (m *Machine) CanUndo() bool {
	return m.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (m *Machine) CanRedo() bool {
	return m.history.CanRedo()
}

// ClearHistory empties history, including the entry for the active state.
// The active state is kept. Undo reports false until two more moves are made.
func (m *Machine) ClearHistory() {
	m.history.Clear()
	m.logger.Debug("history cleared", slog.String("state", m.current))
}

// History returns a copy of the history, oldest first.
func (m *Machine) History() []HistoryEntry {
	return m.history.Entries()
}

// Cursor returns how many undo steps are currently applied.
func (m *Machine) Cursor() int {
	return m.history.Cursor()
}

func (m *Machine) apply(kind Kind, event, target string) {
	from := m.current
	m.current = target
	m.history.Record(target)
	m.notify(kind, event, from, target)
}

func (m *Machine) notify(kind Kind, event, from, to string) {
	m.logger.Debug("state changed",
		slog.String("kind", string(kind)),
		slog.String("event", event),
		slog.String("from", from),
		slog.String("to", to),
	)

	if m.publisher == nil {
		return
	}
	t := Transition{
		MachineID: m.id,
		Kind:      kind,
		Event:     event,
		From:      from,
		To:        to,
		Timestamp: m.clock.Now(),
	}
	if err := m.publisher.Publish(t); err != nil {
		m.logger.Warn("publish transition failed", slog.Any("error", err))
	}
}
