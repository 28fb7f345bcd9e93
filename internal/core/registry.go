// Package core provides the State Registry and History Manager of the fsmx engine.
// Both are plain synchronous data structures owned by a single Machine.
// Neither type is safe for concurrent use.
package core

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/comalice/fsmx/internal/primitives"
)

var ErrDuplicateState = errors.New("duplicate state")

// Registry is the immutable record of configured states and their event tables.
type Registry struct {
	order  []string
	tables map[string]map[string]string
}

// NewRegistry builds a Registry from states, keeping their order.
// Transition tables are copied so later changes to states are not observed.
func NewRegistry(states []*primitives.StateConfig) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(states)),
		tables: make(map[string]map[string]string, len(states)),
	}
	for i, s := range states {
		if s == nil || s.Name == "" {
			return nil, fmt.Errorf("state %d has no name", i)
		}
		if _, exists := r.tables[s.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s.Name)
		}
		table := maps.Clone(s.Transitions)
		if table == nil {
			table = map[string]string{}
		}
		r.tables[s.Name] = table
		r.order = append(r.order, s.Name)
	}
	return r, nil
}

// Exists reports whether name is a configured state.
func (r *Registry) Exists(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// Target returns the state that event leads to from state.
// The second result is false when state is unknown or has no rule for event.
func (r *Registry) Target(state, event string) (string, bool) {
	target, ok := r.tables[state][event]
	return target, ok
}

// Names returns all state names in configuration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// NamesWithEvent returns the states whose table has a rule for event,
// in configuration order.
func (r *Registry) NamesWithEvent(event string) []string {
	names := make([]string, 0)
	for _, name := range r.order {
		if _, ok := r.tables[name][event]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Events returns the events defined for state, sorted.
func (r *Registry) Events(state string) []string {
	return slices.Sorted(maps.Keys(r.tables[state]))
}

// Len returns the number of configured states.
func (r *Registry) Len() int {
	return len(r.order)
}
