package primitives

import "maps"

// StateConfig defines a single state and its outgoing transition table.
// The name is carried by the enclosing states mapping, not by the state body.
type StateConfig struct {
	Name        string            `json:"-" yaml:"-"`
	Transitions map[string]string `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// NewStateConfig creates a StateConfig with an empty transition table.
func NewStateConfig(name string) *StateConfig {
	return &StateConfig{
		Name:        name,
		Transitions: make(map[string]string),
	}
}

// Transition adds or replaces the target for event.
// Returns the state for fluent chaining: s.Transition("a", "x").Transition("b", "y").
func (s *StateConfig) Transition(event, target string) *StateConfig {
	if s.Transitions == nil {
		s.Transitions = make(map[string]string)
	}
	s.Transitions[event] = target
	return s
}

// Target returns the target state for event.
func (s *StateConfig) Target(event string) (string, bool) {
	target, ok := s.Transitions[event]
	return target, ok
}

// Clone returns a deep copy.
func (s *StateConfig) Clone() *StateConfig {
	return &StateConfig{
		Name:        s.Name,
		Transitions: maps.Clone(s.Transitions),
	}
}
