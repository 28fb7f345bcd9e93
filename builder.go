package fsmx

// Builder provides a fluent API for constructing a Config by state name.
// States are kept in the order they are first mentioned.
type Builder struct {
	id      string
	initial string
	order   []*StateConfig
	states  map[string]*StateConfig
}

// StateBuilder provides fluent methods for configuring individual states.
type StateBuilder struct {
	b     *Builder
	state *StateConfig
}

// NewBuilder creates a new builder whose machines start in initial.
func NewBuilder(initial string) *Builder {
	return &Builder{
		initial: initial,
		states:  make(map[string]*StateConfig),
	}
}

// ID sets the machine ID stored in the built Config.
func (b *Builder) ID(id string) *Builder {
	b.id = id
	return b
}

// State creates or retrieves a state by name.
func (b *Builder) State(name string) *StateBuilder {
	s, ok := b.states[name]
	if !ok {
		s = NewStateConfig(name)
		b.states[name] = s
		b.order = append(b.order, s)
	}
	return &StateBuilder{b: b, state: s}
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() Config {
	cfg := Config{ID: b.id, Initial: b.initial, States: b.order}
	return cfg.Clone()
}

// Build validates the configuration and constructs the Machine.
func (b *Builder) Build(opts ...Option) (*Machine, error) {
	return New(b.Config(), opts...)
}

// On adds a rule: event moves this state to target.
// Target states are not created implicitly.
func (sb *StateBuilder) On(event, target string) *StateBuilder {
	sb.state.Transition(event, target)
	return sb
}

// State switches to another state on the same builder.
func (sb *StateBuilder) State(name string) *StateBuilder {
	return sb.b.State(name)
}

// Build is shorthand for calling Build on the owning Builder.
func (sb *StateBuilder) Build(opts ...Option) (*Machine, error) {
	return sb.b.Build(opts...)
}
