// MachineConfig represents the top-level configuration of a machine:
// an optional ID, the initial state name and the ordered list of states.
// Validation ensures Initial presence, unique state names and that Initial
// refers to a configured state.

package primitives

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid machine config")

// MachineConfig defines the complete machine configuration.
//
// In YAML the states are a mapping from state name to state body:
//
//	initial: normal
//	states:
//	  normal:
//	    transitions:
//	      study: busy
//	  busy: {}
type MachineConfig struct {
	ID      string
	Initial string
	States  []*StateConfig
}

// Validate checks the configuration:
// - Non-empty Initial
// - At least one state
// - Non-empty, unique state names
// - Initial exists in States
func (m *MachineConfig) Validate() error {
	if m.Initial == "" {
		return fmt.Errorf("%w: initial state is required", ErrInvalidConfig)
	}
	if len(m.States) == 0 {
		return fmt.Errorf("%w: states cannot be empty", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(m.States))
	for i, s := range m.States {
		if s == nil {
			return fmt.Errorf("%w: state %d is nil", ErrInvalidConfig, i)
		}
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: state %d has an empty name", ErrInvalidConfig, i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate state %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	if _, ok := seen[m.Initial]; !ok {
		return fmt.Errorf("%w: initial state %q not found in states", ErrInvalidConfig, m.Initial)
	}
	return nil
}

// FindState returns the state with the given name.
func (m *MachineConfig) FindState(name string) (*StateConfig, error) {
	for _, s := range m.States {
		if s != nil && s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("state %q not found", name)
}

// Clone returns a deep copy of the configuration.
func (m *MachineConfig) Clone() MachineConfig {
	out := MachineConfig{ID: m.ID, Initial: m.Initial}
	if m.States != nil {
		out.States = make([]*StateConfig, 0, len(m.States))
		for _, s := range m.States {
			if s == nil {
				out.States = append(out.States, nil)
				continue
			}
			out.States = append(out.States, s.Clone())
		}
	}
	return out
}

// UnmarshalYAML decodes the states mapping in document order.
func (m *MachineConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ID      string    `yaml:"id"`
		Initial string    `yaml:"initial"`
		States  yaml.Node `yaml:"states"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	m.ID = raw.ID
	m.Initial = raw.Initial
	m.States = nil

	if isNull(&raw.States) {
		return nil
	}
	if raw.States.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: states must be a mapping of state name to state", raw.States.Line)
	}

	content := raw.States.Content
	m.States = make([]*StateConfig, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		key, body := content[i], content[i+1]
		s := &StateConfig{Name: key.Value}
		if !isNull(body) {
			if err := body.Decode(s); err != nil {
				return fmt.Errorf("state %q: %w", key.Value, err)
			}
		}
		m.States = append(m.States, s)
	}
	return nil
}

// MarshalYAML encodes the states mapping in configuration order.
func (m MachineConfig) MarshalYAML() (any, error) {
	states := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range m.States {
		if s == nil {
			continue
		}
		body := &yaml.Node{}
		if err := body.Encode(s); err != nil {
			return nil, fmt.Errorf("state %q: %w", s.Name, err)
		}
		states.Content = append(states.Content, strNode(s.Name), body)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	if m.ID != "" {
		root.Content = append(root.Content, strNode("id"), strNode(m.ID))
	}
	root.Content = append(root.Content,
		strNode("initial"), strNode(m.Initial),
		strNode("states"), states,
	)
	return root, nil
}

// Parse decodes a YAML (or JSON) document and validates the result.
func Parse(data []byte) (MachineConfig, error) {
	var cfg MachineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MachineConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg MachineConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
