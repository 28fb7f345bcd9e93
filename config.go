package fsmx

import (
	"fmt"
	"os"

	"github.com/comalice/fsmx/internal/primitives"
)

// Config is the machine configuration: an optional ID, the initial state
// and the ordered list of states.
type Config = primitives.MachineConfig

// StateConfig is a single state and its event table.
type StateConfig = primitives.StateConfig

// NewStateConfig creates a StateConfig with an empty event table.
func NewStateConfig(name string) *StateConfig {
	return primitives.NewStateConfig(name)
}

// ParseConfig decodes a YAML or JSON configuration document.
// State order in the document becomes the order reported by Machine.States.
func ParseConfig(data []byte) (Config, error) {
	return primitives.Parse(data)
}

// LoadConfigFile reads and parses the configuration stored at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML, keeping state order.
func MarshalConfig(cfg Config) ([]byte, error) {
	return primitives.Marshal(cfg)
}
