// Package primitives provides the configuration data structures for the
// fsmx engine.
//
// A MachineConfig names the initial state and lists every state together
// with its event table. Configuration is decoded with gopkg.in/yaml.v3 so
// that state order survives the round trip; JSON documents are accepted
// by the same decoder.
//
// Core invariants:
// - State names are unique and non-empty
// - Initial names a configured state
// - Configuration order is the order states appear in the document
//
// Transition targets are deliberately not checked here. The machine checks
// existence when a transition is applied.
package primitives
