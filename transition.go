package fsmx

import "time"

// Kind names the operation that moved the machine.
type Kind string

const (
	KindChange  Kind = "change"
	KindTrigger Kind = "trigger"
	KindUndo    Kind = "undo"
	KindRedo    Kind = "redo"
	KindReset   Kind = "reset"
)

// Transition describes one completed move of a machine.
// Event is set only for KindTrigger.
type Transition struct {
	MachineID string    `json:"machineID" yaml:"machineID"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	Event     string    `json:"event,omitempty" yaml:"event,omitempty"`
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Publisher receives a Transition after every successful move.
// Publish runs synchronously inside the machine operation; an error is
// logged and never undoes the move.
type Publisher interface {
	Publish(t Transition) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(t Transition) error

func (f PublisherFunc) Publish(t Transition) error {
	return f(t)
}
