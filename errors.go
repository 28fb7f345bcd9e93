package fsmx

import (
	"errors"
	"fmt"

	"github.com/comalice/fsmx/internal/primitives"
)

var (
	// ErrUnknownState matches every *UnknownStateError.
	ErrUnknownState = errors.New("unknown state")
	// ErrNoSuchTransition matches every *NoTransitionError.
	ErrNoSuchTransition = errors.New("no such transition")
	// ErrInvalidConfig is wrapped by configuration and construction errors.
	ErrInvalidConfig = primitives.ErrInvalidConfig
)

// UnknownStateError reports a state name that is not configured.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state '%s'", e.State)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// NoTransitionError reports an event that the current state has no rule for.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from state '%s' for event '%s'", e.State, e.Event)
}

func (e *NoTransitionError) Is(target error) bool {
	return target == ErrNoSuchTransition
}

func IsUnknownStateError(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
