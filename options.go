package fsmx

import (
	"log/slog"

	"github.com/benbjohnson/clock"
)

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithID sets the machine ID used in logs and published transitions.
// Overrides the ID from Config. An empty id is ignored.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}

// WithLogger sets the logger. Successful moves are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the clock used for history and transition timestamps.
func WithClock(c clock.Clock) Option {
	return func(m *Machine) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithHistoryLimit keeps at most n history entries, evicting the oldest.
// n <= 0 keeps history unbounded, which is the default.
func WithHistoryLimit(n int) Option {
	return func(m *Machine) {
		m.historyLimit = n
	}
}

// WithPublisher sets the Publisher notified after every successful move.
func WithPublisher(p Publisher) Option {
	return func(m *Machine) {
		m.publisher = p
	}
}
