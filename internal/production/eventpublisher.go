// Package production provides Publisher implementations for machine transitions.
package production

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/comalice/fsmx"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// ChannelPublisher forwards transitions to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch      chan<- fsmx.Transition
	dropped atomic.Uint64
	closed  atomic.Bool
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- fsmx.Transition) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(t fsmx.Transition) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	select {
	case p.ch <- t:
	default:
		p.dropped.Add(1)
	}
	return nil
}

// Dropped returns how many transitions were dropped because the channel was full.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the output channel. Safe to call more than once.
func (p *ChannelPublisher) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		close(p.ch)
	}
	return nil
}

// LogPublisher writes every transition to a slog.Logger.
type LogPublisher struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogPublisher creates a LogPublisher logging at info level.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger, level: slog.LevelInfo}
}

// WithLevel returns a copy logging at level.
func (p *LogPublisher) WithLevel(level slog.Level) *LogPublisher {
	return &LogPublisher{logger: p.logger, level: level}
}

func (p *LogPublisher) Publish(t fsmx.Transition) error {
	attrs := []slog.Attr{
		slog.String("machine_id", t.MachineID),
		slog.String("kind", string(t.Kind)),
		slog.String("from", t.From),
		slog.String("to", t.To),
	}
	if t.Event != "" {
		attrs = append(attrs, slog.String("event", t.Event))
	}
	p.logger.LogAttrs(context.Background(), p.level, "transition", attrs...)
	return nil
}

// Fanout publishes to every publisher in order and joins their errors.
type Fanout []fsmx.Publisher

func (f Fanout) Publish(t fsmx.Transition) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
