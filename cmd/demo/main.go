package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/config"
	"github.com/comalice/fsmx/internal/logger"
	"github.com/comalice/fsmx/internal/production"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

// step is one scripted call against the machine.
type step struct {
	name string
	do   func(m *fsmx.Machine) (string, error)
}

func trigger(event string) step {
	return step{
		name: fmt.Sprintf("trigger(%s)", event),
		do:   func(m *fsmx.Machine) (string, error) { return "", m.Trigger(event) },
	}
}

func changeState(state string) step {
	return step{
		name: fmt.Sprintf("changeState(%s)", state),
		do:   func(m *fsmx.Machine) (string, error) { return "", m.ChangeState(state) },
	}
}

func undo() step {
	return step{
		name: "undo()",
		do:   func(m *fsmx.Machine) (string, error) { return fmt.Sprint(m.Undo()), nil },
	}
}

func redo() step {
	return step{
		name: "redo()",
		do:   func(m *fsmx.Machine) (string, error) { return fmt.Sprint(m.Redo()), nil },
	}
}

var script = []step{
	trigger("study"),
	changeState("sleeping"),
	undo(),
	undo(),
	undo(),
	redo(),
	redo(),
	redo(),
	trigger("get_hungry"),
	trigger("study"),
	changeState("dreaming"),
	{name: "reset()", do: func(m *fsmx.Machine) (string, error) { m.Reset(); return "", nil }},
}

func run(cfg config.Config, out io.Writer) error {
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("service", "fsmx-demo")),
	)

	machineCfg, err := fsmx.LoadConfigFile(cfg.MachineConfigPath)
	if err != nil {
		return err
	}

	transitions := make(chan fsmx.Transition, len(script))
	channel := production.NewChannelPublisher(transitions)
	defer channel.Close()

	m, err := fsmx.New(machineCfg,
		fsmx.WithID(cfg.MachineID),
		fsmx.WithLogger(log),
		fsmx.WithHistoryLimit(cfg.HistoryLimit),
		fsmx.WithPublisher(production.Fanout{channel, production.NewLogPublisher(log)}),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "machine %s starts in %s\n", m.ID(), m.State())
	fmt.Fprintf(out, "states: %v\n", m.States())

	for _, s := range script {
		result, err := s.do(m)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%-22s -> error: %v (still %s)\n", s.name, err, m.State())
		case result != "":
			fmt.Fprintf(out, "%-22s -> %s, state %s\n", s.name, result, m.State())
		default:
			fmt.Fprintf(out, "%-22s -> state %s\n", s.name, m.State())
		}
	}

	fmt.Fprintf(out, "states with get_hungry: %v\n", m.StatesWithEvent("get_hungry"))

	// Drain what the machine published
	moves := 0
	for len(transitions) > 0 {
		<-transitions
		moves++
	}
	fmt.Fprintf(out, "published %d transitions, dropped %d\n", moves, channel.Dropped())
	return nil
}
