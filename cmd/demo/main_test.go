package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx/internal/config"
)

func demoConfig() config.Config {
	return config.Config{
		MachineConfigPath: filepath.Join("..", "..", "examples", "student.yaml"),
		MachineID:         "demo",
		LogLevel:          slog.LevelError,
		LogFormat:         "text",
	}
}

func TestRunStudentScript(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(demoConfig(), &out))

	got := out.String()
	assert.Contains(t, got, "machine demo starts in normal")
	assert.Contains(t, got, "states: [normal busy hungry sleeping]")
	assert.Contains(t, got, "trigger(study)         -> state busy")
	assert.Contains(t, got, "changeState(sleeping)  -> state sleeping")
	assert.Contains(t, got, "undo()                 -> false, state normal")
	assert.Contains(t, got, "redo()                 -> false, state sleeping")
	assert.Contains(t, got, "trigger(study)         -> error: no transition from state 'hungry' for event 'study' (still hungry)")
	assert.Contains(t, got, "changeState(dreaming)  -> error: unknown state 'dreaming' (still hungry)")
	assert.Contains(t, got, "reset()                -> state normal")
	assert.Contains(t, got, "states with get_hungry: [busy sleeping]")
	assert.Contains(t, got, "published 8 transitions, dropped 0")
}

func TestRunErrors(t *testing.T) {
	t.Run("bad log format", func(t *testing.T) {
		cfg := demoConfig()
		cfg.LogFormat = "xml"
		assert.Error(t, run(cfg, &bytes.Buffer{}))
	})

	t.Run("missing machine config", func(t *testing.T) {
		cfg := demoConfig()
		cfg.MachineConfigPath = filepath.Join(t.TempDir(), "none.yaml")
		assert.Error(t, run(cfg, &bytes.Buffer{}))
	})
}
