package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx/internal/config"
)

var envKeys = []string{
	"FSM_CONFIG",
	"FSM_MACHINE_ID",
	"FSM_HISTORY_LIMIT",
	"FSM_LOG_LEVEL",
	"FSM_LOG_FORMAT",
}

// unsetEnv clears every variable Config reads and restores them after the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "examples/student.yaml", cfg.MachineConfigPath)
	assert.Empty(t, cfg.MachineID)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("FSM_CONFIG", "/etc/fsm/machine.yaml")
	t.Setenv("FSM_HISTORY_LIMIT", "100")
	t.Setenv("FSM_LOG_LEVEL", "WARN")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/fsm/machine.yaml", cfg.MachineConfigPath)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t)

	cfg, err := config.Load("testdata/.env.demo")
	require.NoError(t, err)

	assert.Equal(t, "testdata/machine.yaml", cfg.MachineConfigPath)
	assert.Equal(t, "from-env-file", cfg.MachineID)
	assert.Equal(t, 16, cfg.HistoryLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	unsetEnv(t)
	t.Setenv("FSM_MACHINE_ID", "from-process")

	cfg, err := config.Load("testdata/.env.demo")
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.MachineID)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		unsetEnv(t)
		_, err := config.Load("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("unparsable value", func(t *testing.T) {
		unsetEnv(t)
		_, err := config.Load("testdata/.env.invalid")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("negative history limit", func(t *testing.T) {
		unsetEnv(t)
		_, err := config.Load("testdata/.env.negative")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("bad log level", func(t *testing.T) {
		unsetEnv(t)
		t.Setenv("FSM_LOG_LEVEL", "chatty")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	unsetEnv(t)
	assert.NotPanics(t, func() { config.MustLoad("testdata/.env.demo") })

	unsetEnv(t)
	assert.Panics(t, func() { config.MustLoad("testdata/does-not-exist.env") })
}
