// Package config loads process configuration for the fsmx binaries from
// environment variables, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// Config is the demo process configuration.
type Config struct {
	// MachineConfigPath points at the YAML or JSON machine definition.
	MachineConfigPath string `env:"FSM_CONFIG" envDefault:"examples/student.yaml"`
	// MachineID overrides the id in the machine definition when set.
	MachineID string `env:"FSM_MACHINE_ID"`
	// HistoryLimit bounds the undo history; 0 keeps it unbounded.
	HistoryLimit int        `env:"FSM_HISTORY_LIMIT" envDefault:"0"`
	LogLevel     slog.Level `env:"FSM_LOG_LEVEL" envDefault:"info"`
	LogFormat    string     `env:"FSM_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from the environment.
//
// With no arguments a .env file in the working directory is loaded if it
// exists. Otherwise each named file must exist. Files never override
// variables already present in the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("%w: FSM_HISTORY_LIMIT must not be negative, got %d", ErrParsingConfig, cfg.HistoryLimit)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(envFiles ...string) Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
