package config

import (
	"fmt"

	"github.com/artuross/calc/internal/defaults"
	"github.com/rs/zerolog"
)

type Flagger interface {
	String(name string) string
	Bool(name string) bool
	Int(name string) int
}

type Config struct {
	InputFilePath string // empty means stdin
	LogLevel      string
	Strict        bool
	Trace         bool
	TraceEndpoint string
	Workers       int
}

func Read(flags Flagger) (*Config, error) {
	workers := flags.Int("workers")
	if workers == 0 {
		workers = defaults.Workers
	}
	if workers < 0 {
		return nil, fmt.Errorf("flag --workers must be positive, got %d", workers)
	}

	logLevel := flags.String("log-level")
	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("flag --log-level: %w", err)
		}
	}

	cfg := Config{
		InputFilePath: flags.String("file"),
		LogLevel:      logLevel,
		Strict:        flags.Bool("strict"),
		Trace:         flags.Bool("trace"),
		TraceEndpoint: flags.String("trace-endpoint"),
		Workers:       workers,
	}

	return &cfg, nil
}

func Print(logger zerolog.Logger, cfg *Config) {
	logger.Debug().
		Str("input_file", cfg.InputFilePath).
		Str("log_level", cfg.LogLevel).
		Bool("strict", cfg.Strict).
		Bool("trace", cfg.Trace).
		Str("trace_endpoint", cfg.TraceEndpoint).
		Int("workers", cfg.Workers).
		Msg("running with config")
}
