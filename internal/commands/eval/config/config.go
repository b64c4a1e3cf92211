package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Flagger interface {
	String(name string) string
	Bool(name string) bool
}

type Config struct {
	Expression    string
	LogLevel      string
	ShowAST       bool
	ShowTokens    bool
	Strict        bool
	Trace         bool
	TraceEndpoint string
}

func Read(flags Flagger, args []string) (*Config, error) {
	// args - required
	expression := strings.TrimSpace(strings.Join(args, " "))
	if expression == "" {
		return nil, fmt.Errorf("expression argument is required")
	}

	// flags - optional
	logLevel := flags.String("log-level")
	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("flag --log-level: %w", err)
		}
	}

	cfg := Config{
		Expression:    expression,
		LogLevel:      logLevel,
		ShowAST:       flags.Bool("ast"),
		ShowTokens:    flags.Bool("tokens"),
		Strict:        flags.Bool("strict"),
		Trace:         flags.Bool("trace"),
		TraceEndpoint: flags.String("trace-endpoint"),
	}

	return &cfg, nil
}

func Print(logger zerolog.Logger, cfg *Config) {
	logger.Debug().
		Str("expression", cfg.Expression).
		Str("log_level", cfg.LogLevel).
		Bool("show_ast", cfg.ShowAST).
		Bool("show_tokens", cfg.ShowTokens).
		Bool("strict", cfg.Strict).
		Bool("trace", cfg.Trace).
		Str("trace_endpoint", cfg.TraceEndpoint).
		Msg("running with config")
}
