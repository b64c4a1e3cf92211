package config_test

import (
	"testing"

	"github.com/artuross/calc/internal/commands/batch/config"
	"github.com/artuross/calc/internal/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlags struct {
	strings map[string]string
	bools   map[string]bool
	ints    map[string]int
}

func (f fakeFlags) String(name string) string { return f.strings[name] }
func (f fakeFlags) Bool(name string) bool     { return f.bools[name] }
func (f fakeFlags) Int(name string) int       { return f.ints[name] }

func TestRead(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Read(fakeFlags{})
		require.NoError(t, err)

		assert.Equal(t, &config.Config{Workers: defaults.Workers}, cfg)
	})

	t.Run("all flags", func(t *testing.T) {
		flags := fakeFlags{
			strings: map[string]string{"file": "exprs.txt", "log-level": "info", "trace-endpoint": "localhost:4317"},
			bools:   map[string]bool{"strict": true, "trace": true},
			ints:    map[string]int{"workers": 8},
		}

		cfg, err := config.Read(flags)
		require.NoError(t, err)

		expected := &config.Config{
			InputFilePath: "exprs.txt",
			LogLevel:      "info",
			Strict:        true,
			Trace:         true,
			TraceEndpoint: "localhost:4317",
			Workers:       8,
		}
		assert.Equal(t, expected, cfg)
	})

	t.Run("negative workers", func(t *testing.T) {
		flags := fakeFlags{
			ints: map[string]int{"workers": -1},
		}

		_, err := config.Read(flags)
		require.EqualError(t, err, "flag --workers must be positive, got -1")
	})
}
