package commandinit

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w. An empty level means warn.
func NewLogger(w io.Writer, level string, command string) (zerolog.Logger, error) {
	logLevel := zerolog.WarnLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}

		logLevel = parsed
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
	})).
		Level(logLevel).
		With().Timestamp().Str("command", command).
		Logger()

	return logger, nil
}
