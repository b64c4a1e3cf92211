package root

import (
	"github.com/artuross/calc/internal/commands/batch"
	"github.com/artuross/calc/internal/commands/eval"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:  "calc",
		Usage: "Evaluates arithmetic expressions.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "One of trace, debug, info, warn, error.",
				Value:   "warn",
				EnvVars: []string{"CALC_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "trace",
				Usage:   "Export traces over OTLP/gRPC.",
				EnvVars: []string{"CALC_TRACE"},
			},
			&cli.StringFlag{
				Name:    "trace-endpoint",
				Usage:   "OTLP collector address, defaults to OTEL_EXPORTER_OTLP_ENDPOINT.",
				EnvVars: []string{"CALC_TRACE_ENDPOINT"},
			},
		},
		Commands: []*cli.Command{
			eval.NewCommand(),
			batch.NewCommand(),
		},
	}
}
