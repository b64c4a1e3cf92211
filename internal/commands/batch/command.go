package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/artuross/calc/internal/calculator"
	"github.com/artuross/calc/internal/commandinit"
	"github.com/artuross/calc/internal/commands/batch/config"
	"github.com/artuross/calc/internal/commands/batch/exec"
	"github.com/artuross/calc/internal/defaults"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Evaluates one expression per line read from stdin or a file.",
		Flags: []cli.Flag{
			// optional
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read expressions from this file instead of stdin.",
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "Number of expressions evaluated in parallel.",
				Value:   defaults.Workers,
				EnvVars: []string{"CALC_WORKERS"},
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "Fail when tokens follow a complete expression.",
				EnvVars: []string{"CALC_STRICT"},
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.Read(cliCtx)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, "batch")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	config.Print(logger, cfg)

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tracerProvider trace.TracerProvider = defaults.TracerProvider
	if cfg.Trace {
		tp, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "calc", cfg.TraceEndpoint)
		if err != nil {
			return fmt.Errorf("create OTEL provider: %w", err)
		}
		defer tpShutdown(context.WithoutCancel(ctx))

		tracerProvider = tp
	}

	var input io.Reader = cliCtx.App.Reader
	if cfg.InputFilePath != "" {
		file, err := os.Open(cfg.InputFilePath)
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer file.Close()

		input = file
	}

	ctx = logger.WithContext(ctx)

	calc := calculator.New(
		calculator.WithStrict(cfg.Strict),
		calculator.WithTracerProvider(tracerProvider),
	)

	executor := exec.NewExecutor(
		calc,
		exec.WithWorkers(cfg.Workers),
		exec.WithTracerProvider(tracerProvider),
	)

	if err := executor.Run(ctx, input, cliCtx.App.Writer); err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	return nil
}
