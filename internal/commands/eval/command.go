package eval

import (
	"context"
	"fmt"

	"github.com/artuross/calc/internal/calculator"
	"github.com/artuross/calc/internal/commandinit"
	"github.com/artuross/calc/internal/commands/eval/config"
	"github.com/artuross/calc/internal/defaults"
	"github.com/kr/pretty"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluates a single arithmetic expression.",
		ArgsUsage: "<expression>",
		Flags: []cli.Flag{
			// optional
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "Print the tokens produced by the lexer.",
			},
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "Print the expression tree produced by the parser.",
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
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice())
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, "eval")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	config.Print(logger, cfg)

	var tracerProvider trace.TracerProvider = defaults.TracerProvider
	if cfg.Trace {
		tp, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "calc", cfg.TraceEndpoint)
		if err != nil {
			return fmt.Errorf("create OTEL provider: %w", err)
		}
		defer tpShutdown(context.WithoutCancel(ctx))

		tracerProvider = tp
	}

	ctx = logger.WithContext(ctx)

	calc := calculator.New(
		calculator.WithStrict(cfg.Strict),
		calculator.WithTracerProvider(tracerProvider),
	)

	result, err := calc.Evaluate(ctx, cfg.Expression)
	if err != nil {
		logger.Error().Err(err).Msg("evaluate expression")
		return fmt.Errorf("evaluate %q: %w", cfg.Expression, err)
	}

	out := cliCtx.App.Writer

	if cfg.ShowTokens {
		fmt.Fprintf(out, "Tokens: %# v\n", pretty.Formatter(result.Tokens))
	}

	if cfg.ShowAST {
		fmt.Fprintf(out, "AST: %# v\n", pretty.Formatter(result.Expr))
	}

	fmt.Fprintln(out, result.String())

	return nil
}
