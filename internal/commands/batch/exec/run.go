package exec

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/artuross/calc/internal/calculator"
	"github.com/artuross/calc/internal/defaults"
	"github.com/artuross/calc/internal/log/semconv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/artuross/calc/internal/commands/batch/exec"
)

var ErrSomeExpressionsFailed = errors.New("some expressions failed")

type Calculator interface {
	Evaluate(ctx context.Context, input string) (*calculator.Result, error)
}

type Executor struct {
	calculator Calculator
	workers    int
	tracer     trace.Tracer
}

type line struct {
	number int
	text   string
}

type outcome struct {
	result *calculator.Result
	err    error
}

func NewExecutor(calculator Calculator, options ...func(*Executor)) *Executor {
	executor := Executor{
		calculator: calculator,
		workers:    defaults.Workers,
		tracer:     defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

// Run evaluates every non-blank line of r and writes one line per expression
// to w, in input order. A failing expression does not stop the others.
func (e *Executor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, span := e.tracer.Start(ctx, "run batch")
	defer span.End()

	lines, err := readLines(r)
	if err != nil {
		return fmt.Errorf("read expressions: %w", err)
	}

	span.SetAttributes(attribute.Int("expression_count", len(lines)))

	outcomes := make([]outcome, len(lines))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for index, line := range lines {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			requestID := uuid.New()

			logger := zerolog.Ctx(groupCtx).With().
				Str(semconv.RequestID, requestID.String()).
				Int(semconv.Line, line.number).
				Logger()

			result, err := e.calculator.Evaluate(logger.WithContext(groupCtx), line.text)
			if err != nil {
				logger.Info().Err(err).Msg("expression failed")
			}

			outcomes[index] = outcome{result: result, err: err}

			return nil
		})
	}

	// workers never return errors
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	failed := 0
	for index, evaluated := range outcomes {
		if evaluated.err != nil {
			failed++
			fmt.Fprintf(w, "%s : error: %s\n", lines[index].text, evaluated.err)
			continue
		}

		fmt.Fprintln(w, evaluated.result.String())
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSomeExpressionsFailed, failed, len(lines))
	}

	return nil
}

func readLines(r io.Reader) ([]line, error) {
	lines := make([]line, 0)

	scanner := bufio.NewScanner(r)

	number := 0
	for scanner.Scan() {
		number++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		lines = append(lines, line{number: number, text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func WithWorkers(workers int) func(*Executor) {
	return func(e *Executor) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}
