package calculator

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/artuross/calc/internal/arith/ast"
	"github.com/artuross/calc/internal/arith/evaluate"
	"github.com/artuross/calc/internal/arith/lexer"
	"github.com/artuross/calc/internal/arith/parser"
	"github.com/artuross/calc/internal/defaults"
	"github.com/artuross/calc/internal/log/semconv"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/artuross/calc/internal/calculator"
)

var ErrTrailingTokens = errors.New("unexpected tokens after expression")

type TrailingTokensError struct {
	Tokens []lexer.Token
}

func (e *TrailingTokensError) Error() string {
	if len(e.Tokens) == 0 {
		return ErrTrailingTokens.Error()
	}

	return fmt.Sprintf("%s: %d token(s) starting at position %d", ErrTrailingTokens, len(e.Tokens), e.Tokens[0].Position)
}

func (e *TrailingTokensError) Unwrap() error {
	return ErrTrailingTokens
}

type Result struct {
	Input  string
	Tokens []lexer.Token
	Expr   ast.Expr
	Value  float64
}

// String formats the result as "<input> = <value>".
func (r *Result) String() string {
	return fmt.Sprintf("%s = %s", r.Input, FormatValue(r.Value))
}

// FormatValue uses the shortest representation that round-trips, e.g.
// "14", "0.30000000000000004", "+Inf" or "NaN".
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// Calculator runs the lexer, parser and evaluator in sequence. It keeps no
// state between calls and may be shared between goroutines.
type Calculator struct {
	strict bool
	tracer trace.Tracer
}

func New(options ...func(*Calculator)) *Calculator {
	calculator := Calculator{
		strict: false,
		tracer: defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&calculator)
	}

	return &calculator
}

func (c *Calculator) Evaluate(ctx context.Context, input string) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "Calculate", trace.WithAttributes(attribute.String(semconv.Expression, input)))
	defer span.End()

	logger := zerolog.Ctx(ctx).With().Str(semconv.Expression, input).Logger()

	tokens, err := c.tokenize(ctx, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Debug().Err(err).Msg("tokenize failed")
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	logger.Debug().Int(semconv.TokenCount, len(tokens)).Msg("tokenized")

	expr, remaining, err := c.parse(ctx, tokens)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Debug().Err(err).Msg("parse failed")
		return nil, fmt.Errorf("parse: %w", err)
	}

	if len(remaining) > 0 {
		if c.strict {
			err := &TrailingTokensError{Tokens: remaining}
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("parse: %w", err)
		}

		logger.Warn().Int(semconv.Position, remaining[0].Position).Msg("ignoring tokens after expression")
	}

	value := c.evaluate(ctx, expr)

	logger.Debug().Float64(semconv.Result, value).Msg("evaluated")

	result := Result{
		Input:  input,
		Tokens: tokens,
		Expr:   expr,
		Value:  value,
	}

	return &result, nil
}

func (c *Calculator) tokenize(ctx context.Context, input string) ([]lexer.Token, error) {
	_, span := c.tracer.Start(ctx, "Tokenize")
	defer span.End()

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "tokenize")
		return nil, err
	}

	span.SetAttributes(attribute.Int(semconv.TokenCount, len(tokens)))

	return tokens, nil
}

func (c *Calculator) parse(ctx context.Context, tokens []lexer.Token) (ast.Expr, []lexer.Token, error) {
	_, span := c.tracer.Start(ctx, "Parse")
	defer span.End()

	p := parser.New(tokens)

	expr, err := p.Parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse")
		return nil, nil, err
	}

	return expr, p.Remaining(), nil
}

func (c *Calculator) evaluate(ctx context.Context, expr ast.Expr) float64 {
	_, span := c.tracer.Start(ctx, "Evaluate")
	defer span.End()

	value := evaluate.Evaluate(expr)

	span.SetAttributes(attribute.Float64(semconv.Result, value))

	return value
}

// WithStrict makes tokens left over after a complete expression an error.
func WithStrict(strict bool) func(*Calculator) {
	return func(c *Calculator) {
		c.strict = strict
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Calculator) {
	return func(c *Calculator) {
		c.tracer = tp.Tracer(tracerName)
	}
}
