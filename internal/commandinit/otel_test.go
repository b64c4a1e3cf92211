package commandinit_test

import (
	"context"
	"testing"

	"github.com/artuross/calc/internal/commandinit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenTelemetry(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit endpoint", func(t *testing.T) {
		tp, shutdown, err := commandinit.NewOpenTelemetry(ctx, "calc", "127.0.0.1:4317")
		require.NoError(t, err)
		require.NotNil(t, tp)

		// the exporter connects lazily, nothing is listening on the endpoint
		_, span := tp.Tracer("test").Start(ctx, "Calculate")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		shutdownCtx, cancel := context.WithCancel(ctx)
		cancel()

		// a cancelled context stops the flush instead of waiting on the collector
		_ = shutdown(shutdownCtx)
	})

	t.Run("shutdown without spans", func(t *testing.T) {
		_, shutdown, err := commandinit.NewOpenTelemetry(ctx, "calc", "127.0.0.1:4317")
		require.NoError(t, err)

		assert.NoError(t, shutdown(ctx))
	})
}
