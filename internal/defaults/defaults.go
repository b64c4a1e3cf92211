package defaults

import (
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	TracerProvider = noop.NewTracerProvider()

	// Workers is the number of expressions evaluated in parallel by batch.
	Workers = 4
)
