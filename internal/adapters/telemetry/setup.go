package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/graphcache/internal/core/ports"
)

// Setup installs a global tracer provider that reports spans through the logger bridge.
// When disabled the global no-op provider stays in place. The returned function flushes and
// stops the provider.
func Setup(logger ports.Logger, enabled bool) func(context.Context) error {
	if !enabled {
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
