package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/graphcache/internal/adapters/telemetry"
	"go.trai.ch/graphcache/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func TestOTelTracer_Start_Attributes(t *testing.T) {
	sr := setupRecorder(t)

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(context.Background(), "cache.update", ports.WithAttribute("key", "Droid:2001"))
	span.SetAttribute("count", 2)
	span.SetAttribute("hit", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("big", int64(7))
	span.SetAttribute("names", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "cache.update", ended[0].Name())

	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, attribute.String("key", "Droid:2001"))
	assert.Contains(t, attrs, attribute.Int("count", 2))
	assert.Contains(t, attrs, attribute.Bool("hit", true))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Int64("big", 7))
	assert.Contains(t, attrs, attribute.StringSlice("names", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "cache.merge_query")
	span.RecordError(errors.New("hook failed"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "hook failed", ended[0].Status().Description)
}

func TestSetup_Disabled(t *testing.T) {
	shutdown := telemetry.Setup(nil, false)
	require.NoError(t, shutdown(context.Background()))
}
