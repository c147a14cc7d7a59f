package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var (
	traceEndpoint  string
	tracerProvider *sdktrace.TracerProvider
)

// setupTracing exports the generator's load and render spans over OTLP/HTTP
// when --trace-endpoint is set.
func setupTracing(cmd *cobra.Command) error {
	if traceEndpoint == "" {
		return nil
	}
	exp, err := otlptracehttp.New(cmd.Context(), otlptracehttp.WithEndpointURL(traceEndpoint))
	if err != nil {
		return fmt.Errorf("creating trace exporter: %w", err)
	}
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "delegategen"))),
	)
	otel.SetTracerProvider(tracerProvider)
	logger.Debug("tracing enabled", "endpoint", traceEndpoint)
	return nil
}

// shutdownTracing flushes pending spans.
func shutdownTracing(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	tp := tracerProvider
	tracerProvider = nil
	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("flushing traces: %w", err)
	}
	return nil
}
