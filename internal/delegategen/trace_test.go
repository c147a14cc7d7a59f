package delegategen

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func spanNamed(t *testing.T, spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	require.Failf(t, "span not recorded", "no span named %s", name)
	return nil
}

func TestRender_RecordsSpans(t *testing.T) {
	sr := recordSpans(t)

	target := Target{
		Name:      "wrap",
		Kind:      KindWrapper,
		Source:    fixturePattern,
		Interface: "Shapes",
		Package:   "example.com/fixturewrap",
		Type:      "Wrapper",
	}
	var buf bytes.Buffer
	require.NoError(t, Render(context.Background(), &buf, "", target))

	spans := sr.Ended()
	render := spanNamed(t, spans, "delegategen.Render")
	load := spanNamed(t, spans, "delegategen.Load")

	assert.Equal(t, render.SpanContext().SpanID(), load.Parent().SpanID(), "load runs inside render")
	assert.Contains(t, render.Attributes(), attribute.String("delegategen.target", "wrap"))
	assert.Contains(t, load.Attributes(), attribute.String("delegategen.interface", "Shapes"))
	assert.Contains(t, load.Attributes(), attribute.Int("delegategen.methods", len(loadFixture(t, "Shapes").Methods)))
	assert.Equal(t, codes.Unset, render.Status().Code)
}

func TestLoad_SpanRecordsError(t *testing.T) {
	sr := recordSpans(t)

	_, err := Load(context.Background(), "", fixturePattern, "TooMany")
	require.ErrorIs(t, err, ErrUnsupportedShape)

	load := spanNamed(t, sr.Ended(), "delegategen.Load")
	assert.Equal(t, codes.Error, load.Status().Code)
	require.NotEmpty(t, load.Events())
	assert.Equal(t, "exception", load.Events()[0].Name)
}
