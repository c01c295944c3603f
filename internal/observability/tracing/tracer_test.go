package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartPipeline_CreatesSpan(t *testing.T) {
	// Set up in-memory span exporter for testing
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	ctx, span := StartPipeline(context.Background(), "grouping")
	if ctx == nil {
		t.Fatal("expected a derived context")
	}
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 recorded span, got %d", len(spans))
	}

	recorded := spans[0]
	if recorded.Name != "pipeline.grouping" {
		t.Errorf("span name = %q, want %q", recorded.Name, "pipeline.grouping")
	}

	found := false
	for _, attr := range recorded.Attributes {
		if attr.Key == attribute.Key("pipeline.name") && attr.Value.AsString() == "grouping" {
			found = true
		}
	}
	if !found {
		t.Error("span is missing the pipeline.name attribute")
	}
}

func TestTracerIsNotNil(t *testing.T) {
	if Tracer() == nil {
		t.Fatal("Tracer() returned nil")
	}
}
