// Package tracing provides OpenTelemetry tracing helpers for pipeline runs.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the blogflow application.
var tracer = otel.Tracer("blogflow")

// Tracer returns the global tracer for creating spans.
// This tracer can be used throughout the application to create new spans.
//
// Example usage:
//
//	ctx, span := tracing.Tracer().Start(ctx, "operation-name")
//	defer span.End()
func Tracer() trace.Tracer {
	return tracer
}

// StartPipeline opens a span for a single pipeline run, tagged with the
// pipeline name. The caller must End the returned span.
func StartPipeline(ctx context.Context, pipeline string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pipeline."+pipeline,
		trace.WithAttributes(attribute.String("pipeline.name", pipeline)))
}
