package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/sapbridge/auth"
)

// RequestMeta identifies the inbound request a resolution belongs to.
type RequestMeta struct {
	RequestID string // Correlation ID assigned by the hosting layer (optional)
	Transport string // Transport the request arrived on, e.g. "http", "stdio" (optional)
	Path      string // Request path or tool name (optional)
}

// SpanName returns the span name for a resolution of this request.
func (m RequestMeta) SpanName() string {
	return "auth.resolve"
}

// Tracer wraps OpenTelemetry tracing with resolution-specific span
// management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for one resolution.
	StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the resolution outcome.
	EndSpan(span trace.Span, rep *auth.Report)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with request metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{}
	if meta.RequestID != "" {
		attrs = append(attrs, attribute.String("request.id", meta.RequestID))
	}
	if meta.Transport != "" {
		attrs = append(attrs, attribute.String("request.transport", meta.Transport))
	}
	if meta.Path != "" {
		attrs = append(attrs, attribute.String("request.path", meta.Path))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records the resolution outcome on the span and ends it. Header
// values are never attached; only kinds and counts.
func (t *tracerImpl) EndSpan(span trace.Span, rep *auth.Report) {
	if rep != nil {
		kind := auth.KindNone
		if rep.Method != nil {
			kind = rep.Method.Kind
		}
		span.SetAttributes(
			attribute.String("auth.method", kind.String()),
			attribute.Bool("auth.valid", rep.Valid),
			attribute.Int("auth.errors", len(rep.Errors)),
			attribute.Int("auth.warnings", len(rep.Warnings)),
		)
		if !rep.Valid && len(rep.Errors) > 0 {
			span.SetStatus(codes.Error, rep.Errors[0])
		}
	}
	span.End()
}

// Ensure tracerImpl implements Tracer
var _ Tracer = (*tracerImpl)(nil)
