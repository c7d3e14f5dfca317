package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/sapbridge/auth"
	"github.com/jonwraymond/sapbridge/headers"
)

// ResolveFunc is the signature for resolution functions. The raw
// *auth.Resolver satisfies it through a closure; see WrapResolver.
type ResolveFunc func(ctx context.Context, meta RequestMeta, h headers.Headers) *auth.Report

// Middleware wraps resolution with observability (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ResolveFunc.
//   - Ownership: the report is passed through without modification;
//     header values never reach the telemetry sinks.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability
// components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a ResolveFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn ResolveFunc) ResolveFunc {
	return func(ctx context.Context, meta RequestMeta, h headers.Headers) *auth.Report {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		rep := fn(ctx, meta, h)

		duration := time.Since(start)
		m.tracer.EndSpan(span, rep)
		m.metrics.RecordResolution(ctx, meta, rep, duration)

		logger := m.logger.WithRequest(meta)
		kind := auth.KindNone
		if rep != nil && rep.Method != nil {
			kind = rep.Method.Kind
		}
		fields := []Field{
			{Key: "auth.method", Value: kind.String()},
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000.0},
		}
		if rep != nil {
			fields = append(fields,
				Field{Key: "auth.errors", Value: len(rep.Errors)},
				Field{Key: "auth.warnings", Value: len(rep.Warnings)},
			)
		}

		switch {
		case rep == nil || (!rep.Valid && len(rep.Errors) > 0):
			logger.Warn(ctx, "authentication resolution failed", fields...)
		case !rep.Valid:
			logger.Debug(ctx, "no authentication headers present", fields...)
		default:
			logger.Info(ctx, "authentication method resolved", fields...)
		}

		return rep
	}
}

// WrapResolver wraps an auth.Resolver directly.
func (m *Middleware) WrapResolver(r *auth.Resolver) ResolveFunc {
	return m.Wrap(func(_ context.Context, _ RequestMeta, h headers.Headers) *auth.Report {
		return r.Resolve(h)
	})
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
