package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/sapbridge/auth"
)

// Metrics records resolution metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordResolution records one resolution with its outcome and duration.
	RecordResolution(ctx context.Context, meta RequestMeta, rep *auth.Report, duration time.Duration)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	totalCount   metric.Int64Counter
	invalidCount metric.Int64Counter
	warningCount metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"auth.resolve.total",
		metric.WithDescription("Total number of resolution passes"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	invalidCount, err := meter.Int64Counter(
		"auth.resolve.invalid",
		metric.WithDescription("Resolution passes that produced no trusted method"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	warningCount, err := meter.Int64Counter(
		"auth.resolve.warnings",
		metric.WithDescription("Warnings attached to resolution reports"),
		metric.WithUnit("{warning}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"auth.resolve.duration_ms",
		metric.WithDescription("Resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		invalidCount: invalidCount,
		warningCount: warningCount,
		durationHist: durationHist,
	}, nil
}

// RecordResolution records one resolution pass.
func (m *metricsImpl) RecordResolution(ctx context.Context, meta RequestMeta, rep *auth.Report, duration time.Duration) {
	kind := auth.KindNone
	valid := false
	warnings := 0
	if rep != nil {
		valid = rep.Valid
		warnings = len(rep.Warnings)
		if rep.Method != nil {
			kind = rep.Method.Kind
		}
	}

	attrs := metric.WithAttributes(
		attribute.String("auth.method", kind.String()),
		attribute.Bool("auth.valid", valid),
	)

	m.totalCount.Add(ctx, 1, attrs)
	if !valid {
		m.invalidCount.Add(ctx, 1, attrs)
	}
	if warnings > 0 {
		m.warningCount.Add(ctx, int64(warnings), attrs)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000.0, attrs)
}

// Ensure metricsImpl implements Metrics
var _ Metrics = (*metricsImpl)(nil)
