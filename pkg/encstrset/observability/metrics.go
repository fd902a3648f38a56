package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records encstrset metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCall records one finished operation.
	RecordCall(ctx context.Context, call Call)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	calls        metric.Int64Counter
	latency      metric.Float64Histogram
	copyElements metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("encstrset")

	calls, err := meter.Int64Counter("encstrset.op.calls",
		metric.WithDescription("Number of set operations"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("encstrset.op.latency_ms",
		metric.WithDescription("Set operation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	copyElements, err := meter.Int64Counter("encstrset.copy.elements",
		metric.WithDescription("Number of ciphers visited by copy operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		calls:        calls,
		latency:      latency,
		copyElements: copyElements,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCall records one finished operation.
func (m *otelMetrics) RecordCall(ctx context.Context, call Call) {
	attrs := metric.WithAttributes(
		attribute.String("op", string(call.Op)),
		attribute.String("outcome", string(call.Outcome)),
	)
	m.calls.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(call.Duration)/float64(time.Millisecond), attrs)

	if call.Op != OpCopy {
		return
	}
	inserted, skipped := call.Copied()
	if inserted > 0 {
		m.copyElements.Add(ctx, int64(inserted), metric.WithAttributes(attribute.Bool("copied", true)))
	}
	if skipped > 0 {
		m.copyElements.Add(ctx, int64(skipped), metric.WithAttributes(attribute.Bool("copied", false)))
	}
}
