package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Status labels.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records pipeline and gateway operations.
type BusinessMetrics interface {
	// RecordOperation counts one operation, e.g. ("gateway", "ingest", "success").
	RecordOperation(ctx context.Context, domain, operation, status string)
	// RecordDuration observes the operation latency in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics creates the operation counter and duration histogram.
func NewBusinessMetrics(meterProvider metric.MeterProvider) (BusinessMetrics, error) {
	meter := meterProvider.Meter(Namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", Namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", Namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &businessMetrics{operationCounter: operationCounter, durationHisto: durationHisto}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

func (b *businessMetrics) RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string) {
	b.durationHisto.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// NoOp discards everything. Used by the CLI, which exposes no metrics endpoint.
type NoOp struct{}

// NewNoOp returns a BusinessMetrics that records nothing.
func NewNoOp() BusinessMetrics { return NoOp{} }

func (NoOp) RecordOperation(context.Context, string, string, string) {}

func (NoOp) RecordDuration(context.Context, string, string, time.Duration, string) {}

// Observe records one finished operation that started at start.
func Observe(ctx context.Context, m BusinessMetrics, domain, operation string, start time.Time, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}
