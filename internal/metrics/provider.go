// Package metrics wires OpenTelemetry metrics to a Prometheus exporter and
// exposes the instruments used by the gateway and the pipelines.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Namespace prefixes every metric name.
const Namespace = "heirloom"

// Provider owns the meter provider and the registry scraped at /metrics.
type Provider struct {
	meterProvider *metric.MeterProvider
	registry      *prometheus.Registry
}

// NewProvider creates a meter provider backed by a private Prometheus registry.
func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		registry:      registry,
	}, nil
}

// Handler serves the registry in Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// MeterProvider returns the provider instruments are created from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
