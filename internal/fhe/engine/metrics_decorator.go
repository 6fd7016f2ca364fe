package engine

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/models"
)

const metricsDomain = "gateway"

type gatewayWithMetrics struct {
	next    Gateway
	metrics metrics.BusinessMetrics
}

// NewGatewayWithMetrics records every state-changing gateway operation.
func NewGatewayWithMetrics(next Gateway, m metrics.BusinessMetrics) Gateway {
	return &gatewayWithMetrics{next: next, metrics: m}
}

func (g *gatewayWithMetrics) NetworkKey() []byte { return g.next.NetworkKey() }

func (g *gatewayWithMetrics) Domain() fhe.GrantDomain { return g.next.Domain() }

func (g *gatewayWithMetrics) WidthBits() int { return g.next.WidthBits() }

func (g *gatewayWithMetrics) Ingest(ctx context.Context, destination, submitter common.Address, inputs [][]byte) (models.CiphertextBundle, error) {
	start := time.Now()
	bundle, err := g.next.Ingest(ctx, destination, submitter, inputs)
	metrics.Observe(ctx, g.metrics, metricsDomain, "ingest", start, err)
	return bundle, err
}

func (g *gatewayWithMetrics) VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error {
	start := time.Now()
	err := g.next.VerifyInput(ctx, destination, submitter, bundle)
	metrics.Observe(ctx, g.metrics, metricsDomain, "verify_input", start, err)
	return err
}

func (g *gatewayWithMetrics) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	start := time.Now()
	err := g.next.Allow(ctx, handles, account)
	metrics.Observe(ctx, g.metrics, metricsDomain, "allow", start, err)
	return err
}

func (g *gatewayWithMetrics) UserDecrypt(ctx context.Context, req UserDecryptRequest) (map[models.Handle][]byte, error) {
	start := time.Now()
	out, err := g.next.UserDecrypt(ctx, req)
	metrics.Observe(ctx, g.metrics, metricsDomain, "user_decrypt", start, err)
	return out, err
}
