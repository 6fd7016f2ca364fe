package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/handler"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/internal/server"
	"github.com/SaurabViena/heirloom/internal/workers"
)

const metricsShutdownTimeout = 5 * time.Second

// Gateway is the development encryption gateway process.
type Gateway struct {
	engine   *Engine
	provider *metrics.Provider
	server   server.Server
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewGateway(ctx context.Context, cfg *config.GatewayConfig, log *logger.Logger) (*Gateway, error) {
	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, err
	}
	business, err := metrics.NewBusinessMetrics(provider.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("create business metrics: %w", err)
	}

	eng, err := NewEngine(ctx, EngineConfig{App: cfg.App, Engine: cfg.Engine, Ciphertext: cfg.Ciphertext}, log)
	if err != nil {
		return nil, err
	}

	handlers, err := handler.NewHandlers(engine.NewGatewayWithMetrics(eng.Gateway, business), cfg, provider, log)
	if err != nil {
		_ = eng.Close()
		return nil, err
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = eng.Close()
		return nil, err
	}

	var jobs []workers.Worker
	if eng.GC != nil {
		jobs = append(jobs, workers.NewBadgerGCWorker(eng.GC, cfg.Workers.GCInterval, cfg.Workers.GCDiscardRatio, log))
	}

	return &Gateway{
		engine:   eng,
		provider: provider,
		server:   srv,
		workers:  workers.NewWorkers(jobs...),
		logger:   log,
	}, nil
}

// Run serves until ctx is cancelled or a component fails, then releases the
// store and flushes metrics.
func (g *Gateway) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return g.server.Run(ctx) })
	group.Go(func() error { return g.workers.Run(ctx) })

	runErr := group.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	closeErr := errors.Join(g.engine.Close(), g.provider.Shutdown(shutdownCtx))
	if closeErr != nil {
		g.logger.Err(closeErr).Str("func", "*Gateway.Run").Msg("error releasing gateway resources")
	}

	return errors.Join(runErr, closeErr)
}
