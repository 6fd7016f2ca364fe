package http

import (
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/internal/utils"
)

type Handler struct {
	gateway engine.Gateway

	server  config.Server
	tokens  config.Auth
	version string

	// metrics is optional; without it /metrics is not served.
	metrics *metrics.Provider
	limiter *ipRateLimiter

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(gateway engine.Gateway, cfg *config.GatewayConfig, provider *metrics.Provider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gateway:  gateway,
		server:   cfg.Server,
		tokens:   cfg.Auth,
		version:  cfg.App.Version,
		metrics:  provider,
		limiter:  newIPRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
