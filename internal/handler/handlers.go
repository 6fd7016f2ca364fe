package handler

import (
	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe/engine"
	"github.com/SaurabViena/heirloom/internal/handler/http"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/metrics"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(gateway engine.Gateway, cfg *config.GatewayConfig, provider *metrics.Provider, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(gateway, cfg, provider, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
