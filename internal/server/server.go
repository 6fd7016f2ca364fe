package server

import (
	"context"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/handler"
	"github.com/SaurabViena/heirloom/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoListener
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.Run(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
