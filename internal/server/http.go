package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/logger"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

type httpServer struct {
	server *http.Server

	// listen is replaced in tests to bind an ephemeral port.
	listen func(network, address string) (net.Listener, error)

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listen:          net.Listen,
		shutdownTimeout: defaultShutdownTimeout,
		logger:          logger,
	}
}

func (h *httpServer) Run(ctx context.Context) error {
	ln, err := h.listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Run").Str("address", h.server.Addr).Msg("cannot listen")
		return err
	}
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server shutting down")
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Run").Msg("HTTP server shutdown")
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
