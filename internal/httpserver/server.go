// Package httpserver wraps the standard HTTP server with the lifecycle
// and middleware used by the application entrypoint.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Server owns the underlying http.Server and its lifecycle.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New builds a Server listening on addr with the standard middleware
// chain applied to handler.
func New(addr string, handler http.Handler, logger *slog.Logger) *Server {
	// RequestLogger wraps Recover so a recovered panic still produces a
	// request log line with its 500 status.
	wrapped := Chain(handler, RequestLogger(logger), Recover(logger))
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           wrapped,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving requests until the server is shut down. It
// returns nil on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.srv.Shutdown(ctx)
}
