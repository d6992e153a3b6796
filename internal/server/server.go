// Copyright 2026 The Plotsleuth Authors
// SPDX-License-Identifier: MIT

// Package server exposes plotsleuth's HTTP API: a single identification
// endpoint plus a health check, wrapped in CORS and request-logging
// middleware.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/davetashner/plotsleuth/internal/identify"
)

const shutdownTimeout = 5 * time.Second

// Server serves the plotsleuth HTTP API. It holds no per-request state; one
// identify.Service instance is shared by all in-flight requests.
type Server struct {
	listen  string
	logger  *slog.Logger
	svc     *identify.Service
	handler http.Handler
	httpSrv *http.Server
}

// New creates a Server bound to the given listen address. corsOrigins limits
// cross-origin access; empty means all origins.
func New(listen string, svc *identify.Service, corsOrigins []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		listen: listen,
		logger: logger.With(slog.String("component", "api-server")),
		svc:    svc,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/identify", s.handleIdentify)
	mux.HandleFunc("/api/health", s.handleHealth)

	s.handler = withRequestLog(s.logger, withCORS(corsOrigins, mux))

	s.httpSrv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// The identify endpoint blocks on an upstream LLM round-trip,
		// which can take tens of seconds.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. On cancellation the server drains in-flight requests for up to
// shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api shutdown: %w", err)
		}
		s.logger.Info("api server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api serve: %w", err)
	}
}
