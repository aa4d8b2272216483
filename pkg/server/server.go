// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package server runs the netpath HTTP API with its telemetry.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/api"
	"github.com/telekom/netpath/pkg/config"
	"github.com/telekom/netpath/pkg/factory"
	"github.com/telekom/netpath/pkg/metrics"
	"github.com/telekom/netpath/pkg/provider"
)

const shutdownTimeout = time.Second * 30

// Server serves the traced paths over HTTP
type Server struct {
	// config is the startup configuration of the server
	config *config.Config
	// version is reported in the openapi document
	version string
	// api is the http server
	api api.API
	// client asks the trace provider for paths
	client provider.Client
	// metrics is used to collect metrics
	metrics metrics.Provider
	// cErr is used to handle non-recoverable errors of the server components
	cErr chan error
	// cDone is used to signal that the server was shut down
	cDone chan struct{}
	// shutOnce is used to ensure that the shutdown function is only called once
	shutOnce sync.Once
}

// New creates a new server from the given config
func New(cfg *config.Config, version string) (*Server, error) {
	m := metrics.New(cfg.Telemetry, version)
	client, err := factory.NewClient(cfg.Provider, m.GetRegistry())
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   cfg,
		version:  version,
		api:      api.New(cfg.Api),
		client:   client,
		metrics:  m,
		cErr:     make(chan error, 1),
		cDone:    make(chan struct{}, 1),
		shutOnce: sync.Once{},
	}, nil
}

// Run starts the server and blocks until it is shut down,
// either because the context is done or a component failed.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	log := logger.FromContext(ctx)
	defer cancel()

	if err := s.metrics.InitTracing(ctx); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	go func() {
		s.cErr <- s.startupAPI(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			s.shutdown(ctx)
		case err := <-s.cErr:
			if err != nil {
				log.ErrorContext(ctx, "Non-recoverable error in server component", "error", err)
				s.shutdown(ctx)
			}
		case <-s.cDone:
			log.InfoContext(ctx, "Server was shut down")
			return ErrFinalShutdown
		}
	}
}

// startupAPI mounts the routes and serves the api
func (s *Server) startupAPI(ctx context.Context) error {
	registry := s.metrics.GetRegistry()
	routes := []api.Route{
		{Path: api.PathsRoute, Method: http.MethodGet, Handler: s.handlePath},
		{Path: api.OpenapiRoute, Method: http.MethodGet, Handler: s.handleOpenAPI},
		{
			Path: api.MetricsRoute, Method: "*",
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}).ServeHTTP,
		},
	}
	if err := s.api.RegisterRoutes(ctx, routes...); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}
	return s.api.Run(ctx)
}

// shutdown shuts down the server and all managed components gracefully.
func (s *Server) shutdown(ctx context.Context) {
	errC := ctx.Err()
	log := logger.FromContext(ctx)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.shutOnce.Do(func() {
		log.InfoContext(ctx, "Shutting down server")
		var sErrs ErrShutdown
		sErrs.errAPI = s.api.Shutdown(ctx)
		sErrs.errMetrics = s.metrics.Shutdown(ctx)

		if sErrs.HasError() {
			log.ErrorContext(ctx, "Failed to shutdown gracefully", "contextError", errC, "errors", sErrs)
		}

		// Signal that shutdown is complete
		s.cDone <- struct{}{}
	})
}
