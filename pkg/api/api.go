// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package api serves netpath over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/telekom/netpath/internal/logger"
)

var _ API = (*api)(nil)

//go:generate go tool moq -out api_moq.go . API
type API interface {
	// Run serves the registered routes until the context is done or the server fails
	Run(ctx context.Context) error
	// Shutdown gracefully stops the server
	Shutdown(ctx context.Context) error
	// RegisterRoutes mounts the routes on the server
	RegisterRoutes(ctx context.Context, routes ...Route) error
}

type api struct {
	server *http.Server
	router chi.Router
}

const readHeaderTimeout = 5 * time.Second

// Route is a handler mounted at Path for Method.
// The method "*" matches all methods.
type Route struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

// New creates a new api server listening on cfg.ListeningAddress
func New(cfg Config) API {
	r := chi.NewRouter()
	return &api{
		server: &http.Server{
			Addr:              cfg.ListeningAddress,
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: r,
	}
}

// Run serves the api. It blocks until the server stops or the context is done.
func (a *api) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	cErr := make(chan error, 1)

	go func() {
		log.InfoContext(ctx, "Serving api", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Failed to serve api", "error", err)
			cErr <- fmt.Errorf("%w: %w", ErrServeAPI, err)
			return
		}
		cErr <- nil
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrServeAPI, ctx.Err())
	case err := <-cErr:
		return err
	}
}

// Shutdown gracefully shuts down the api server.
// Returns an error if an error is present in the context
// or the server cannot be shut down.
func (a *api) Shutdown(ctx context.Context) error {
	errC := ctx.Err()
	if err := a.server.Shutdown(ctx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to shutdown api server", "error", err)
		return fmt.Errorf("failed shutting down api: %w", errors.Join(errC, err))
	}
	return errC
}

// RegisterRoutes adds the logger middleware and mounts the routes.
func (a *api) RegisterRoutes(ctx context.Context, routes ...Route) error {
	a.router.Use(middleware.Recoverer, logger.Middleware(ctx))
	for _, route := range routes {
		switch route.Method {
		case "*":
			a.router.HandleFunc(route.Path, route.Handler)
		case http.MethodGet:
			a.router.Get(route.Path, route.Handler)
		case http.MethodHead:
			a.router.Head(route.Path, route.Handler)
		case http.MethodPost:
			a.router.Post(route.Path, route.Handler)
		default:
			return fmt.Errorf("%w %s for route %s", ErrUnsupportedMethod, route.Method, route.Path)
		}
	}

	a.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).DebugContext(r.Context(), "No route matched")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	return nil
}
