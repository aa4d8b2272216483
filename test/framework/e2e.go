// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package framework runs netpath end to end against a fake trace provider.
package framework

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/telekom/netpath/pkg/config"
	"github.com/telekom/netpath/pkg/server"
)

const (
	// providerAddress is where the fake trace provider listens.
	providerAddress = "localhost:50505"
	// apiAddress is where the netpath api listens.
	apiAddress = "localhost:50506"
)

// E2E is an end-to-end test of the netpath server.
type E2E struct {
	config config.Config
	t      *testing.T

	// payloads are the provider responses per destination
	payloads map[string]string
	provider *http.Server

	running int32
}

// New creates an end-to-end test with the default configuration
// pointing at the fake trace provider.
func New(t *testing.T) *E2E {
	t.Helper()
	cfg := config.New()
	cfg.Provider.Url = "http://" + providerAddress
	cfg.Provider.Timeout = 5 * time.Second
	cfg.Api.ListeningAddress = apiAddress

	return &E2E{
		config:   cfg,
		t:        t,
		payloads: map[string]string{},
	}
}

// WithPayload makes the fake provider answer traces towards destination with payload.
// Traces towards other destinations are answered with 404.
func (e *E2E) WithPayload(destination, payload string) *E2E {
	e.payloads[destination] = payload
	return e
}

// WithConfig modifies the configuration before the test runs.
func (e *E2E) WithConfig(modify func(c *config.Config)) *E2E {
	modify(&e.config)
	return e
}

// URL returns the url of the netpath api for the given path.
func (e *E2E) URL(path string) string {
	return "http://" + apiAddress + path
}

// Run starts the fake provider and the server and blocks until the server is shut down.
func (e *E2E) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&e.running, 0, 1) {
		e.t.Fatal("E2E.Run must be called once")
	}

	if err := e.config.Validate(ctx); err != nil {
		return err
	}
	srv, err := server.New(&e.config, "e2e")
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Get("/trace/{destination}", e.serveTrace)
	e.provider = &http.Server{
		Addr:              providerAddress,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	go func() {
		if err := e.provider.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.t.Errorf("Failed to start provider: %v", err)
		}
	}()
	defer func() {
		if err := e.provider.Shutdown(context.Background()); err != nil {
			e.t.Errorf("Failed to shutdown provider: %v", err)
		}
	}()

	return srv.Run(ctx)
}

// AwaitStartup waits for the provided URL to be ready.
//
// Must be called after the e2e test started with [E2E.Run].
func (e *E2E) AwaitStartup(u string, failureTimeout time.Duration) *E2E {
	e.t.Helper()
	const backoff = 100 * time.Millisecond

	// Initial delay to allow the server to start.
	<-time.After(backoff)
	if !e.isRunning() {
		e.t.Fatal("E2E.AwaitStartup must be called after E2E.Run")
	}

	deadline := time.Now().Add(failureTimeout)
	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, u, http.NoBody)
		if err != nil {
			e.t.Fatalf("Failed to create request: %v", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return e
			}
		}

		<-time.After(backoff)
	}

	e.t.Fatalf("%s did not become ready within %v", u, failureTimeout)
	return e
}

// serveTrace answers a trace request with the payload of its destination.
func (e *E2E) serveTrace(w http.ResponseWriter, r *http.Request) {
	payload, ok := e.payloads[chi.URLParam(r, "destination")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		e.t.Errorf("Failed to write response: %v", err)
	}
}

// isRunning returns true if the test is running.
func (e *E2E) isRunning() bool {
	return atomic.LoadInt32(&e.running) == 1
}
