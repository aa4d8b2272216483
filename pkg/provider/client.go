// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/hop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ Client = (*HTTPClient)(nil)

// maxResponseSize limits the provider response body.
const maxResponseSize = 8 << 20

// Client requests network path traces from the trace provider.
//
//go:generate go tool moq -out client_moq.go . Client
type Client interface {
	// Trace requests a trace towards destination and returns the ingested path.
	// It fails with a [*TransportFailure] if the provider does not deliver a
	// path and with a [*hop.MalformedHopError] if any hop of it is invalid.
	Trace(ctx context.Context, destination string) (hop.Path, error)
}

// Config configures the [HTTPClient].
type Config struct {
	// URL is the base URL of the trace provider.
	URL string
	// Timeout bounds one trace request.
	Timeout time.Duration
}

// HTTPClient requests traces with GET {URL}/trace/{destination}.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	metrics metrics
	tracer  trace.Tracer
}

// NewClient returns a client for the trace provider at cfg.URL.
func NewClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		metrics: newMetrics(),
		tracer:  otel.Tracer("netpath.provider"),
	}
}

// GetMetricCollectors returns all metric collectors of the client
func (c *HTTPClient) GetMetricCollectors() []prometheus.Collector {
	return c.metrics.GetCollectors()
}

// Trace requests a trace towards destination. The destination must already
// be resolved; a blank destination is rejected.
func (c *HTTPClient) Trace(ctx context.Context, destination string) (hop.Path, error) {
	ctx, span := c.tracer.Start(ctx, "provider.Trace", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()
	log := logger.FromContext(ctx).With("destination", destination)
	ctx = logger.IntoContext(ctx, log)

	dest, err := ValidateDestination(destination)
	if err != nil {
		return nil, wrapError(ctx, err, "failed to trace %s", destination)
	}

	start := time.Now()
	p, err := c.trace(ctx, dest)
	took := time.Since(start)

	var malformed *hop.MalformedHopError
	switch {
	case err == nil:
		c.metrics.observe(outcomeSuccess, took, len(p))
	case errors.As(err, &malformed):
		c.metrics.observe(outcomeMalformed, took, 0)
	default:
		c.metrics.observe(outcomeTransportFailure, took, 0)
	}
	if err != nil {
		return nil, wrapError(ctx, err, "failed to trace %s", dest)
	}

	span.SetAttributes(attribute.Int("hops", len(p)))
	log.DebugContext(ctx, "Successfully ingested path", "hops", len(p), "duration", took.String())
	return p, nil
}

func (c *HTTPClient) trace(ctx context.Context, destination string) (hop.Path, error) {
	log := logger.FromContext(ctx)
	u := fmt.Sprintf("%s/trace/%s", c.baseURL, url.PathEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &TransportFailure{Destination: destination, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req) //nolint:bodyclose // Closed in defer below
	if err != nil {
		return nil, &TransportFailure{Destination: destination, Err: err}
	}
	defer func(Body io.ReadCloser) {
		if cErr := Body.Close(); cErr != nil {
			log.ErrorContext(ctx, "Failed to close response body", "error", cErr)
		}
	}(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportFailure{Destination: destination, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg, ok := errorPayload(body); ok {
			return nil, &TransportFailure{Destination: destination, StatusCode: resp.StatusCode, Message: msg}
		}
		return nil, &TransportFailure{
			Destination: destination,
			StatusCode:  resp.StatusCode,
			Err:         fmt.Errorf("request failed, status is %s", resp.Status),
		}
	}

	p, err := ingest(body)
	var failure *TransportFailure
	if errors.As(err, &failure) {
		failure.Destination = destination
		failure.StatusCode = resp.StatusCode
	}
	return p, err
}

// ingest turns a provider response body into a path. An explicit error
// payload or a body that is no hop list fails with a [*TransportFailure].
func ingest(body []byte) (hop.Path, error) {
	if msg, ok := errorPayload(body); ok {
		return nil, &TransportFailure{Message: msg}
	}

	p, err := hop.ParsePath(body)
	var malformed *hop.MalformedHopError
	if err != nil && !errors.As(err, &malformed) {
		return nil, &TransportFailure{Err: err}
	}
	return p, err
}

// errorPayload extracts the message of an explicit {"error": "..."} payload.
func errorPayload(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil || len(payload.Error) == 0 || string(payload.Error) == "null" {
		return "", false
	}

	var msg string
	if err := json.Unmarshal(payload.Error, &msg); err != nil {
		msg = string(payload.Error)
	}
	if msg == "" {
		msg = "unknown error"
	}
	return msg, true
}
