// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/telekom/netpath/internal/logger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

// Config configures the export of the spans recorded around trace requests.
type Config struct {
	// Enabled turns on tracing. A disabled config installs no tracer provider.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Exporter selects where spans are sent.
	Exporter Exporter `yaml:"exporter" mapstructure:"exporter"`
	// Url is the collector endpoint of the otlp exporters.
	Url string `yaml:"url" mapstructure:"url"`
	// Token is sent as bearer token to the collector.
	Token string `yaml:"token" mapstructure:"token"`
	TLS   TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig secures the connection to the collector.
type TLSConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// CertPath is a PEM file with the CA of a collector using custom certificates.
	CertPath string `yaml:"certPath" mapstructure:"certPath"`
}

// Validate checks the exporter and that the otlp exporters have a collector url.
func (c *Config) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !c.Enabled {
		return nil
	}

	if err := c.Exporter.Validate(); err != nil {
		log.ErrorContext(ctx, "Invalid exporter", "error", err)
		return err
	}
	if c.Exporter.IsExporting() && c.Url == "" {
		log.ErrorContext(ctx, "Url is required for otlp exporter", "exporter", c.Exporter)
		return fmt.Errorf("url is required for otlp exporter %q", c.Exporter)
	}
	return nil
}

// Exporter is the kind of span exporter.
type Exporter string

const (
	// HTTP exports spans with otlp over http.
	HTTP Exporter = "http"
	// GRPC exports spans with otlp over grpc.
	GRPC Exporter = "grpc"
	// STDOUT prints spans to stdout.
	STDOUT Exporter = "stdout"
	// NOOP drops all spans.
	NOOP Exporter = "noop"
)

var exporters = []Exporter{HTTP, GRPC, STDOUT, NOOP}

func (e Exporter) String() string {
	return string(e)
}

// Validate returns an error for unknown exporters. The empty exporter counts as [NOOP].
func (e Exporter) Validate() error {
	if e == "" || slices.Contains(exporters, e) {
		return nil
	}
	return fmt.Errorf("unsupported exporter %q, must be one of %v", e, exporters)
}

// IsExporting reports whether spans leave the process.
func (e Exporter) IsExporting() bool {
	return e == HTTP || e == GRPC
}

// Create builds the span exporter for cfg.
func (e Exporter) Create(ctx context.Context, cfg *Config) (sdktrace.SpanExporter, error) {
	switch e {
	case HTTP:
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Url)}
		if h := headers(cfg.Token); h != nil {
			opts = append(opts, otlptracehttp.WithHeaders(h))
		}
		if !cfg.TLS.Enabled {
			opts = append(opts, otlptracehttp.WithInsecure())
		} else if cfg.TLS.CertPath != "" {
			tlsCfg, err := loadTLSConfig(cfg.TLS.CertPath)
			if err != nil {
				return nil, err
			}
			opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsCfg))
		}
		return otlptracehttp.New(ctx, opts...)
	case GRPC:
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpointURL(cfg.Url)}
		if h := headers(cfg.Token); h != nil {
			opts = append(opts, otlptracegrpc.WithHeaders(h))
		}
		if !cfg.TLS.Enabled {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else if cfg.TLS.CertPath != "" {
			tlsCfg, err := loadTLSConfig(cfg.TLS.CertPath)
			if err != nil {
				return nil, err
			}
			opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewTLS(tlsCfg)))
		}
		return otlptracegrpc.New(ctx, opts...)
	case STDOUT:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case NOOP, "":
		return &noopExporter{}, nil
	default:
		return nil, e.Validate()
	}
}

func headers(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func loadTLSConfig(certPath string) (*tls.Config, error) {
	pem, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read collector certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("failed to add collector certificate to the pool")
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

var _ sdktrace.SpanExporter = (*noopExporter)(nil)

type noopExporter struct{}

func (*noopExporter) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }

func (*noopExporter) Shutdown(context.Context) error { return nil }
