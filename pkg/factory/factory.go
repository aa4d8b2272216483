// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/netpath/pkg/config"
	"github.com/telekom/netpath/pkg/provider"
)

// NewClient creates the trace provider client described by cfg.
// With a replay directory the recorded responses are replayed; otherwise
// the provider is asked over HTTP and the client's metrics are registered with reg.
func NewClient(cfg config.ProviderConfig, reg prometheus.Registerer) (provider.Client, error) {
	if cfg.ReplayDir != "" {
		return provider.NewFileClient(cfg.ReplayDir), nil
	}

	c := provider.NewClient(provider.Config{
		URL:     cfg.Url,
		Timeout: cfg.Timeout,
	})
	if reg == nil {
		return c, nil
	}
	for _, collector := range c.GetMetricCollectors() {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register provider metrics: %w", err)
		}
	}
	return c, nil
}
