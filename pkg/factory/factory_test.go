// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package factory

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/netpath/pkg/config"
	"github.com/telekom/netpath/pkg/provider"
	"github.com/telekom/netpath/test"
)

func TestNewClient(t *testing.T) {
	test.MarkAsShort(t)

	tests := []struct {
		name string
		cfg  config.ProviderConfig
		want any
	}{
		{
			name: "Provider over http",
			cfg:  config.ProviderConfig{Url: test.ProviderURL, Timeout: time.Second},
			want: &provider.HTTPClient{},
		},
		{
			name: "Replay from directory",
			cfg:  config.ProviderConfig{Url: test.ProviderURL, Timeout: time.Second, ReplayDir: t.TempDir()},
			want: &provider.FileClient{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg, prometheus.NewRegistry())
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}

func TestNewClient_RegistersMetrics(t *testing.T) {
	test.MarkAsShort(t)

	reg := prometheus.NewRegistry()
	cfg := config.ProviderConfig{Url: test.ProviderURL, Timeout: time.Second}

	_, err := NewClient(cfg, reg)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "netpath_path_hops")
	assert.Contains(t, names, "netpath_provider_request_duration_seconds")

	_, err = NewClient(cfg, reg)
	assert.Error(t, err, "registering a second client on the same registry must fail")

	_, err = NewClient(cfg, nil)
	assert.NoError(t, err)
}
