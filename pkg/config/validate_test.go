// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/telekom/netpath/pkg/api"
	"github.com/telekom/netpath/pkg/metrics"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/test"
)

func TestConfig_Validate(t *testing.T) {
	test.MarkAsShort(t)

	tests := []struct {
		name     string
		modify   func(c *Config)
		wantErrs []error
	}{
		{
			name:   "Defaults are valid",
			modify: func(*Config) {},
		},
		{
			name: "Replay from existing directory ignores the url",
			modify: func(c *Config) {
				c.Provider = ProviderConfig{ReplayDir: t.TempDir()}
			},
		},
		{
			name: "Telemetry with stdout exporter",
			modify: func(c *Config) {
				c.Telemetry = metrics.Config{Enabled: true, Exporter: metrics.STDOUT}
			},
		},
		{
			name: "Provider url without scheme",
			modify: func(c *Config) {
				c.Provider.Url = "localhost:5000"
			},
			wantErrs: []error{ErrInvalidProviderURL},
		},
		{
			name: "Provider url with unsupported scheme",
			modify: func(c *Config) {
				c.Provider.Url = "ftp://provider.example"
			},
			wantErrs: []error{ErrInvalidProviderURL},
		},
		{
			name: "Zero timeout",
			modify: func(c *Config) {
				c.Provider.Timeout = 0
			},
			wantErrs: []error{ErrInvalidProviderTimeout},
		},
		{
			name: "Missing replay directory",
			modify: func(c *Config) {
				c.Provider.ReplayDir = filepath.Join(t.TempDir(), "missing")
			},
			wantErrs: []error{ErrInvalidReplayDir},
		},
		{
			name: "All problems are reported",
			modify: func(c *Config) {
				c.Provider.Timeout = -time.Second
				c.Destination = "not a host"
				c.View = "chart"
				c.Api.ListeningAddress = "no-port"
			},
			wantErrs: []error{ErrInvalidProviderTimeout, ErrInvalidDestination, ErrInvalidView, api.ErrInvalidAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.modify(&c)

			err := c.Validate(t.Context())
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestConfig_Validate_InvalidTelemetry(t *testing.T) {
	test.MarkAsShort(t)

	c := New()
	c.Telemetry = metrics.Config{Enabled: true, Exporter: metrics.HTTP}
	assert.Error(t, c.Validate(t.Context()))

	c.Telemetry.Enabled = false
	assert.NoError(t, c.Validate(t.Context()))
}

func TestConfig_ViewMode(t *testing.T) {
	c := New()
	assert.Equal(t, render.ViewTable, c.ViewMode())

	c.View = "GRAPH"
	assert.Equal(t, render.ViewGraph, c.ViewMode())

	c.View = "bogus"
	assert.Equal(t, render.ViewTable, c.ViewMode())
}

func TestConfig_IsReplay(t *testing.T) {
	c := New()
	assert.False(t, c.IsReplay())
	assert.False(t, c.HasTelemetry())

	c.Provider.ReplayDir = "recordings"
	assert.True(t, c.IsReplay())
}
