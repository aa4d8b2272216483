// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the startup configuration of netpath.
package config

import (
	"time"

	"github.com/telekom/netpath/pkg/api"
	"github.com/telekom/netpath/pkg/metrics"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
)

// Defaults of the startup configuration.
const (
	DefaultProviderURL     = "http://localhost:5000"
	DefaultProviderTimeout = 60 * time.Second
	DefaultDestination     = state.DefaultDestination
	DefaultAPIAddress      = ":8080"
)

// DefaultView is the view shown first.
var DefaultView = render.ViewTable.String()

type Config struct {
	// Provider configures the trace provider
	Provider ProviderConfig `yaml:"provider" mapstructure:"provider"`
	// Destination is traced when no destination is given
	Destination string `yaml:"destination" mapstructure:"destination"`
	// View is the initial view, table or graph
	View string `yaml:"view" mapstructure:"view"`
	// Api is the configuration for the api server
	Api api.Config `yaml:"api" mapstructure:"api"`
	// Telemetry is the configuration for the telemetry
	Telemetry metrics.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ProviderConfig configures where traces come from.
type ProviderConfig struct {
	// Url is the base url of the trace provider
	Url string `yaml:"url" mapstructure:"url"`
	// Timeout bounds one trace request
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// ReplayDir replays recorded provider responses from this directory instead of asking the provider
	ReplayDir string `yaml:"replayDir" mapstructure:"replayDir"`
}

// New returns the default configuration.
func New() Config {
	return Config{
		Provider: ProviderConfig{
			Url:     DefaultProviderURL,
			Timeout: DefaultProviderTimeout,
		},
		Destination: DefaultDestination,
		View:        DefaultView,
		Api:         api.Config{ListeningAddress: DefaultAPIAddress},
	}
}

// HasTelemetry returns true if the config has telemetry enabled
func (c *Config) HasTelemetry() bool {
	return c.Telemetry.Enabled
}

// IsReplay returns true if traces are replayed from recordings
func (c *Config) IsReplay() bool {
	return c.Provider.ReplayDir != ""
}

// ViewMode returns the configured initial view. An invalid view yields the table.
func (c *Config) ViewMode() render.ViewMode {
	m, err := render.ParseViewMode(c.View)
	if err != nil {
		return render.ViewTable
	}
	return m
}
