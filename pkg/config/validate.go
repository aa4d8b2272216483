// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/provider"
	"github.com/telekom/netpath/pkg/render"
)

// Validate validates the startup config and returns all problems joined
func (c *Config) Validate(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)

	if vErr := c.Provider.Validate(ctx); vErr != nil {
		log.ErrorContext(ctx, "The provider configuration is invalid")
		err = errors.Join(err, vErr)
	}

	if _, vErr := provider.ValidateDestination(c.Destination); vErr != nil {
		log.ErrorContext(ctx, "The default destination must be an IP address or a host name", "destination", c.Destination)
		err = errors.Join(err, fmt.Errorf("%w: %w", ErrInvalidDestination, vErr))
	}

	if _, vErr := render.ParseViewMode(c.View); vErr != nil {
		log.ErrorContext(ctx, "The view must be table or graph", "view", c.View)
		err = errors.Join(err, ErrInvalidView)
	}

	if c.HasTelemetry() {
		if vErr := c.Telemetry.Validate(ctx); vErr != nil {
			log.ErrorContext(ctx, "The telemetry configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if vErr := c.Api.Validate(); vErr != nil {
		log.ErrorContext(ctx, "The api configuration is invalid")
		err = errors.Join(err, vErr)
	}

	if err != nil {
		return fmt.Errorf("validation of configuration failed: %w", err)
	}
	return nil
}

// Validate validates the provider configuration
func (c *ProviderConfig) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if c.ReplayDir != "" {
		info, err := os.Stat(c.ReplayDir)
		if err != nil || !info.IsDir() {
			log.ErrorContext(ctx, "The replay directory must be an existing directory", "replayDir", c.ReplayDir)
			return ErrInvalidReplayDir
		}
		return nil
	}

	u, err := url.ParseRequestURI(c.Url)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		log.ErrorContext(ctx, "The provider url must be an absolute http(s) url", "url", c.Url)
		return ErrInvalidProviderURL
	}

	if c.Timeout <= 0 {
		log.ErrorContext(ctx, "The provider timeout must be above 0", "timeout", c.Timeout)
		return ErrInvalidProviderTimeout
	}
	return nil
}
