// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net"
)

// Config is the configuration for the api server
type Config struct {
	// ListeningAddress is the host:port the server listens on, e.g. ":8080"
	ListeningAddress string `yaml:"address" mapstructure:"address"`
}

// Validate checks that the listening address can be bound.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListeningAddress); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAddress, c.ListeningAddress, err)
	}
	return nil
}
