// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/telekom/netpath/pkg/config"
)

// bindFlags binds the flags of cmd to their config keys
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig parses and validates the startup configuration
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.New()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(ctx); err != nil {
		return nil, fmt.Errorf("error while validating the config: %w", err)
	}
	return &cfg, nil
}
