// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/config"
	"github.com/telekom/netpath/pkg/server"
)

// NewCmdServe creates a new serve command
func NewCmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve traced paths over HTTP",
		Long: "Starts the netpath API.\n" +
			"GET /v1/paths/{destination} traces a destination, /openapi describes the api and /metrics exposes the metrics.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.Flags().String("api.address", config.DefaultAPIAddress, "api: the address the server is listening on")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd, map[string]string{"api.address": "api.address"}); err != nil {
		return err
	}
	ctx, cancel := logger.NewContextWithLogger(cmd.Context())
	defer cancel()
	log := logger.FromContext(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	s, err := server.New(cfg, cmd.Root().Version)
	if err != nil {
		return err
	}

	cErr := make(chan error, 1)
	log.InfoContext(ctx, "Running netpath server")
	go func() {
		cErr <- s.Run(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
		log.InfoContext(ctx, "Signal received, shutting down")
		cancel()
		<-cErr
		return nil
	case err = <-cErr:
		return err
	}
}
