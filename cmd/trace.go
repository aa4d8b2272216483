// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/factory"
	"github.com/telekom/netpath/pkg/metrics"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
)

// NewCmdTrace creates a new trace command
func NewCmdTrace() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [destination]",
		Short: "Trace the path towards a destination and print it",
		Long: "Asks the trace provider for the path towards the destination and prints it.\n" +
			"The text output shows the selected view, json and yaml print the full report with both views.\n" +
			"Without a destination the configured default destination is traced.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTrace,
	}

	cmd.Flags().String("view", render.ViewTable.String(), "view of the text output: table or graph")
	cmd.Flags().StringP("output", "o", string(render.FormatText), "output format: text, json or yaml")

	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{"view": "view"}); err != nil {
		return err
	}
	ctx, cancel := logger.NewContextWithLogger(cmd.Context())
	defer cancel()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(output)
	if err != nil {
		return err
	}

	m := metrics.New(cfg.Telemetry, cmd.Root().Version)
	if err = m.InitTracing(ctx); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if sErr := m.Shutdown(ctx); sErr != nil {
			logger.FromContext(ctx).ErrorContext(ctx, "Failed to shutdown tracing", "error", sErr)
		}
	}()

	client, err := factory.NewClient(cfg.Provider, m.GetRegistry())
	if err != nil {
		return err
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	s := state.Apply(state.New(cfg.ViewMode()).WithDefaultDestination(cfg.Destination), state.RequestStarted{
		Destination: input,
	})

	p, err := client.Trace(ctx, s.Destination)
	if err != nil {
		s = state.Apply(s, state.ResponseFailed{Err: err})
		return errors.New(s.Failure.String())
	}
	s = state.Apply(s, state.ResponseReceived{Path: p})

	views := render.ViewModes
	if format == render.FormatText {
		views = []render.ViewMode{s.Mode}
	}
	return render.DefaultTheme.Encode(cmd.OutOrStdout(), format, render.NewReport(s.Destination, s.Path, views...))
}
