// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/internal/tui"
	"github.com/telekom/netpath/pkg/factory"
	"github.com/telekom/netpath/pkg/render"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the ui is started without a terminal
var ErrNotTerminal = errors.New("the interactive ui needs a terminal, use the trace command instead")

// NewCmdUI creates a new ui command
func NewCmdUI() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Explore network paths interactively",
		Long: "Starts the interactive terminal UI. Enter a destination and press enter to trace it,\n" +
			"tab switches between the table and the graph. Hovering a hop in the graph shows its details.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runUI,
	}

	cmd.Flags().String("view", render.ViewTable.String(), "view shown first: table or graph")
	cmd.Flags().String("log-file", "", "file the logs are appended to, logs are discarded if empty")

	return cmd
}

func runUI(cmd *cobra.Command, _ []string) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	if err = bindFlags(cmd, map[string]string{"view": "view"}); err != nil {
		return err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}

	// the terminal belongs to the ui
	var w io.Writer
	if logFile != "" {
		f, oErr := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if oErr != nil {
			return fmt.Errorf("failed to open log file: %w", oErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}
	ctx := logger.IntoContext(cmd.Context(), logger.NewWriterLogger(w))

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	client, err := factory.NewClient(cfg.Provider, nil)
	if err != nil {
		return err
	}

	return tui.Run(ctx, client, tui.Config{
		Destination: cfg.Destination,
		Mode:        cfg.ViewMode(),
		Theme:       render.DefaultTheme,
	})
}
