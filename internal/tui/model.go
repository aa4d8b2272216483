// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package tui is the interactive terminal front end of netpath.
// It drives a [state.Snapshot] from key, mouse and provider events
// and draws the table or graph view of the traced path.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/provider"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
)

// Config configures the interactive UI.
type Config struct {
	// Destination is traced when the input is left blank
	Destination string
	// Mode is the view shown first
	Mode render.ViewMode
	// Theme styles the views
	Theme render.Theme
}

// Model is the Bubble Tea model of the interactive UI.
type Model struct {
	ctx    context.Context
	client provider.Client
	theme  render.Theme

	state state.Snapshot
	// canvas is the laid out graph of the current path
	canvas render.Canvas
	// offset is the first graph line shown
	offset int

	input   textinput.Model
	spinner spinner.Model
	table   table.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
}

// traceDoneMsg carries the outcome of a trace request
type traceDoneMsg struct {
	destination string
	path        hop.Path
	err         error
}

// New creates the model of the interactive UI asking client for traces.
func New(ctx context.Context, client provider.Client, cfg Config) Model {
	fallback := state.ResolveDestination(cfg.Destination, "")

	ti := textinput.New()
	ti.Prompt = "Destination: "
	ti.Placeholder = fallback
	ti.CharLimit = 253
	ti.Width = 40
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))),
	)

	m := Model{
		ctx:     ctx,
		client:  client,
		theme:   cfg.Theme,
		state:   state.New(cfg.Mode).WithDefaultDestination(fallback),
		input:   ti,
		spinner: sp,
		table:   newTable(cfg.Theme),
		help:    help.New(),
		keys:    keys,
	}
	m.refresh()
	return m
}

func newTable(theme render.Theme) table.Model {
	columns := make([]table.Column, 0, len(render.TableColumns))
	for _, c := range render.TableColumns {
		columns = append(columns, table.Column{Title: c, Width: lipgloss.Width(c)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	// letters belong to the destination input
	t.KeyMap = table.KeyMap{
		LineUp:   key.NewBinding(key.WithKeys("up")),
		LineDown: key.NewBinding(key.WithKeys("down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border.GetForeground()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init starts the cursor blinking in the destination input
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run shows the interactive UI until the user quits or ctx is done.
func Run(ctx context.Context, client provider.Client, cfg Config) error {
	log := logger.FromContext(ctx)
	p := tea.NewProgram(
		New(ctx, client, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	log.DebugContext(ctx, "Starting interactive ui")
	_, err := p.Run()
	return err
}

// Snapshot returns the current application state.
func (m Model) Snapshot() state.Snapshot {
	return m.state
}
