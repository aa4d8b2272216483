// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/interact"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
)

// tableHeaderHeight is the header row plus its bottom border
const tableHeaderHeight = 2

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case traceDoneMsg:
		log := logger.FromContext(m.ctx).With("destination", msg.destination)
		if msg.err != nil {
			log.WarnContext(m.ctx, "Trace failed", "error", msg.err)
			m.apply(state.ResponseFailed{Err: msg.err})
			return m, nil
		}
		log.DebugContext(m.ctx, "Trace finished", "hops", len(msg.path))
		m.apply(state.ResponseReceived{Path: msg.path})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.apply(state.ViewModeChanged{Mode: m.state.Mode.Toggle()})
		return m, nil
	case m.state.Loading:
		// controls are disabled while a trace is in flight
		return m, nil
	case key.Matches(msg, m.keys.Trace):
		m.apply(state.RequestStarted{Destination: m.input.Value()})
		dest := m.state.Destination
		return m, tea.Batch(m.trace(dest), m.spinner.Tick)
	case key.Matches(msg, m.keys.Up, m.keys.Down) && m.state.Mode == render.ViewGraph:
		m.scroll(msg)
		return m, nil
	}

	var cmds [2]tea.Cmd
	m.input, cmds[0] = m.input.Update(msg)
	if m.state.Mode == render.ViewTable {
		m.table, cmds[1] = m.table.Update(msg)
	}
	return m, tea.Batch(cmds[:]...)
}

// updateMouse tracks the pointer over the graph nodes
// and scrolls the graph with the mouse wheel.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.state.Mode != render.ViewGraph {
		return
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(1)
	case msg.Action == tea.MouseActionMotion:
		position, over := m.canvas.HitTest(msg.X, msg.Y-m.bodyTop()+m.offset)
		m.apply(state.HoverChanged{
			Position: position,
			Over:     over && msg.Y >= m.bodyTop() && msg.Y < m.bodyTop()+m.bodyHeight(),
			Pointer:  interact.Position{X: msg.X, Y: msg.Y},
		})
	}
}

// trace asks the provider for the path towards destination
func (m Model) trace(destination string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		p, err := client.Trace(ctx, destination)
		return traceDoneMsg{destination: destination, path: p, err: err}
	}
}

func (m *Model) scroll(msg tea.KeyMsg) {
	step := 1
	if msg.String() == "pgup" || msg.String() == "pgdown" {
		step = max(m.bodyHeight(), 1)
	}
	if key.Matches(msg, m.keys.Up) {
		step = -step
	}
	m.scrollBy(step)
}

func (m *Model) scrollBy(lines int) {
	limit := max(m.canvas.Height()-m.bodyHeight(), 0)
	m.offset = min(max(m.offset+lines, 0), limit)
	m.apply(state.HoverChanged{Over: false})
}

// apply advances the state and redraws the views that depend on the path
func (m *Model) apply(e state.Event) {
	prev := m.state
	m.state = state.Apply(m.state, e)
	if samePath(prev, m.state) {
		return
	}
	m.offset = 0
	m.refresh()
}

// refresh lays out the views of the current path
func (m *Model) refresh() {
	m.canvas = m.theme.Layout(render.RenderGraph(m.state.Path))

	tbl := render.RenderTable(m.state.Path)
	rows := make([]table.Row, 0, len(tbl.Rows))
	columns := make([]table.Column, len(render.TableColumns))
	for i, c := range render.TableColumns {
		columns[i] = table.Column{Title: c, Width: lipgloss.Width(c)}
	}
	for _, r := range tbl.Rows {
		cells := r.Cells()
		for i, c := range cells {
			columns[i].Width = max(columns[i].Width, lipgloss.Width(c))
		}
		rows = append(rows, cells)
	}
	m.table.SetColumns(columns)
	m.table.SetRows(rows)

	height := len(rows) + tableHeaderHeight
	if m.height > 0 {
		height = min(height, m.bodyHeight())
	}
	m.table.SetHeight(max(height, tableHeaderHeight+1))
}

func samePath(a, b state.Snapshot) bool {
	if len(a.Path) != len(b.Path) || (a.Path == nil) != (b.Path == nil) {
		return false
	}
	for i := range a.Path {
		if !a.Path[i].Equal(b.Path[i]) {
			return false
		}
	}
	return true
}
