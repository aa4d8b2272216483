// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/telekom/netpath/pkg/interact"
	"github.com/telekom/netpath/pkg/render"
)

const title = "netpath"

var (
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// View renders the UI
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	screen := b.String()

	if tt, ok := m.state.Tooltip(); ok {
		box := m.tooltip(tt)
		x, y := tt.Position.X, tt.Position.Y
		if m.width > 0 {
			x = min(x, m.width-lipgloss.Width(box))
		}
		screen = overlay(screen, box, max(x, 0), max(y, 0))
	}
	return screen
}

// header is the title, the destination input and the status line
func (m Model) header() string {
	var status string
	switch {
	case m.state.Loading:
		status = m.spinner.View() + " Tracing " + m.state.Destination + "..."
	case m.state.Failure != nil:
		status = failureStyle.Render(m.state.Failure.String())
	case m.state.Path != nil:
		status = m.theme.Muted.Render(fmt.Sprintf("%d hops to %s", len(m.state.Path), m.state.Destination))
	default:
		status = m.theme.Muted.Render("Enter a destination and press enter to trace it.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(title+" | "+m.state.Mode.String()),
		m.input.View(),
		status,
	)
}

// body is the table or the visible part of the graph
func (m Model) body() string {
	if m.state.Mode == render.ViewTable {
		if len(m.state.Path) == 0 {
			return ""
		}
		return m.table.View()
	}

	lines := m.canvas.Lines
	if m.height > 0 {
		end := min(m.offset+m.bodyHeight(), len(lines))
		lines = lines[min(m.offset, end):end]
	}
	return strings.Join(lines, "\n")
}

// bodyTop is the screen row the body starts at
func (m Model) bodyTop() int {
	return lipgloss.Height(m.header()) + 1
}

// bodyHeight is the number of screen rows available to the body
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return m.canvas.Height()
	}
	return max(m.height-m.bodyTop()-lipgloss.Height(m.help.View(m.keys))-1, 1)
}

// tooltip renders the detail panel of the hovered hop
func (m Model) tooltip(tt interact.Tooltip) string {
	labelWidth := 0
	for _, r := range tt.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	label := m.theme.Muted.Width(labelWidth + 2)

	lines := []string{lipgloss.NewStyle().Bold(true).Render(tt.Title)}
	for _, r := range tt.Rows {
		lines = append(lines, label.Render(r.Label+":")+r.Value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
