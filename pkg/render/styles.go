// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/telekom/netpath/pkg/path"
	"github.com/telekom/netpath/pkg/stats"
)

// Theme holds the terminal styles of the views.
type Theme struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Border    lipgloss.Style
	Connector lipgloss.Style
	Muted     lipgloss.Style
	// Nodes is indexed by [path.Style].
	Nodes map[path.Style]lipgloss.Color
	// Grades is indexed by [stats.Grade].
	Grades map[stats.Grade]lipgloss.Color
}

// NodeWidth is the inner width of a graph node box.
const NodeWidth = 32

// DefaultTheme is the theme used by the CLI and the TUI.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1),
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FBBF24")).Padding(0, 1),
	Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")).Padding(0, 1),
	Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Connector: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	Nodes: map[path.Style]lipgloss.Color{
		path.StyleSource:       lipgloss.Color("#10B981"),
		path.StyleIntermediate: lipgloss.Color("#60A5FA"),
		path.StyleDestination:  lipgloss.Color("#F87171"),
	},
	Grades: map[stats.Grade]lipgloss.Color{
		stats.GradeNone:   lipgloss.Color("#6B7280"),
		stats.GradeGood:   lipgloss.Color("#34D399"),
		stats.GradeMedium: lipgloss.Color("#FBBF24"),
		stats.GradeHigh:   lipgloss.Color("#F87171"),
	},
}

// NodeBox returns the box style of a node category.
func (t Theme) NodeBox(s path.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Nodes[s]).
		Width(NodeWidth).
		Padding(0, 1)
}

// Latency colors l by its grade.
func (t Theme) Latency(l stats.Latency, text string) string {
	return lipgloss.NewStyle().Foreground(t.Grades[stats.GradeOf(l)]).Render(text)
}

// Legend renders the style categories in legend order.
func (t Theme) Legend() string {
	items := make([]string, 0, len(path.Styles))
	for _, s := range path.Styles {
		swatch := lipgloss.NewStyle().Foreground(t.Nodes[s]).Render("■")
		items = append(items, swatch+" "+legendLabel(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(items, "   ")...)
}

func legendLabel(s path.Style) string {
	switch s {
	case path.StyleSource:
		return "Source"
	case path.StyleDestination:
		return "Destination"
	default:
		return "Intermediate"
	}
}

func joinWith(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
