// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Zone is the rectangle a node occupies on a [Canvas].
// Top and Left are inclusive, Bottom and Right exclusive.
type Zone struct {
	Position int
	Top      int
	Bottom   int
	Left     int
	Right    int
}

// Contains reports whether the cell (x, y) lies in the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.Left && x < z.Right && y >= z.Top && y < z.Bottom
}

// Canvas is a laid out graph: the terminal lines plus the zone of every node.
type Canvas struct {
	Lines []string
	Zones []Zone
}

// Width is the width in cells of the widest line.
func (c Canvas) Width() int {
	w := 0
	for _, l := range c.Lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// Height is the number of lines.
func (c Canvas) Height() int {
	return len(c.Lines)
}

func (c Canvas) String() string {
	return strings.Join(c.Lines, "\n")
}

// HitTest returns the path position of the node under (x, y).
func (c Canvas) HitTest(x, y int) (int, bool) {
	for _, z := range c.Zones {
		if z.Contains(x, y) {
			return z.Position, true
		}
	}
	return 0, false
}

// connectorIndent centers connectors under the node boxes.
const connectorIndent = NodeWidth / 2

// Layout draws g top to bottom: the title, the legend, then each node box
// followed by a connector carrying the edge label to the next node.
func (t Theme) Layout(g Graph) Canvas {
	c := Canvas{}
	c.add(t.Title.Render(GraphTitle))
	c.add(t.Legend())
	c.add("")

	if g.Empty() {
		c.add(t.Muted.Render(g.Placeholder))
		return c
	}

	pad := strings.Repeat(" ", connectorIndent)
	for i, n := range g.Nodes {
		box := t.NodeBox(n.Style).Render(nodeContent(n))
		top := c.Height()
		c.add(strings.Split(box, "\n")...)
		c.Zones = append(c.Zones, Zone{
			Position: n.Position,
			Top:      top,
			Bottom:   c.Height(),
			Left:     0,
			Right:    lipgloss.Width(box),
		})

		if i >= len(g.Connectors) {
			continue
		}
		e := g.Connectors[i]
		c.add(
			pad+t.Connector.Render("│"),
			pad+t.Connector.Render("│ ")+t.Latency(e.Latency, e.Label),
			pad+t.Connector.Render("▼"),
		)
	}
	return c
}

func nodeContent(n Node) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Hop %d", n.Index)),
		n.IP,
	}
	if n.Hostname != "" {
		lines = append(lines, n.Hostname)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) add(lines ...string) {
	c.Lines = append(c.Lines, lines...)
}
