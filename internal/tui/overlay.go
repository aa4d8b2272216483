// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg over bg with its top left corner at cell (x, y).
// bg is extended with blank cells where fg reaches past it.
func overlay(bg, fg string, x, y int) string {
	lines := strings.Split(bg, "\n")
	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(lines) {
			lines = append(lines, "")
		}

		line := lines[row]
		if w := ansi.StringWidth(line); w < x {
			line += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fl), "")
		lines[row] = left + fl + right
	}
	return strings.Join(lines, "\n")
}
