// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/telekom/netpath/pkg/stats"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding of the CLI.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists all output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses an output format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, must be one of text, json, yaml", s)
	}
}

// Encode writes r to w in format f.
// The text format renders the views of r for a terminal.
func (t Theme) Encode(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		if r.Table != nil {
			if err := t.WriteTable(w, *r.Table); err != nil {
				return err
			}
		}
		if r.Graph != nil {
			return t.WriteGraph(w, *r.Graph)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// TableString renders tbl with borders. An empty table renders as "".
func (t Theme) TableString(tbl Table) string {
	if tbl.Empty() {
		return ""
	}

	rows := make([][]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		rows = append(rows, r.Cells())
	}
	lt := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Border).
		Headers(TableColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			// average RTT column
			if col == 4 && row >= 0 && row < len(tbl.Rows) {
				return t.Cell.Foreground(t.Grades[stats.GradeOf(tbl.Rows[row].Latency)])
			}
			return t.Cell
		})
	return lt.Render()
}

// WriteTable writes the table view to w. Nothing is written for an empty table.
func (t Theme) WriteTable(w io.Writer, tbl Table) error {
	s := t.TableString(tbl)
	if s == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// WriteGraph writes the laid out graph view to w.
func (t Theme) WriteGraph(w io.Writer, g Graph) error {
	_, err := fmt.Fprintln(w, t.Layout(g).String())
	return err
}
