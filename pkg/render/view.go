// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package render projects a classified and aggregated [hop.Path] into
// the table and graph views, and encodes them for terminals and machines.
//
// Renderers are pure: they derive roles and statistics from the path on
// every call, so a view always matches the path it was built from.
package render

import (
	"fmt"
	"strings"
)

// ViewMode selects the presentation of a path.
type ViewMode int

const (
	// ViewTable is the default view.
	ViewTable ViewMode = iota
	ViewGraph
)

// ViewModes lists all view modes.
var ViewModes = []ViewMode{ViewTable, ViewGraph}

func (m ViewMode) String() string {
	if m == ViewGraph {
		return "graph"
	}
	return "table"
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGraph {
		return ViewTable
	}
	return ViewGraph
}

// MarshalText encodes the view mode by name.
func (m ViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseViewMode parses "table" or "graph", ignoring case.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return ViewTable, nil
	case "graph":
		return ViewGraph, nil
	default:
		return ViewTable, fmt.Errorf("unknown view mode %q, must be one of table, graph", s)
	}
}
