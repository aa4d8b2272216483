// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/telekom/netpath/pkg/render"
)

// Values of the view query parameter.
const (
	ViewTable = "table"
	ViewGraph = "graph"
	ViewAll   = "all"
)

// ParseViews maps the view query parameter to the views included in a report.
// An empty parameter selects all views.
func ParseViews(s string) ([]render.ViewMode, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", ViewAll:
		return slices.Clone(render.ViewModes), nil
	case ViewTable, ViewGraph:
		m, err := render.ParseViewMode(v)
		if err != nil {
			return nil, err
		}
		return []render.ViewMode{m}, nil
	default:
		return nil, fmt.Errorf("unknown view %q, must be one of %s, %s, %s", s, ViewTable, ViewGraph, ViewAll)
	}
}
