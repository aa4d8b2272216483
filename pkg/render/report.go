// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/path"
	"github.com/telekom/netpath/pkg/stats"
)

// Report is the machine readable result of a trace: the hops with their
// derived values plus the requested views.
type Report struct {
	Destination string      `json:"destination" yaml:"destination"`
	Hops        []ReportHop `json:"hops" yaml:"hops"`
	Table       *Table      `json:"table,omitempty" yaml:"table,omitempty"`
	Graph       *Graph      `json:"graph,omitempty" yaml:"graph,omitempty"`
}

// ReportHop is a hop record together with its role and average RTT.
type ReportHop struct {
	hop.Record `yaml:",inline"`
	AverageRTT stats.Latency `json:"avgRtt" yaml:"avgRtt"`
	Role       path.Role     `json:"role" yaml:"role"`
}

// NewReport builds the report of p traced towards destination,
// including the given views.
func NewReport(destination string, p hop.Path, views ...ViewMode) Report {
	r := Report{
		Destination: destination,
		Hops:        make([]ReportHop, 0, len(p)),
	}
	for _, c := range path.Classify(p) {
		r.Hops = append(r.Hops, ReportHop{
			Record:     c.Hop,
			AverageRTT: stats.AverageRTT(c.Hop),
			Role:       c.Role,
		})
	}

	for _, v := range views {
		switch v {
		case ViewTable:
			t := RenderTable(p)
			r.Table = &t
		case ViewGraph:
			g := RenderGraph(p)
			r.Graph = &g
		}
	}
	return r
}
