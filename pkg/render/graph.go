// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/path"
	"github.com/telekom/netpath/pkg/stats"
)

const (
	// GraphTitle heads the graph view.
	GraphTitle = "Network Path Visualization"
	// NoDataMessage replaces the graph of an empty path.
	NoDataMessage = "No network path data available. Run a traceroute to see the graph."
)

// Graph is the node-and-connector view of a path.
// Connectors[i] links Nodes[i] to Nodes[i+1].
type Graph struct {
	Nodes      []Node      `json:"nodes" yaml:"nodes"`
	Connectors []Connector `json:"connectors" yaml:"connectors"`
	// Placeholder is set instead of nodes when the path is empty.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Empty reports whether the graph shows the placeholder.
func (g Graph) Empty() bool {
	return len(g.Nodes) == 0
}

// Node is one hop of the graph view.
type Node struct {
	// Position is the 0-based position of the hop in the path.
	Position int `json:"position" yaml:"position"`
	// Index is the hop index sent by the provider.
	Index int    `json:"index" yaml:"index"`
	IP    string `json:"ip" yaml:"ip"`
	// Hostname is empty when the hop has no hostname or the "Unknown" sentinel.
	Hostname string     `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Role     path.Role  `json:"role" yaml:"role"`
	Style    path.Style `json:"style" yaml:"style"`
	// Hop is the record the node was built from.
	Hop hop.Record `json:"-" yaml:"-"`
}

// Connector is the edge between two consecutive nodes.
type Connector struct {
	From    int           `json:"from" yaml:"from"`
	To      int           `json:"to" yaml:"to"`
	Latency stats.Latency `json:"latency" yaml:"latency"`
	// Label is the unrounded edge latency, e.g. "12.345ms", or "N/A".
	Label string `json:"label" yaml:"label"`
}

// RenderGraph builds the graph view of p.
// An empty path yields a graph holding only the no-data placeholder.
func RenderGraph(p hop.Path) Graph {
	if len(p) == 0 {
		return Graph{Placeholder: NoDataMessage}
	}

	classified := path.Classify(p)
	g := Graph{
		Nodes:      make([]Node, 0, len(classified)),
		Connectors: make([]Connector, 0, len(classified)-1),
	}
	for i, c := range classified {
		name, _ := c.Hop.DisplayHostname()
		g.Nodes = append(g.Nodes, Node{
			Position: i,
			Index:    c.Hop.Index,
			IP:       c.Hop.IP.OrElse(UnknownAddress),
			Hostname: name,
			Role:     c.Role,
			Style:    c.Role.Style(),
			Hop:      c.Hop,
		})

		if i == len(classified)-1 {
			continue
		}
		next := classified[i+1].Hop
		edge := stats.EdgeLabel(c.Hop, next)
		g.Connectors = append(g.Connectors, Connector{
			From:    c.Hop.Index,
			To:      next.Index,
			Latency: edge,
			Label:   edge.String(),
		})
	}
	return g
}
