// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package interact tracks pointer hover over graph nodes and builds the
// tooltip of the hovered hop.
package interact

import (
	"fmt"

	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/stats"
)

// Position is a pointer or tooltip location in terminal cells.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns p shifted by o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// TooltipOffset places the tooltip right of and above the pointer.
var TooltipOffset = Position{X: 2, Y: -1}

// Tooltip rows, in display order.
const (
	LabelIP            = "IP Address"
	LabelHostname      = "Hostname"
	LabelLocation      = "Location"
	LabelAS            = "AS Info"
	LabelAverageRTT    = "Avg RTT"
	LabelLoss          = "Packet Loss"
	LabelRTTs          = "RTT Values"
	LabelReplyProtocol = "Reply Proto"
)

// Row is one label and value line of a tooltip.
type Row struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Tooltip is the detail panel of the hovered hop.
type Tooltip struct {
	Title    string   `json:"title" yaml:"title"`
	Rows     []Row    `json:"rows" yaml:"rows"`
	Position Position `json:"position" yaml:"position"`
}

// Value returns the value of the row labeled label.
func (t Tooltip) Value(label string) (string, bool) {
	for _, r := range t.Rows {
		if r.Label == label {
			return r.Value, true
		}
	}
	return "", false
}

// NewTooltip builds the tooltip of h, shown at pointer plus [TooltipOffset].
// Missing fields show as "N/A"; the hostname shows the provider value as is.
func NewTooltip(h hop.Record, pointer Position) Tooltip {
	avg := stats.AverageRTT(h)
	avgText := avg.Fixed()
	if avg.Available() {
		avgText += "ms"
	}

	return Tooltip{
		Title: fmt.Sprintf("Hop %d", h.Index),
		Rows: []Row{
			{Label: LabelIP, Value: h.IP.OrElse(stats.NotAvailableText)},
			{Label: LabelHostname, Value: h.Hostname.OrElse(stats.NotAvailableText)},
			{Label: LabelLocation, Value: h.Geo.OrElse(stats.NotAvailableText)},
			{Label: LabelAS, Value: h.AS.OrElse(stats.NotAvailableText)},
			{Label: LabelAverageRTT, Value: avgText},
			{Label: LabelLoss, Value: stats.FormatLoss(h.Loss)},
			{Label: LabelRTTs, Value: stats.JoinSamples(h.RTTs, "ms")},
			{Label: LabelReplyProtocol, Value: h.ReplyProtocol.OrElse(stats.NotAvailableText)},
		},
		Position: pointer.Add(TooltipOffset),
	}
}
