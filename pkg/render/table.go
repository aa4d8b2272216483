// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strconv"

	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/stats"
)

// UnknownAddress is shown for a hop that never answered.
const UnknownAddress = "*"

// TableColumns are the column headers of the table view.
var TableColumns = []string{"Hop", "IP", "Hostname", "RTTs (ms)", "Avg RTT (ms)", "Packet Loss", "Geo", "AS Info", "Reply Proto"}

// Table is the tabular view of a path: one row per hop in path order.
type Table struct {
	Rows []TableRow `json:"rows" yaml:"rows"`
}

// Empty reports whether the table has no rows. An empty table is not shown at all.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// TableRow holds the display cells of one hop.
type TableRow struct {
	Index         int           `json:"index" yaml:"index"`
	IP            string        `json:"ip" yaml:"ip"`
	Hostname      string        `json:"hostname" yaml:"hostname"`
	RTTs          string        `json:"rtts" yaml:"rtts"`
	AverageRTT    string        `json:"avgRtt" yaml:"avgRtt"`
	Loss          string        `json:"loss" yaml:"loss"`
	Geo           string        `json:"geo" yaml:"geo"`
	AS            string        `json:"as" yaml:"as"`
	ReplyProtocol string        `json:"replyProto" yaml:"replyProto"`
	Latency       stats.Latency `json:"-" yaml:"-"`
}

// Cells returns the row cells in [TableColumns] order.
func (r TableRow) Cells() []string {
	return []string{
		strconv.Itoa(r.Index),
		r.IP,
		r.Hostname,
		r.RTTs,
		r.AverageRTT,
		r.Loss,
		r.Geo,
		r.AS,
		r.ReplyProtocol,
	}
}

// RenderTable builds the table view of p. The full path is always shown,
// without sorting, filtering or pagination.
//
// The hostname cell shows the provider value as is, including the "Unknown"
// sentinel; only a missing hostname becomes "N/A".
func RenderTable(p hop.Path) Table {
	rows := make([]TableRow, 0, len(p))
	for _, h := range p {
		avg := stats.AverageRTT(h)
		rows = append(rows, TableRow{
			Index:         h.Index,
			IP:            h.IP.OrElse(UnknownAddress),
			Hostname:      h.Hostname.OrElse(stats.NotAvailableText),
			RTTs:          stats.JoinSamples(h.RTTs, ""),
			AverageRTT:    avg.Fixed(),
			Loss:          stats.FormatLoss(h.Loss),
			Geo:           h.Geo.OrElse(stats.NotAvailableText),
			AS:            h.AS.OrElse(stats.NotAvailableText),
			ReplyProtocol: h.ReplyProtocol.OrElse(stats.NotAvailableText),
			Latency:       avg,
		})
	}
	return Table{Rows: rows}
}
