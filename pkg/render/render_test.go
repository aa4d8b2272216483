// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/path"
	"gopkg.in/yaml.v3"
)

// twoHops is a path with a responding first hop and a silent second hop.
func twoHops() hop.Path {
	return hop.Path{
		{Index: 1, IP: hop.Some("10.0.0.1"), Hostname: hop.Some("gw.local"), RTTs: []float64{1, 2, 3}},
		{Index: 2, RTTs: []float64{}, Loss: 100},
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name string
		path hop.Path
		want []TableRow
	}{
		{
			name: "Responding and silent hop",
			path: twoHops(),
			want: []TableRow{
				{Index: 1, IP: "10.0.0.1", Hostname: "gw.local", RTTs: "1, 2, 3", AverageRTT: "2.00", Loss: "0%", Geo: "N/A", AS: "N/A", ReplyProtocol: "N/A"},
				{Index: 2, IP: "*", Hostname: "N/A", RTTs: "N/A", AverageRTT: "N/A", Loss: "100%", Geo: "N/A", AS: "N/A", ReplyProtocol: "N/A"},
			},
		},
		{
			name: "Unknown hostname is shown as is",
			path: hop.Path{{Index: 4, IP: hop.Some("2001:db8::1"), Hostname: hop.Some(hop.HostnameUnknown), RTTs: []float64{12.346}, Loss: 33.3, Geo: hop.Some("Berlin, DE"), AS: hop.Some("AS3320"), ReplyProtocol: hop.Some("ICMP")}},
			want: []TableRow{
				{Index: 4, IP: "2001:db8::1", Hostname: "Unknown", RTTs: "12.346", AverageRTT: "12.35", Loss: "33.3%", Geo: "Berlin, DE", AS: "AS3320", ReplyProtocol: "ICMP"},
			},
		},
		{
			name: "Empty path",
			path: hop.Path{},
			want: []TableRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTable(tt.path)
			if diff := cmp.Diff(tt.want, got.Rows, cmp.FilterPath(func(p cmp.Path) bool {
				return p.Last().String() == ".Latency"
			}, cmp.Ignore())); diff != "" {
				t.Errorf("RenderTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderTable_KeepsOrderAndCount(t *testing.T) {
	p := hop.Path{{Index: 7}, {Index: 2}, {Index: 5}}
	tbl := RenderTable(p)
	require.Len(t, tbl.Rows, 3)
	for i, r := range tbl.Rows {
		assert.Equal(t, p[i].Index, r.Index)
	}
}

func TestRenderGraph(t *testing.T) {
	g := RenderGraph(twoHops())

	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Connectors, 1)
	assert.Empty(t, g.Placeholder)

	assert.Equal(t, path.Source, g.Nodes[0].Role)
	assert.Equal(t, path.StyleSource, g.Nodes[0].Style)
	assert.Equal(t, "gw.local", g.Nodes[0].Hostname)
	assert.Equal(t, path.Destination, g.Nodes[1].Role)
	assert.Equal(t, path.StyleDestination, g.Nodes[1].Style)
	assert.Equal(t, "*", g.Nodes[1].IP)

	e := g.Connectors[0]
	assert.Equal(t, 1, e.From)
	assert.Equal(t, 2, e.To)
	assert.Equal(t, "N/A", e.Label)
	assert.False(t, e.Latency.Available())
}

func TestRenderGraph_Empty(t *testing.T) {
	g := RenderGraph(nil)
	assert.True(t, g.Empty())
	assert.Empty(t, g.Connectors)
	assert.Equal(t, NoDataMessage, g.Placeholder)
}

func TestRenderGraph_SingleHop(t *testing.T) {
	g := RenderGraph(hop.Path{{Index: 1, IP: hop.Some("8.8.8.8"), RTTs: []float64{4}}})
	require.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Connectors)
	assert.Equal(t, path.SourceAndDestination, g.Nodes[0].Role)
	assert.Equal(t, path.StyleSource, g.Nodes[0].Style)
}

func TestRenderGraph_Connectors(t *testing.T) {
	p := hop.Path{
		{Index: 1, RTTs: []float64{900}},
		{Index: 2, RTTs: []float64{12.345}},
		{Index: 3, RTTs: []float64{1, 2}},
		{Index: 4},
	}
	g := RenderGraph(p)
	require.Len(t, g.Connectors, len(p)-1)

	labels := make([]string, 0, len(g.Connectors))
	for _, c := range g.Connectors {
		labels = append(labels, c.Label)
	}
	// the label follows the target hop and is not rounded
	assert.Equal(t, []string{"12.345ms", "1.5ms", "N/A"}, labels)
}

func TestRenderGraph_HidesUnknownHostname(t *testing.T) {
	g := RenderGraph(hop.Path{
		{Index: 1, Hostname: hop.Some(hop.HostnameUnknown)},
		{Index: 2},
		{Index: 3, Hostname: hop.Some("dns.google")},
	})
	assert.Empty(t, g.Nodes[0].Hostname)
	assert.Empty(t, g.Nodes[1].Hostname)
	assert.Equal(t, "dns.google", g.Nodes[2].Hostname)
}

func TestLayout(t *testing.T) {
	c := DefaultTheme.Layout(RenderGraph(twoHops()))
	out := c.String()

	assert.Contains(t, out, GraphTitle)
	for _, label := range []string{"Source", "Intermediate", "Destination"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Hop 1")
	assert.Contains(t, out, "gw.local")
	assert.Contains(t, out, "Hop 2")
	assert.Contains(t, out, "N/A")
	require.Len(t, c.Zones, 2)

	for i, z := range c.Zones {
		assert.Equal(t, i, z.Position)
		assert.Less(t, z.Top, z.Bottom)
		assert.LessOrEqual(t, z.Bottom, c.Height())
		assert.Greater(t, z.Right, z.Left)
	}
	assert.Less(t, c.Zones[0].Bottom, c.Zones[1].Top, "connector between nodes")
}

func TestLayout_Empty(t *testing.T) {
	c := DefaultTheme.Layout(RenderGraph(hop.Path{}))
	assert.Empty(t, c.Zones)
	assert.Contains(t, c.String(), NoDataMessage)
}

func TestCanvas_HitTest(t *testing.T) {
	c := DefaultTheme.Layout(RenderGraph(twoHops()))
	require.Len(t, c.Zones, 2)

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOk bool
	}{
		{name: "Title", x: 1, y: 0, wantOk: false},
		{name: "First node corner", x: c.Zones[0].Left, y: c.Zones[0].Top, want: 0, wantOk: true},
		{name: "Second node inside", x: c.Zones[1].Right - 1, y: c.Zones[1].Bottom - 1, want: 1, wantOk: true},
		{name: "Right of node", x: c.Zones[0].Right, y: c.Zones[0].Top, wantOk: false},
		{name: "Connector", x: 0, y: c.Zones[0].Bottom, wantOk: false},
		{name: "Below canvas", x: 0, y: c.Height() + 3, wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.HitTest(tt.x, tt.y)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTheme_WriteTable(t *testing.T) {
	t.Run("Rows are written", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.WriteTable(&buf, RenderTable(twoHops())))
		out := buf.String()
		for _, col := range TableColumns {
			assert.Contains(t, out, col)
		}
		assert.Contains(t, out, "2.00")
		assert.Contains(t, out, "100%")
	})

	t.Run("Empty table writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.WriteTable(&buf, RenderTable(nil)))
		assert.Zero(t, buf.Len())
	})
}

func TestTheme_Encode(t *testing.T) {
	r := NewReport("8.8.8.8", twoHops(), ViewTable, ViewGraph)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.Encode(&buf, FormatJSON, r))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "8.8.8.8", got["destination"])

		hops := got["hops"].([]any)
		require.Len(t, hops, 2)
		first := hops[0].(map[string]any)
		assert.InDelta(t, 2.0, first["avgRtt"], 1e-9)
		assert.Equal(t, "source", first["role"])
		second := hops[1].(map[string]any)
		assert.Nil(t, second["avgRtt"])
		assert.Nil(t, second["ip"])
		assert.Equal(t, "destination", second["role"])

		graph := got["graph"].(map[string]any)
		assert.Len(t, graph["nodes"], 2)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.Encode(&buf, FormatYAML, r))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "8.8.8.8", got["destination"])
		assert.Len(t, got["hops"], 2)
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.Encode(&buf, FormatText, r))
		out := buf.String()
		assert.Contains(t, out, "Hop")
		assert.Contains(t, out, GraphTitle)
	})

	t.Run("Text of empty path shows the placeholder only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTheme.Encode(&buf, FormatText, NewReport("8.8.8.8", nil, ViewTable, ViewGraph)))
		out := buf.String()
		assert.Contains(t, out, NoDataMessage)
		assert.NotContains(t, out, TableColumns[3])
	})
}

func TestNewReport_Views(t *testing.T) {
	r := NewReport("example.com", twoHops())
	assert.Nil(t, r.Table)
	assert.Nil(t, r.Graph)

	r = NewReport("example.com", twoHops(), ViewGraph)
	assert.Nil(t, r.Table)
	require.NotNil(t, r.Graph)
	assert.Len(t, r.Graph.Nodes, 2)
}

func TestParseViewMode(t *testing.T) {
	for _, m := range ViewModes {
		got, err := ParseViewMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseViewMode("chart")
	assert.Error(t, err)

	assert.Equal(t, ViewGraph, ViewTable.Toggle())
	assert.Equal(t, ViewTable, ViewGraph.Toggle())
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
