// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package interact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/telekom/netpath/pkg/hop"
)

func TestNewTooltip(t *testing.T) {
	tests := []struct {
		name    string
		hop     hop.Record
		pointer Position
		want    Tooltip
	}{
		{
			name: "Responding hop",
			hop: hop.Record{
				Index:         3,
				IP:            hop.Some("193.159.0.1"),
				Hostname:      hop.Some("f-ed1-i.F.DE.NET.DTAG.DE"),
				RTTs:          []float64{10, 20},
				Loss:          0,
				Geo:           hop.Some("Frankfurt, DE"),
				AS:            hop.Some("AS3320 Deutsche Telekom AG"),
				ReplyProtocol: hop.Some("ICMP"),
			},
			pointer: Position{X: 40, Y: 12},
			want: Tooltip{
				Title: "Hop 3",
				Rows: []Row{
					{Label: LabelIP, Value: "193.159.0.1"},
					{Label: LabelHostname, Value: "f-ed1-i.F.DE.NET.DTAG.DE"},
					{Label: LabelLocation, Value: "Frankfurt, DE"},
					{Label: LabelAS, Value: "AS3320 Deutsche Telekom AG"},
					{Label: LabelAverageRTT, Value: "15.00ms"},
					{Label: LabelLoss, Value: "0%"},
					{Label: LabelRTTs, Value: "10ms, 20ms"},
					{Label: LabelReplyProtocol, Value: "ICMP"},
				},
				Position: Position{X: 42, Y: 11},
			},
		},
		{
			name:    "Silent hop",
			hop:     hop.Record{Index: 2, RTTs: []float64{}, Loss: 100},
			pointer: Position{X: 0, Y: 0},
			want: Tooltip{
				Title: "Hop 2",
				Rows: []Row{
					{Label: LabelIP, Value: "N/A"},
					{Label: LabelHostname, Value: "N/A"},
					{Label: LabelLocation, Value: "N/A"},
					{Label: LabelAS, Value: "N/A"},
					{Label: LabelAverageRTT, Value: "N/A"},
					{Label: LabelLoss, Value: "100%"},
					{Label: LabelRTTs, Value: "N/A"},
					{Label: LabelReplyProtocol, Value: "N/A"},
				},
				Position: Position{X: 2, Y: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTooltip(tt.hop, tt.pointer)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewTooltip() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewTooltip_UnknownHostname(t *testing.T) {
	tip := NewTooltip(hop.Record{Index: 1, Hostname: hop.Some(hop.HostnameUnknown)}, Position{})
	v, ok := tip.Value(LabelHostname)
	assert.True(t, ok)
	assert.Equal(t, "Unknown", v)

	_, ok = tip.Value("Nope")
	assert.False(t, ok)
}

func TestHoverState(t *testing.T) {
	var h HoverState
	_, ok := h.Active()
	assert.False(t, ok, "zero value is inactive")

	h = h.Move(Position{X: 5, Y: 5})
	_, ok = h.Pointer()
	assert.False(t, ok, "move without enter")

	h = h.Enter(1, Position{X: 3, Y: 4})
	pos, ok := h.Active()
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	h = h.Move(Position{X: 6, Y: 4})
	p, _ := h.Pointer()
	assert.Equal(t, Position{X: 6, Y: 4}, p)
	pos, _ = h.Active()
	assert.Equal(t, 1, pos, "move keeps the node")

	h = h.Leave()
	_, ok = h.Active()
	assert.False(t, ok)
}

func TestHoverState_Track(t *testing.T) {
	var h HoverState

	h = h.Track(0, true, Position{X: 1, Y: 1})
	pos, ok := h.Active()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	h = h.Track(0, true, Position{X: 2, Y: 1})
	p, _ := h.Pointer()
	assert.Equal(t, Position{X: 2, Y: 1}, p)

	h = h.Track(3, true, Position{X: 2, Y: 9})
	pos, _ = h.Active()
	assert.Equal(t, 3, pos, "different node replaces the hover")

	h = h.Track(0, false, Position{X: 50, Y: 50})
	_, ok = h.Active()
	assert.False(t, ok)
}
