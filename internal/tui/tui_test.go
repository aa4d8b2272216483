// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/interact"
	"github.com/telekom/netpath/pkg/provider"
	"github.com/telekom/netpath/pkg/render"
	"github.com/telekom/netpath/pkg/state"
	"github.com/telekom/netpath/test"
)

func threeHopPath() hop.Path {
	return hop.Path{
		{Index: 1, IP: hop.Some("10.0.0.1"), Hostname: hop.Some("gw.local"), RTTs: []float64{1, 2, 3}},
		{Index: 2, IP: hop.Some("192.0.2.7"), Hostname: hop.Some("core.example"), RTTs: []float64{10}},
		{Index: 3, IP: hop.Some("8.8.8.8"), Hostname: hop.Some("dns.google"), RTTs: []float64{12.5}, Geo: hop.Some("US")},
	}
}

func newModel(t *testing.T, mode render.ViewMode, trace func(context.Context, string) (hop.Path, error)) (Model, *provider.ClientMock) {
	t.Helper()
	client := &provider.ClientMock{TraceFunc: trace}
	return New(t.Context(), client, Config{Destination: "example.com", Mode: mode, Theme: render.DefaultTheme}), client
}

// send delivers msg and feeds the messages of the returned commands back
// into the model until only spinner ticks are left.
func send(t *testing.T, m Model, msg tea.Msg) (Model, []tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)

	var msgs []tea.Msg
	for _, out := range collect(cmd) {
		msgs = append(msgs, out)
		if done, ok := out.(traceDoneMsg); ok {
			next, _ = m.Update(done)
			m = next.(Model)
		}
	}
	return m, msgs
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func TestModel_Trace(t *testing.T) {
	test.MarkAsShort(t)

	m, client := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})
	assert.Contains(t, m.View(), "Enter a destination")

	m = typeText(t, m, "dns.google")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	calls := client.TraceCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "dns.google", calls[0].Destination)

	s := m.Snapshot()
	assert.False(t, s.Loading)
	assert.Equal(t, "dns.google", s.Destination)
	assert.Len(t, s.Path, 3)

	view := m.View()
	for _, want := range []string{"Avg RTT (ms)", "10.0.0.1", "gw.local", "12.50", "3 hops to dns.google"} {
		assert.Contains(t, view, want)
	}
}

func TestModel_Trace_BlankInputUsesDefault(t *testing.T) {
	test.MarkAsShort(t)

	m, client := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return hop.Path{}, nil
	})
	m = typeText(t, m, "   ")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, client.TraceCalls(), 1)
	assert.Equal(t, "example.com", client.TraceCalls()[0].Destination)
	assert.NotNil(t, m.Snapshot().Path)
	assert.Empty(t, m.Snapshot().Path)
}

func TestModel_Trace_DisabledWhileLoading(t *testing.T) {
	test.MarkAsShort(t)

	m, client := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Snapshot().Loading)
	assert.Contains(t, m.View(), "Tracing example.com")

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd, "a second trace must not start while loading")

	m = typeText(t, m, "other")
	assert.Empty(t, m.input.Value(), "input must not change while loading")
	assert.Empty(t, client.TraceCalls())
}

func TestModel_Trace_Failure(t *testing.T) {
	test.MarkAsShort(t)

	tests := []struct {
		name       string
		err        error
		wantDetail string
	}{
		{
			name:       "Provider error",
			err:        &provider.TransportFailure{Destination: "example.com", Message: "timeout"},
			wantDetail: "timeout",
		},
		{
			name: "Malformed hops",
			err:  &hop.MalformedHopError{Position: 1, Field: "rtt", Reason: "must not be negative"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, render.ViewGraph, func(context.Context, string) (hop.Path, error) {
				return nil, tt.err
			})
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			s := m.Snapshot()
			require.NotNil(t, s.Failure)
			assert.False(t, s.Loading)
			assert.Nil(t, s.Path)

			view := m.View()
			assert.Contains(t, view, state.FailureMessage)
			if tt.wantDetail != "" {
				assert.Contains(t, view, tt.wantDetail)
			} else {
				assert.NotContains(t, view, "negative")
			}
			assert.Contains(t, view, render.NoDataMessage)
		})
	}
}

func TestModel_ToggleView(t *testing.T) {
	test.MarkAsShort(t)

	m, _ := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, m.View(), render.GraphTitle)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, render.ViewGraph, m.Snapshot().Mode)
	view := m.View()
	assert.Contains(t, view, render.GraphTitle)
	assert.Contains(t, view, "dns.google")
	assert.NotContains(t, view, "Avg RTT (ms)")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, render.ViewTable, m.Snapshot().Mode)
}

func TestModel_Hover(t *testing.T) {
	test.MarkAsShort(t)

	m, _ := newModel(t, render.ViewGraph, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.canvas.Zones, 3)
	assert.NotContains(t, m.View(), interact.LabelRTTs)

	zone := m.canvas.Zones[2]
	x, y := zone.Left+1, m.bodyTop()+zone.Top+1
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})

	pos, ok := m.Snapshot().Hover.Active()
	require.True(t, ok)
	assert.Equal(t, 2, pos)
	tt, ok := m.Snapshot().Tooltip()
	require.True(t, ok)
	assert.Equal(t, interact.Position{X: x, Y: y}.Add(interact.TooltipOffset), tt.Position)

	view := m.View()
	assert.Contains(t, view, interact.LabelRTTs)
	assert.Contains(t, view, "Hop 3")
	assert.Contains(t, view, "12.50ms")

	// the title row is no node
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionMotion})
	_, ok = m.Snapshot().Hover.Active()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), interact.LabelRTTs)
}

func TestModel_Hover_IgnoredInTable(t *testing.T) {
	test.MarkAsShort(t)

	m, _ := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: m.bodyTop() + 1, Action: tea.MouseActionMotion})

	_, ok := m.Snapshot().Hover.Active()
	assert.False(t, ok)
}

func TestModel_Quit(t *testing.T) {
	test.MarkAsShort(t)

	m, _ := newModel(t, render.ViewTable, func(context.Context, string) (hop.Path, error) {
		return nil, errors.New("unused")
	})
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, msgs := send(t, m, tea.KeyMsg{Type: k})
		require.Len(t, msgs, 1)
		assert.IsType(t, tea.QuitMsg{}, msgs[0])
	}
}

func TestModel_ScrollGraph(t *testing.T) {
	test.MarkAsShort(t)

	m, _ := newModel(t, render.ViewGraph, func(context.Context, string) (hop.Path, error) {
		return threeHopPath(), nil
	})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Greater(t, m.canvas.Height(), m.bodyHeight())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.offset)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.offset)

	for range m.canvas.Height() {
		m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	assert.Equal(t, m.canvas.Height()-m.bodyHeight(), m.offset)
	assert.LessOrEqual(t, strings.Count(m.body(), "\n")+1, m.bodyHeight())
}

func TestOverlay(t *testing.T) {
	test.MarkAsShort(t)

	tests := []struct {
		name string
		bg   string
		fg   string
		x, y int
		want string
	}{
		{name: "Inside", bg: "abcdef\nghijkl", fg: "XY", x: 2, y: 1, want: "abcdef\nghXYkl"},
		{name: "Past the line end", bg: "ab", fg: "XY", x: 4, y: 0, want: "ab  XY"},
		{name: "Below the last line", bg: "ab", fg: "X\nY", x: 1, y: 1, want: "ab\n X\n Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlay(tt.bg, tt.fg, tt.x, tt.y))
		})
	}
}
