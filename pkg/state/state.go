// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package state holds the application state of a trace session as an
// immutable [Snapshot] advanced by discrete [Event]s.
package state

import (
	"errors"
	"slices"
	"strings"

	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/pkg/interact"
	"github.com/telekom/netpath/pkg/render"
)

// DefaultDestination is traced when no destination is given.
const DefaultDestination = "8.8.8.8"

// FailureMessage is the notification shown when a trace fails.
const FailureMessage = "Error running traceroute. Please try again."

// Failure is the visible notification of a failed trace.
type Failure struct {
	Message string
	// Detail is empty for malformed provider data.
	Detail string
}

func (f Failure) String() string {
	if f.Detail == "" {
		return f.Message
	}
	return f.Message + " (" + f.Detail + ")"
}

// Snapshot is one consistent state of the application.
type Snapshot struct {
	Mode    render.ViewMode
	Loading bool
	// DefaultDestination is traced by a request without destination.
	// [DefaultDestination] is used when it is blank.
	DefaultDestination string
	Destination        string
	Path               hop.Path
	Hover              interact.HoverState
	// Failure is set after a failed trace until the next request starts.
	Failure *Failure
}

// New returns the initial snapshot showing mode.
func New(mode render.ViewMode) Snapshot {
	return Snapshot{Mode: mode}
}

// WithDefaultDestination returns s tracing destination for requests without destination.
func (s Snapshot) WithDefaultDestination(destination string) Snapshot {
	s.DefaultDestination = strings.TrimSpace(destination)
	return s
}

// CanTrigger reports whether a trace may be started.
// At most one trace is in flight at a time.
func (s Snapshot) CanTrigger() bool {
	return !s.Loading
}

// Tooltip returns the tooltip of the hovered hop.
func (s Snapshot) Tooltip() (interact.Tooltip, bool) {
	pos, ok := s.Hover.Active()
	if !ok || s.Mode != render.ViewGraph || pos < 0 || pos >= len(s.Path) {
		return interact.Tooltip{}, false
	}
	pointer, _ := s.Hover.Pointer()
	return interact.NewTooltip(s.Path[pos], pointer), true
}

// Event advances a snapshot.
type Event interface {
	apply(Snapshot) Snapshot
}

// Apply returns the snapshot following s after e. s is not modified.
func Apply(s Snapshot, e Event) Snapshot {
	if e == nil {
		return s
	}
	return e.apply(s)
}

// ResolveDestination trims input and falls back to fallback, or to
// [DefaultDestination], when it is blank.
func ResolveDestination(input, fallback string) string {
	if d := strings.TrimSpace(input); d != "" {
		return d
	}
	if d := strings.TrimSpace(fallback); d != "" {
		return d
	}
	return DefaultDestination
}

// RequestStarted starts a trace towards Destination, or towards the default
// destination of the snapshot when it is blank. It is ignored while
// another trace is in flight.
type RequestStarted struct {
	Destination string
}

func (e RequestStarted) apply(s Snapshot) Snapshot {
	if !s.CanTrigger() {
		return s
	}
	s.Loading = true
	s.Destination = ResolveDestination(e.Destination, s.DefaultDestination)
	s.Path = nil
	s.Hover = s.Hover.Leave()
	s.Failure = nil
	return s
}

// ResponseReceived delivers the path of the trace in flight.
// A response without a trace in flight belongs to a superseded request
// and is dropped.
type ResponseReceived struct {
	Path hop.Path
}

func (e ResponseReceived) apply(s Snapshot) Snapshot {
	if !s.Loading {
		return s
	}
	s.Loading = false
	s.Path = slices.Clone(e.Path)
	s.Hover = s.Hover.Leave()
	return s
}

// ResponseFailed ends the trace in flight with Err. The path stays empty.
type ResponseFailed struct {
	Err error
}

func (e ResponseFailed) apply(s Snapshot) Snapshot {
	if !s.Loading {
		return s
	}
	f := Failure{Message: FailureMessage}
	var malformed *hop.MalformedHopError
	if e.Err != nil && !errors.As(e.Err, &malformed) {
		f.Detail = e.Err.Error()
	}
	s.Loading = false
	s.Path = nil
	s.Hover = s.Hover.Leave()
	s.Failure = &f
	return s
}

// ViewModeChanged switches the view. Leaving the graph clears the hover.
type ViewModeChanged struct {
	Mode render.ViewMode
}

func (e ViewModeChanged) apply(s Snapshot) Snapshot {
	s.Mode = e.Mode
	if e.Mode != render.ViewGraph {
		s.Hover = s.Hover.Leave()
	}
	return s
}

// HoverChanged reports the pointer at Pointer, over the node at path
// position Position when Over is set, or over no node otherwise.
// Hover is tracked only while the graph shows a path.
type HoverChanged struct {
	Position int
	Over     bool
	Pointer  interact.Position
}

func (e HoverChanged) apply(s Snapshot) Snapshot {
	if s.Mode != render.ViewGraph || len(s.Path) == 0 {
		return s
	}
	over := e.Over && e.Position >= 0 && e.Position < len(s.Path)
	s.Hover = s.Hover.Track(e.Position, over, e.Pointer)
	return s
}
