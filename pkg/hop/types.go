// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hop

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// HostnameUnknown is the hostname the trace provider reports when a
// reverse lookup for the hop address failed.
const HostnameUnknown = "Unknown"

// Path is the ordered sequence of hops returned for one trace.
// The order is the one the provider sent; it is never re-sorted.
type Path []Record

// Record is one measured point along the path.
type Record struct {
	// Index is the 1-based ordinal position of the hop in the path.
	Index int `json:"index" yaml:"index"`
	// IP is the address that answered the probes. It is absent if no probe was answered.
	IP Text `json:"ip" yaml:"ip"`
	// Hostname is the reverse lookup result for IP.
	Hostname Text `json:"hostname" yaml:"hostname"`
	// RTTs holds the round-trip time samples in milliseconds. Empty if the hop did not respond.
	RTTs []float64 `json:"rtt" yaml:"rtt"`
	// Loss is the share of probes without reply in percent (0-100).
	Loss float64 `json:"loss" yaml:"loss"`
	// Geo is a free-text location annotation.
	Geo Text `json:"geo" yaml:"geo"`
	// AS is a free-text autonomous-system annotation.
	AS Text `json:"as" yaml:"as"`
	// ReplyProtocol is the probe type that got the first reply (e.g. "TCP:443" or "ICMP").
	ReplyProtocol Text `json:"replyProto" yaml:"replyProto"`
}

// Responded reports whether at least one RTT sample was collected for the hop.
func (r Record) Responded() bool {
	return len(r.RTTs) > 0
}

// DisplayHostname returns the hostname suitable for compact displays.
// The "Unknown" sentinel is treated the same as a missing hostname.
func (r Record) DisplayHostname() (string, bool) {
	name, ok := r.Hostname.Get()
	if !ok || name == HostnameUnknown {
		return "", false
	}
	return name, true
}

func (r Record) String() string {
	return fmt.Sprintf("%-2d  %-39.39s  %d samples  %v%% loss",
		r.Index, r.IP.OrElse("*"), len(r.RTTs), r.Loss)
}

// Equal reports whether two records carry the same data.
func (r Record) Equal(o Record) bool {
	return r.Index == o.Index &&
		r.IP == o.IP &&
		r.Hostname == o.Hostname &&
		slices.Equal(r.RTTs, o.RTTs) &&
		r.Loss == o.Loss &&
		r.Geo == o.Geo &&
		r.AS == o.AS &&
		r.ReplyProtocol == o.ReplyProtocol
}

// Text is an optional string value.
// The zero value is absent, which is distinct from a present empty value.
type Text struct {
	value string
	set   bool
}

// Some returns a present [Text] holding s.
func Some(s string) Text {
	return Text{value: s, set: true}
}

// None returns an absent [Text].
func None() Text {
	return Text{}
}

// Get returns the value and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.set
}

// IsSet reports whether the value is present.
func (t Text) IsSet() bool {
	return t.set
}

// OrElse returns the value if present and fallback otherwise.
func (t Text) OrElse(fallback string) string {
	if !t.set {
		return fallback
	}
	return t.value
}

// Equal reports whether both values are absent or hold the same string.
func (t Text) Equal(o Text) bool {
	return t == o
}

func (t Text) String() string {
	return t.OrElse("<none>")
}

// MarshalJSON encodes an absent value as null.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON decodes null as absent.
func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = Some(s)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (t Text) MarshalYAML() (any, error) {
	if !t.set {
		return nil, nil
	}
	return t.value, nil
}

// UnmarshalYAML decodes null as absent.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*t = None()
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*t = Some(s)
	return nil
}
