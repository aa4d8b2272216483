// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package stats

import (
	"encoding/json"
	"strconv"
)

// NotAvailableText is shown wherever a value has no data behind it.
const NotAvailableText = "N/A"

// NotAvailable is the latency of a hop without any RTT sample.
var NotAvailable = Latency{}

// Latency is a round-trip time in milliseconds or [NotAvailable].
// A measured zero is a valid latency and stays distinguishable from NotAvailable.
type Latency struct {
	ms        float64
	available bool
}

// Millis returns an available latency of ms milliseconds.
func Millis(ms float64) Latency {
	return Latency{ms: ms, available: true}
}

// Value returns the latency in milliseconds and whether it is available.
func (l Latency) Value() (float64, bool) {
	return l.ms, l.available
}

// Available reports whether the latency carries a measurement.
func (l Latency) Available() bool {
	return l.available
}

// Equal reports whether both latencies are NotAvailable or hold the same value.
func (l Latency) Equal(o Latency) bool {
	return l == o
}

// Fixed formats the latency with two decimals, e.g. "2.00", or "N/A".
func (l Latency) Fixed() string {
	if !l.available {
		return NotAvailableText
	}
	return strconv.FormatFloat(l.ms, 'f', 2, 64)
}

// Exact formats the latency without rounding, e.g. "1.3333333333333333", or "N/A".
func (l Latency) Exact() string {
	if !l.available {
		return NotAvailableText
	}
	return FormatNumber(l.ms)
}

func (l Latency) String() string {
	if !l.available {
		return NotAvailableText
	}
	return l.Exact() + "ms"
}

// MarshalJSON encodes NotAvailable as null.
func (l Latency) MarshalJSON() ([]byte, error) {
	if !l.available {
		return []byte("null"), nil
	}
	return json.Marshal(l.ms)
}

// UnmarshalJSON decodes null as NotAvailable.
func (l *Latency) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = NotAvailable
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	*l = Millis(ms)
	return nil
}

// MarshalYAML encodes NotAvailable as null.
func (l Latency) MarshalYAML() (any, error) {
	if !l.available {
		return nil, nil
	}
	return l.ms, nil
}

// FormatNumber formats a float in its shortest exact decimal form, e.g. "2", "0.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
