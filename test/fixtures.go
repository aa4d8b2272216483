// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

// ProviderURL is the base URL of the mocked trace provider.
const ProviderURL = "http://provider.netpath.test"

// TwoHopPayload is a provider response with a responding and a silent hop,
// in the wire shape of the trace provider.
const TwoHopPayload = `[
  {"hop": 1, "ip": "10.0.0.1", "hostname": "gw.local", "rtt": [1, 2, 3], "loss": 0, "geo": "Berlin, DE", "as": "AS3320 Deutsche Telekom AG", "reply_proto": "TCP:443"},
  {"hop": 2, "ip": "*", "hostname": "N/A", "rtt": [], "loss": 100, "geo": "N/A", "as": "N/A", "reply_proto": "None"}
]`

// ErrorPayload is a provider response reporting a failed trace.
const ErrorPayload = `{"error": "timeout"}`

// MalformedPayload holds a hop with a negative RTT sample.
const MalformedPayload = `[
  {"hop": 1, "ip": "10.0.0.1", "rtt": [1.5], "loss": 0},
  {"hop": 2, "ip": "10.0.0.2", "rtt": [2, -1], "loss": 0}
]`
