// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package stats derives per-hop and per-edge metrics from a [hop.Path].
// All functions are pure and recomputed on every call; nothing is cached.
package stats

import (
	"strings"

	"github.com/telekom/netpath/pkg/hop"
)

// Latency grade thresholds in milliseconds.
const (
	ThresholdGood   = 50.0
	ThresholdMedium = 150.0
)

// Grade classifies a latency for styling.
type Grade int

const (
	GradeNone Grade = iota
	GradeGood
	GradeMedium
	GradeHigh
)

func (g Grade) String() string {
	switch g {
	case GradeGood:
		return "good"
	case GradeMedium:
		return "medium"
	case GradeHigh:
		return "high"
	default:
		return "none"
	}
}

// AverageRTT returns the arithmetic mean of the RTT samples of r.
// A hop without samples yields [NotAvailable].
func AverageRTT(r hop.Record) Latency {
	if len(r.RTTs) == 0 {
		return NotAvailable
	}
	var sum float64
	for _, s := range r.RTTs {
		sum += s
	}
	return Millis(sum / float64(len(r.RTTs)))
}

// EdgeLabel returns the latency attributed to the edge from one hop to the next.
// The round-trip delay is credited to reaching the downstream hop, so the label
// is the average RTT of to; from does not take part.
func EdgeLabel(_, to hop.Record) Latency {
	return AverageRTT(to)
}

// GradeOf grades a latency against [ThresholdGood] and [ThresholdMedium].
func GradeOf(l Latency) Grade {
	ms, ok := l.Value()
	switch {
	case !ok:
		return GradeNone
	case ms < ThresholdGood:
		return GradeGood
	case ms < ThresholdMedium:
		return GradeMedium
	default:
		return GradeHigh
	}
}

// FormatLoss formats a loss percentage, e.g. "0%" or "33.3%".
func FormatLoss(loss float64) string {
	return FormatNumber(loss) + "%"
}

// JoinSamples joins RTT samples for display with each value followed by suffix,
// e.g. "1, 2.5" or "1ms, 2.5ms". It returns "N/A" if there are no samples.
func JoinSamples(samples []float64, suffix string) string {
	if len(samples) == 0 {
		return NotAvailableText
	}
	parts := make([]string, len(samples))
	for i, s := range samples {
		parts[i] = FormatNumber(s) + suffix
	}
	return strings.Join(parts, ", ")
}
