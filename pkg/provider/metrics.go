// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a provider request.
const (
	outcomeSuccess          = "success"
	outcomeTransportFailure = "transport_failure"
	outcomeMalformed        = "malformed"
)

// metrics defines the metric collectors of the provider client
type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	hops     prometheus.Gauge
}

// newMetrics initializes metric collectors of the provider client
func newMetrics() metrics {
	return metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netpath_provider_requests_total",
				Help: "Total number of trace requests sent to the trace provider by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "netpath_provider_request_duration_seconds",
				Help:    "Histogram of trace provider response times in seconds.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60, 90},
			},
		),
		hops: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "netpath_path_hops",
				Help: "Number of hops of the last successfully ingested path.",
			},
		),
	}
}

// GetCollectors returns all metric collectors
func (m *metrics) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.requests,
		m.duration,
		m.hops,
	}
}

// observe records one finished request
func (m *metrics) observe(outcome string, took time.Duration, hops int) {
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(took.Seconds())
	if outcome == outcomeSuccess {
		m.hops.Set(float64(hops))
	}
}
