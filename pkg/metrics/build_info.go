// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	buildInfoMetricName = "netpath_build_info"
	buildInfoHelp       = "Build metadata of this netpath binary. Always 1."
)

// newBuildInfo returns the info-style gauge labeled with version.
// An empty version is reported as "dev".
func newBuildInfo(version string) prometheus.Collector {
	if version == "" {
		version = "dev"
	}
	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: buildInfoMetricName,
			Help: buildInfoHelp,
		},
		[]string{"version"},
	)
	info.WithLabelValues(version).Set(1)
	return info
}
