// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AdvisoryLookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vulntracker_advisory_lookup_duration_seconds",
	Help:    "Duration of advisory lookups against the advisory service, including retries",
	Buckets: prometheus.DefBuckets,
})

var AdvisoryLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vulntracker_advisory_lookup_failures_total",
	Help: "Advisory lookups which failed after all retries",
})

var ApplicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vulntracker_applications_created_total",
	Help: "Applications committed to storage",
})
