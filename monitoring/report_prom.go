// Copyright (C) 2026 l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReportGeneratedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_report_generated_amount",
	Help: "The total number of generated reports",
})

var ReportGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "casedesk_report_generation_duration_seconds",
	Help:    "Duration of report generation including data loading",
	Buckets: prometheus.DefBuckets,
})

var ReportRiskScore = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "casedesk_report_risk_score",
	Help: "Risk score of the last generated report, by scope",
}, []string{"scope"})

var ReportSnapshotSavedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_report_snapshot_saved_amount",
	Help: "The total number of persisted report snapshots",
})
