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

var UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "casedesk_upstream_request_duration_seconds",
	Help:    "Duration of requests to the case backend",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})

var UpstreamCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "casedesk_upstream_cache_hits",
	Help: "The total number of backend responses served from the reference cache",
})

var StoreLoads = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "casedesk_store_loads",
	Help: "Collection loads from the case backend, by collection and result",
}, []string{"collection", "result"})

var StoreHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "casedesk_store_hits",
	Help: "Collection reads served from the store, by collection",
}, []string{"collection"})

var StoreInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "casedesk_store_invalidations",
	Help: "Collection invalidations, by collection",
}, []string{"collection"})
