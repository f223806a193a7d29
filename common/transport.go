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

package common

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/casedesk/monitoring"
)

// Handler wraps a single round trip. Call next to continue the chain.
type Handler func(req *http.Request, next http.RoundTripper) (*http.Response, error)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain builds a transport which runs the handlers in order before base.
func Chain(base http.RoundTripper, handlers ...Handler) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	next := base
	for i := len(handlers) - 1; i >= 0; i-- {
		h := handlers[i]
		inner := next
		next = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return h(req, inner)
		})
	}
	return next
}

func WrapHTTPClient(client *http.Client, handlers ...Handler) {
	if client == nil {
		return
	}
	client.Transport = Chain(client.Transport, handlers...)
}

// MetricsHandler records the duration of every backend request.
func MetricsHandler() Handler {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)

		status := "error"
		if resp != nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		monitoring.UpstreamRequestDuration.
			WithLabelValues(req.Method, PathTemplate(req.URL.Path), status).
			Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// PathTemplate replaces numeric path segments with ":id" to keep the
// metric label cardinality bounded.
func PathTemplate(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if _, err := strconv.Atoi(s); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
