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

package casedesk

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const DefaultAPIURL = "http://localhost:8000/api"

// APIURLFromEnv returns the backend base url. VITE_API_URL is shared with
// the web app so both talk to the same backend.
func APIURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("VITE_API_URL")); v != "" {
		return v
	}
	return DefaultAPIURL
}

type Option func(*baseURLTransport)

// WithToken sends the token as bearer authorization on every request.
func WithToken(token string) Option {
	return func(t *baseURLTransport) {
		t.token = token
	}
}

// WithRateLimit limits the requests per second sent to the backend.
func WithRateLimit(rps float64, burst int) Option {
	return func(t *baseURLTransport) {
		t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithBaseTransport(base http.RoundTripper) Option {
	return func(t *baseURLTransport) {
		t.base = base
	}
}

// NewHTTPClient creates an http.Client which resolves relative request
// paths against apiURL.
func NewHTTPClient(apiURL string, opts ...Option) (*http.Client, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API URL %q must be absolute", apiURL)
	}

	t := &baseURLTransport{
		base: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
		apiURL: u,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.base = otelhttp.NewTransport(t.base)

	return &http.Client{Transport: t}, nil
}

type baseURLTransport struct {
	base    http.RoundTripper
	apiURL  *url.URL
	token   string
	limiter *rate.Limiter
}

func (t *baseURLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	req = req.Clone(req.Context())
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	req.URL.Scheme = t.apiURL.Scheme
	req.URL.Host = t.apiURL.Host
	if p := strings.TrimSuffix(t.apiURL.Path, "/"); p != "" {
		req.URL.Path = p + req.URL.Path
	}
	req.Host = t.apiURL.Host

	return t.base.RoundTrip(req)
}
