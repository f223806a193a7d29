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
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/casedesk/monitoring"
)

// CacheTransport caches successful GET responses whose path ends with one
// of the configured suffixes.
type CacheTransport struct {
	cache    *expirable.LRU[string, []byte]
	suffixes []string
}

func NewCacheTransport(cacheSize int, expiration time.Duration, pathSuffixes ...string) *CacheTransport {
	return &CacheTransport{
		cache:    expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
		suffixes: pathSuffixes,
	}
}

func (c *CacheTransport) cacheable(req *http.Request) bool {
	if req.Method != http.MethodGet {
		return false
	}
	for _, s := range c.suffixes {
		if strings.HasSuffix(req.URL.Path, s) {
			return true
		}
	}
	return false
}

func (c *CacheTransport) Purge() {
	c.cache.Purge()
}

func (c *CacheTransport) Handler() Handler {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if !c.cacheable(req) {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)
		if val, ok := c.cache.Get(key); ok {
			monitoring.UpstreamCacheHits.Inc()
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Error("failed to dump response", "err", err)
			return resp, nil
		}
		c.cache.Add(key, v)
		return responseFromBytes(v, req)
	}
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	key := req.URL.String()

	auth := req.Header.Get("Authorization")
	if auth == "" {
		return key
	}
	h := sha256.New()
	h.Write([]byte(key))
	h.Write([]byte(auth))
	return fmt.Sprintf("%x", h.Sum(nil))
}
