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

package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceListsAreCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Server"}]`)) // nolint:errcheck
	}))
	defer srv.Close()
	t.Setenv("VITE_API_URL", srv.URL)

	client, err := NewAPIClient(NewReferenceCache())
	require.NoError(t, err)

	for range 3 {
		items, err := client.ListReference(context.Background(), "asset-types")
		require.NoError(t, err)
		assert.Equal(t, "Server", items[0].Name)
	}
	assert.EqualValues(t, 1, calls.Load())

	// entity collections always hit the backend
	for range 2 {
		_, err := client.Clients.List(context.Background())
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, calls.Load())
}

func TestInvalidRateLimit(t *testing.T) {
	t.Setenv("CASEDESK_API_RPS", "fast")
	_, err := NewAPIClient(NewReferenceCache())
	assert.Error(t, err)
}
