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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPIClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient, err := NewHTTPClient(server.URL+"/api", opts...)
	require.NoError(t, err)
	return NewAPIClient(httpClient)
}

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		wantErr bool
	}{
		{"valid URL", "https://api.example.com", false},
		{"valid URL with path", "https://api.example.com/api", false},
		{"relative URL", "/api", true},
		{"invalid URL", "://invalid", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewHTTPClient(tt.apiURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestAPIURLFromEnv(t *testing.T) {
	t.Run("should fall back to the default", func(t *testing.T) {
		t.Setenv("VITE_API_URL", "")
		assert.Equal(t, DefaultAPIURL, APIURLFromEnv())
	})
	t.Run("should prefer the environment", func(t *testing.T) {
		t.Setenv("VITE_API_URL", "https://cases.example.com/api")
		assert.Equal(t, "https://cases.example.com/api", APIURLFromEnv())
	})
}

func TestResourceList(t *testing.T) {
	client := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clients", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"name":"Acme","short_code":"ACM","contacts":[]}]`)) // nolint:errcheck
	}, WithToken("secret"))

	clients, err := client.Clients.List(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "ACM", clients[0].ShortCode)
}

func TestResourceCreate(t *testing.T) {
	client := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var ticket dtos.TicketRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ticket))
		ticket.ID = 12
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ticket) // nolint:errcheck
	})

	created, err := client.Tickets.Create(context.Background(), dtos.TicketRecord{Title: "Patch", VulnerabilityIDs: []int{1}})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 12, created.ID)
	assert.Equal(t, []int{1}, created.VulnerabilityIDs)
}

func TestEmptyResponses(t *testing.T) {
	client := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body) // nolint:errcheck
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("should return nil for an empty body", func(t *testing.T) {
		asset, err := client.Assets.Update(context.Background(), 3, dtos.AssetRecord{Name: "web-01"})
		assert.NoError(t, err)
		assert.Nil(t, asset)
	})

	t.Run("should delete without decoding", func(t *testing.T) {
		assert.NoError(t, client.Vulnerabilities.Delete(context.Background(), 3))
	})

	t.Run("should return an empty list", func(t *testing.T) {
		items, err := client.ListReference(context.Background(), ReferenceScanners)
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestAPIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "detail string",
			status:  http.StatusNotFound,
			body:    `{"detail":"Client not found"}`,
			message: "HTTP 404: Client not found",
		},
		{
			name:    "validation errors",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"loc":["body","title"],"msg":"field required"},{"loc":["body","contacts",0,"email"],"msg":"value is not a valid email address"}]}`,
			message: "Validation failed: title: field required; contacts.0.email: value is not a valid email address",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			message: "HTTP 502: upstream down",
		},
		{
			name:    "empty body",
			status:  http.StatusInternalServerError,
			body:    "",
			message: "HTTP 500: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) // nolint:errcheck
			})

			_, err := client.Clients.Get(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}

	t.Run("IsNotFound", func(t *testing.T) {
		assert.True(t, IsNotFound(&APIError{Status: 404}))
		assert.False(t, IsNotFound(&APIError{Status: 500}))
	})
}

func TestNestedResources(t *testing.T) {
	client := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tickets/4/messages":
			if r.Method == http.MethodPost {
				w.Write([]byte(`{"id":1,"ticket_id":4,"content":"done"}`)) // nolint:errcheck
				return
			}
			w.Write([]byte(`[{"id":1,"ticket_id":4,"content":"done"}]`)) // nolint:errcheck
		case "/api/gantt/projects/2/tasks":
			w.Write([]byte(`[{"id":5,"project_id":2,"name":"Kickoff","start_date":"2024-01-01","end_date":"2024-01-02"}]`)) // nolint:errcheck
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	msgs, err := client.ListTicketMessages(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	msg, err := client.CreateTicketMessage(context.Background(), 4, dtos.TicketMessageRecord{Content: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", msg.Content)

	tasks, err := client.ListGanttTasks(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Kickoff", tasks[0].Name)
}
