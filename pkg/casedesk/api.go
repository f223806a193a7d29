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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/l3montree-dev/casedesk/dtos"
)

// APIClient talks to the case management backend. Every resource exposes one
// method per verb. Bodies are the backend (snake_case) records.
type APIClient struct {
	httpClient *http.Client

	Clients         Resource[dtos.ClientRecord]
	Projects        Resource[dtos.ProjectRecord]
	Assets          Resource[dtos.AssetRecord]
	Vulnerabilities Resource[dtos.VulnerabilityRecord]
	Tickets         Resource[dtos.TicketRecord]
	Workers         Resource[dtos.WorkerRecord]
}

func NewAPIClient(httpClient *http.Client) *APIClient {
	c := &APIClient{httpClient: httpClient}
	c.Clients = Resource[dtos.ClientRecord]{client: c, path: "/clients"}
	c.Projects = Resource[dtos.ProjectRecord]{client: c, path: "/projects"}
	c.Assets = Resource[dtos.AssetRecord]{client: c, path: "/assets"}
	c.Vulnerabilities = Resource[dtos.VulnerabilityRecord]{client: c, path: "/vulnerabilities"}
	c.Tickets = Resource[dtos.TicketRecord]{client: c, path: "/tickets"}
	c.Workers = Resource[dtos.WorkerRecord]{client: c, path: "/workers"}
	return c
}

// NewAPIClientFromEnv reads VITE_API_URL and CASEDESK_API_TOKEN.
func NewAPIClientFromEnv(opts ...Option) (*APIClient, error) {
	if token := os.Getenv("CASEDESK_API_TOKEN"); token != "" {
		opts = append(opts, WithToken(token))
	}
	httpClient, err := NewHTTPClient(APIURLFromEnv(), opts...)
	if err != nil {
		return nil, err
	}
	return NewAPIClient(httpClient), nil
}

// do sends the request and decodes the response into out. It reports false
// if the backend answered with an empty body.
func (c *APIClient) do(ctx context.Context, method, path string, in any, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("could not marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return false, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, newAPIError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return false, fmt.Errorf("could not decode response of %s %s: %w", method, path, err)
	}
	return true, nil
}

// Resource bundles the list, read, create, update and delete calls of a
// backend collection.
type Resource[T any] struct {
	client *APIClient
	path   string
}

func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get returns nil without an error if the backend sent an empty body.
func (r Resource[T]) Get(ctx context.Context, id int) (*T, error) {
	return decodeOptional[T](ctx, r.client, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil)
}

func (r Resource[T]) Create(ctx context.Context, item T) (*T, error) {
	return decodeOptional[T](ctx, r.client, http.MethodPost, r.path, item)
}

func (r Resource[T]) Update(ctx context.Context, id int, item T) (*T, error) {
	return decodeOptional[T](ctx, r.client, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), item)
}

func (r Resource[T]) Delete(ctx context.Context, id int) error {
	_, err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
	return err
}

func decodeOptional[T any](ctx context.Context, c *APIClient, method, path string, in any) (*T, error) {
	var out T
	ok, err := c.do(ctx, method, path, in, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

func (c *APIClient) ListTicketMessages(ctx context.Context, ticketID int) ([]dtos.TicketMessageRecord, error) {
	var msgs []dtos.TicketMessageRecord
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/messages", ticketID), nil, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []dtos.TicketMessageRecord{}
	}
	return msgs, nil
}

func (c *APIClient) CreateTicketMessage(ctx context.Context, ticketID int, msg dtos.TicketMessageRecord) (*dtos.TicketMessageRecord, error) {
	return decodeOptional[dtos.TicketMessageRecord](ctx, c, http.MethodPost, fmt.Sprintf("/tickets/%d/messages", ticketID), msg)
}

const (
	ReferenceAssetTypes = "asset-types"
	ReferenceScanners   = "scanners"
	ReferenceIndustries = "industries"
	ReferenceOSTypes    = "os-types"
)

var ReferenceKinds = []string{ReferenceAssetTypes, ReferenceScanners, ReferenceIndustries, ReferenceOSTypes}

func (c *APIClient) ListReference(ctx context.Context, kind string) ([]dtos.ReferenceItem, error) {
	var items []dtos.ReferenceItem
	if _, err := c.do(ctx, http.MethodGet, "/reference/"+kind, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []dtos.ReferenceItem{}
	}
	return items, nil
}

func (c *APIClient) ListGanttTasks(ctx context.Context, projectID int) ([]dtos.GanttTaskRecord, error) {
	var tasks []dtos.GanttTaskRecord
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gantt/projects/%d/tasks", projectID), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []dtos.GanttTaskRecord{}
	}
	return tasks, nil
}

func (c *APIClient) CreateGanttTask(ctx context.Context, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error) {
	return decodeOptional[dtos.GanttTaskRecord](ctx, c, http.MethodPost, "/gantt/tasks", task)
}

func (c *APIClient) UpdateGanttTask(ctx context.Context, id int, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error) {
	return decodeOptional[dtos.GanttTaskRecord](ctx, c, http.MethodPut, fmt.Sprintf("/gantt/tasks/%d", id), task)
}

func (c *APIClient) DeleteGanttTask(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/gantt/tasks/%d", id), nil, nil)
	return err
}
