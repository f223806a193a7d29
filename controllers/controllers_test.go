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

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/mocks"
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type demo struct {
	api    *reference.DemoAPI
	store  *store.CaseStore
	loader *services.PageLoader
}

func newDemo() demo {
	api := reference.NewDemoAPI(reference.MockDataset(time.Now()))
	st := store.NewCaseStore(api.Clients, api.Assets, api.Vulnerabilities, api.Tickets, api.Workers, api.Projects, time.Minute)
	return demo{api: api, store: st, loader: services.NewPageLoader(st)}
}

func newContext(method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestDashboardController(t *testing.T) {
	d := newDemo()
	ctx, rec := newContext("GET", "/api/v1/dashboard/", "")

	require.NoError(t, NewDashboardController(d.loader).Read(ctx))
	assert.Equal(t, 200, rec.Code)

	var dashboard services.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Len(t, dashboard.Clients, 3)
	assert.Len(t, dashboard.Vulnerabilities, 9)
}

func TestReportController(t *testing.T) {
	t.Run("summary of the last 30 days", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, nil))
		ctx, rec := newContext("GET", "/api/v1/reports/summary/", "")

		require.NoError(t, c.Summary(ctx))
		var report reporting.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 7, report.Summary.TotalVulns)
		assert.Len(t, report.Daily, 30)
	})

	t.Run("summary scoped to a client", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, nil))
		ctx, rec := newContext("GET", "/api/v1/reports/summary/?clientId=3", "")

		require.NoError(t, c.Summary(ctx))
		var report reporting.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 2, report.Summary.TotalVulns)
		require.NotNil(t, report.ClientID)
		assert.Equal(t, 3, *report.ClientID)
	})

	t.Run("rejects bad query parameters", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, nil))

		ctx, _ := newContext("GET", "/api/v1/reports/summary/?clientId=acme", "")
		assert.Equal(t, 400, httpStatus(t, c.Summary(ctx)))

		ctx, _ = newContext("GET", "/api/v1/reports/summary/?start=2024-01-01", "")
		assert.Equal(t, 400, httpStatus(t, c.Summary(ctx)))

		ctx, _ = newContext("GET", "/api/v1/reports/snapshots/?limit=0", "")
		assert.Equal(t, 400, httpStatus(t, c.ListSnapshots(ctx)))
	})

	t.Run("snapshots without a database", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, nil))
		ctx, _ := newContext("GET", "/api/v1/reports/snapshots/", "")
		assert.Equal(t, http.StatusServiceUnavailable, httpStatus(t, c.ListSnapshots(ctx)))
	})

	t.Run("lists snapshots with the default limit", func(t *testing.T) {
		d := newDemo()
		repo := mocks.NewReportSnapshotRepository(t)
		repo.On("ListByClient", (*int)(nil), defaultSnapshotLimit).Return(nil, nil)
		c := NewReportController(services.NewReportService(d.loader, repo))

		ctx, rec := newContext("GET", "/api/v1/reports/snapshots/", "")
		require.NoError(t, c.ListSnapshots(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("lists snapshots within a date range", func(t *testing.T) {
		d := newDemo()
		repo := mocks.NewReportSnapshotRepository(t)
		repo.On("ListInRange", mock.Anything, mock.Anything).Return(nil, nil)
		c := NewReportController(services.NewReportService(d.loader, repo))

		ctx, rec := newContext("GET", "/api/v1/reports/snapshots/?start=2024-03-01&end=2024-03-15", "")
		require.NoError(t, c.ListSnapshots(ctx))
		assert.Equal(t, 200, rec.Code)

		ctx, _ = newContext("GET", "/api/v1/reports/snapshots/?start=2024-03-01", "")
		assert.Equal(t, 400, httpStatus(t, c.ListSnapshots(ctx)))
	})

	t.Run("rejects oversized report ranges", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, mocks.NewReportSnapshotRepository(t)))

		ctx, _ := newContext("GET", "/api/v1/reports/summary/?start=0001-01-01&end=9999-12-31", "")
		assert.Equal(t, 400, httpStatus(t, c.Summary(ctx)))

		ctx, _ = newContext("POST", "/api/v1/reports/snapshots/", `{"start":"0001-01-01","end":"9999-12-31"}`)
		assert.Equal(t, 400, httpStatus(t, c.CreateSnapshot(ctx)))
	})

	t.Run("creates a snapshot", func(t *testing.T) {
		d := newDemo()
		repo := mocks.NewReportSnapshotRepository(t)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		c := NewReportController(services.NewReportService(d.loader, repo))

		ctx, rec := newContext("POST", "/api/v1/reports/snapshots/", `{"start":"2024-03-01","end":"2024-03-15"}`)
		require.NoError(t, c.CreateSnapshot(ctx))
		assert.Equal(t, 201, rec.Code)

		var snapshot dtos.ReportSnapshotDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, "2024-03-01", snapshot.Start)
		assert.NotEmpty(t, snapshot.Report)
	})

	t.Run("rejects malformed snapshot ids", func(t *testing.T) {
		d := newDemo()
		c := NewReportController(services.NewReportService(d.loader, mocks.NewReportSnapshotRepository(t)))
		ctx, _ := newContext("GET", "/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("not-a-uuid")
		assert.Equal(t, 400, httpStatus(t, c.ReadSnapshot(ctx)))
	})
}

func TestGanttController(t *testing.T) {
	d := newDemo()
	c := NewGanttController(services.NewGanttService(d.api.Projects, d.api))

	t.Run("layout of an existing project", func(t *testing.T) {
		ctx, rec := newContext("GET", "/", "")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("1")

		require.NoError(t, c.Layout(ctx))
		var layout services.GanttLayout
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
		assert.Equal(t, 1, layout.ProjectID)
		assert.Len(t, layout.Bars, 3)
	})

	t.Run("unknown project", func(t *testing.T) {
		ctx, _ := newContext("GET", "/", "")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("999")
		assert.Equal(t, 404, httpStatus(t, c.Layout(ctx)))
	})

	t.Run("invalid project id", func(t *testing.T) {
		ctx, _ := newContext("GET", "/", "")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("abc")
		assert.Equal(t, 400, httpStatus(t, c.Layout(ctx)))
	})

	t.Run("rejects a task ending before it starts", func(t *testing.T) {
		ctx, _ := newContext("POST", "/", `{"name":"wrap up","startDate":"2030-01-10","endDate":"2030-01-01"}`)
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("1")
		assert.Equal(t, 400, httpStatus(t, c.CreateTask(ctx)))
	})
}

func TestTicketController(t *testing.T) {
	t.Run("form options for a client", func(t *testing.T) {
		d := newDemo()
		c := NewTicketController(services.NewTicketService(d.api.Tickets, d.api, d.store, nil))
		ctx, rec := newContext("GET", "/api/v1/tickets/form-options/?clientId=2&selected=1,5,7", "")

		require.NoError(t, c.FormOptions(ctx))
		var options services.TicketFormOptions
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
		assert.Equal(t, []int{5, 7}, options.Selected)
	})

	t.Run("rejects malformed selections", func(t *testing.T) {
		d := newDemo()
		c := NewTicketController(services.NewTicketService(d.api.Tickets, d.api, d.store, nil))
		ctx, _ := newContext("GET", "/api/v1/tickets/form-options/?selected=1,x", "")
		assert.Equal(t, 400, httpStatus(t, c.FormOptions(ctx)))
	})

	t.Run("rejects tickets without vulnerabilities", func(t *testing.T) {
		d := newDemo()
		c := NewTicketController(services.NewTicketService(d.api.Tickets, d.api, d.store, nil))
		ctx, _ := newContext("POST", "/api/v1/tickets/", `{"title":"Patch","priority":"High","clientId":1}`)
		assert.Equal(t, 400, httpStatus(t, c.Create(ctx)))
	})

	t.Run("creates a ticket", func(t *testing.T) {
		d := newDemo()
		c := NewTicketController(services.NewTicketService(d.api.Tickets, d.api, d.store, nil))
		ctx, rec := newContext("POST", "/api/v1/tickets/", `{"title":"Patch OpenSSH","priority":"High","clientId":1,"vulnerabilityIds":[1]}`)

		require.NoError(t, c.Create(ctx))
		assert.Equal(t, 201, rec.Code)
		var ticket dtos.TicketDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
		assert.Equal(t, "Patch OpenSSH", ticket.Title)
		assert.Equal(t, []int{1}, ticket.VulnerabilityIDs)
	})

	t.Run("passes upstream errors through", func(t *testing.T) {
		d := newDemo()
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		tickets.On("Create", mock.Anything, mock.Anything).Return(nil, &casedesk.APIError{Status: 422, Message: "Validation failed: title: field required"})
		c := NewTicketController(services.NewTicketService(tickets, d.api, d.store, nil))
		ctx, _ := newContext("POST", "/api/v1/tickets/", `{"title":"Patch","priority":"High","clientId":1,"vulnerabilityIds":[1]}`)

		err := c.Create(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, 422, he.Code)
		assert.Equal(t, "Validation failed: title: field required", he.Message)
	})

	t.Run("adds a message", func(t *testing.T) {
		d := newDemo()
		c := NewTicketController(services.NewTicketService(d.api.Tickets, d.api, d.store, nil))
		ctx, rec := newContext("POST", "/", `{"authorName":"Sam Analyst","content":"  patched  "}`)
		ctx.SetParamNames("ticketID")
		ctx.SetParamValues("1")

		require.NoError(t, c.CreateMessage(ctx))
		assert.Equal(t, 201, rec.Code)
		var msg dtos.TicketMessageDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, "patched", msg.Content)
	})
}

func TestReferenceController(t *testing.T) {
	d := newDemo()
	ctx, rec := newContext("GET", "/api/v1/reference/", "")

	require.NoError(t, NewReferenceController(d.api).Read(ctx))
	var resp ReferenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, kind := range casedesk.ReferenceKinds {
		assert.NotEmpty(t, resp.Lists[kind], kind)
	}
	assert.Equal(t, []string{"Critical", "High", "Medium", "Low"}, resp.Criticalities)
}
