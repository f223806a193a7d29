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

package reference

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/utils"
)

// MemoryResource is an in-memory ResourceAPI. It backs the demo mode and
// service tests.
type MemoryResource[T any] struct {
	mu     sync.Mutex
	items  []T
	getID  func(T) int
	setID  func(*T, int)
	nextID int
}

var _ shared.ResourceAPI[dtos.ClientRecord] = (*MemoryResource[dtos.ClientRecord])(nil)

func NewMemoryResource[T any](items []T, getID func(T) int, setID func(*T, int)) *MemoryResource[T] {
	next := 0
	for _, it := range items {
		next = max(next, getID(it))
	}
	return &MemoryResource[T]{
		items:  slices.Clone(items),
		getID:  getID,
		setID:  setID,
		nextID: next + 1,
	}
}

func notFound(id int) error {
	return &casedesk.APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("HTTP 404: item %d not found", id)}
}

func (m *MemoryResource[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items), nil
}

func (m *MemoryResource[T]) Get(ctx context.Context, id int) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := utils.Find(m.items, func(t T) bool { return m.getID(t) == id })
	if !ok {
		return nil, notFound(id)
	}
	return &it, nil
}

func (m *MemoryResource[T]) Create(ctx context.Context, item T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setID(&item, m.nextID)
	m.nextID++
	m.items = append(m.items, item)
	return &item, nil
}

func (m *MemoryResource[T]) Update(ctx context.Context, id int, item T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.items, func(t T) bool { return m.getID(t) == id })
	if idx < 0 {
		return nil, notFound(id)
	}
	m.setID(&item, id)
	m.items[idx] = item
	return &item, nil
}

func (m *MemoryResource[T]) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.items, func(t T) bool { return m.getID(t) == id })
	if idx < 0 {
		return notFound(id)
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	return nil
}

// DemoAPI serves a Dataset through the same interfaces as the HTTP client.
type DemoAPI struct {
	Clients         *MemoryResource[dtos.ClientRecord]
	Projects        *MemoryResource[dtos.ProjectRecord]
	Assets          *MemoryResource[dtos.AssetRecord]
	Vulnerabilities *MemoryResource[dtos.VulnerabilityRecord]
	Tickets         *MemoryResource[dtos.TicketRecord]
	Workers         *MemoryResource[dtos.WorkerRecord]
	GanttTasks      *MemoryResource[dtos.GanttTaskRecord]

	now func() time.Time
}

var _ shared.TicketMessageAPI = (*DemoAPI)(nil)
var _ shared.GanttAPI = (*DemoAPI)(nil)
var _ shared.ReferenceAPI = (*DemoAPI)(nil)

func NewDemoAPI(d Dataset) *DemoAPI {
	return &DemoAPI{
		Clients: NewMemoryResource(d.Clients,
			func(c dtos.ClientRecord) int { return c.ID }, func(c *dtos.ClientRecord, id int) { c.ID = id }),
		Projects: NewMemoryResource(d.Projects,
			func(p dtos.ProjectRecord) int { return p.ID }, func(p *dtos.ProjectRecord, id int) { p.ID = id }),
		Assets: NewMemoryResource(d.Assets,
			func(a dtos.AssetRecord) int { return a.ID }, func(a *dtos.AssetRecord, id int) { a.ID = id }),
		Vulnerabilities: NewMemoryResource(d.Vulnerabilities,
			func(v dtos.VulnerabilityRecord) int { return v.ID }, func(v *dtos.VulnerabilityRecord, id int) { v.ID = id }),
		Tickets: NewMemoryResource(d.Tickets,
			func(t dtos.TicketRecord) int { return t.ID }, func(t *dtos.TicketRecord, id int) { t.ID = id }),
		Workers: NewMemoryResource(d.Workers,
			func(w dtos.WorkerRecord) int { return w.ID }, func(w *dtos.WorkerRecord, id int) { w.ID = id }),
		GanttTasks: NewMemoryResource(d.GanttTasks,
			func(t dtos.GanttTaskRecord) int { return t.ID }, func(t *dtos.GanttTaskRecord, id int) { t.ID = id }),
		now: time.Now,
	}
}

func (d *DemoAPI) ListTicketMessages(ctx context.Context, ticketID int) ([]dtos.TicketMessageRecord, error) {
	t, err := d.Tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return t.Messages, nil
}

func (d *DemoAPI) CreateTicketMessage(ctx context.Context, ticketID int, msg dtos.TicketMessageRecord) (*dtos.TicketMessageRecord, error) {
	t, err := d.Tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	msg.ID = len(t.Messages) + 1
	msg.TicketID = ticketID
	msg.CreatedAt = utils.Ptr(d.now().Format(time.RFC3339))
	t.Messages = append(t.Messages, msg)
	if _, err := d.Tickets.Update(ctx, ticketID, *t); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (d *DemoAPI) ListGanttTasks(ctx context.Context, projectID int) ([]dtos.GanttTaskRecord, error) {
	tasks, err := d.GanttTasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return utils.Filter(tasks, func(t dtos.GanttTaskRecord) bool { return t.ProjectID == projectID }), nil
}

func (d *DemoAPI) CreateGanttTask(ctx context.Context, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error) {
	return d.GanttTasks.Create(ctx, task)
}

func (d *DemoAPI) UpdateGanttTask(ctx context.Context, id int, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error) {
	return d.GanttTasks.Update(ctx, id, task)
}

func (d *DemoAPI) DeleteGanttTask(ctx context.Context, id int) error {
	return d.GanttTasks.Delete(ctx, id)
}

var demoReference = map[string][]string{
	casedesk.ReferenceAssetTypes: {"Server", "Workstation", "Firewall", "Database", "Network Device"},
	casedesk.ReferenceScanners:   {"Nessus", "OpenVAS", "Qualys", "Nmap"},
	casedesk.ReferenceIndustries: {"Manufacturing", "Energy", "Healthcare", "Finance"},
	casedesk.ReferenceOSTypes:    {"Windows", "Linux", "macOS", "FortiOS"},
}

func (d *DemoAPI) ListReference(ctx context.Context, kind string) ([]dtos.ReferenceItem, error) {
	names, ok := demoReference[kind]
	if !ok {
		return nil, &casedesk.APIError{Status: http.StatusNotFound, Message: "HTTP 404: unknown reference list " + kind}
	}
	items := make([]dtos.ReferenceItem, len(names))
	for i, n := range names {
		items[i] = dtos.ReferenceItem{ID: i + 1, Name: n}
	}
	return items, nil
}
