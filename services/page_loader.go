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

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrLoadFailed wraps the first failed fetch of a page load. A page renders
// all of its collections or none.
var ErrLoadFailed = errors.New("failed to load page data")

func loadFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrLoadFailed, err)
}

func fetch[T any](g *errgroup.Group, ctx context.Context, s *store.CollectionStore[T], dst *[]T) {
	g.Go(func() error {
		items, err := s.All(ctx)
		if err != nil {
			return errors.Wrapf(err, "could not load %s", s.Name())
		}
		*dst = items
		return nil
	})
}

type Dashboard struct {
	Clients         []dtos.ClientDTO        `json:"clients"`
	Assets          []dtos.AssetDTO         `json:"assets"`
	Vulnerabilities []dtos.VulnerabilityDTO `json:"vulnerabilities"`
	Tickets         []dtos.TicketDTO        `json:"tickets"`
	Workers         []dtos.WorkerDTO        `json:"workers"`
	Projects        []dtos.ProjectDTO       `json:"projects"`
}

type TicketsPage struct {
	Tickets         []dtos.TicketDTO        `json:"tickets"`
	Workers         []dtos.WorkerDTO        `json:"workers"`
	Vulnerabilities []dtos.VulnerabilityDTO `json:"vulnerabilities"`
	Clients         []dtos.ClientDTO        `json:"clients"`
}

type ReportsPage struct {
	Vulnerabilities []dtos.VulnerabilityDTO `json:"vulnerabilities"`
	Tickets         []dtos.TicketDTO        `json:"tickets"`
	Assets          []dtos.AssetDTO         `json:"assets"`
	Clients         []dtos.ClientDTO        `json:"clients"`
}

// PageLoader fetches every collection of a page concurrently and joins.
type PageLoader struct {
	store *store.CaseStore
}

func NewPageLoader(store *store.CaseStore) *PageLoader {
	return &PageLoader{store: store}
}

func (l *PageLoader) LoadDashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, l.store.Clients, &d.Clients)
	fetch(g, gctx, l.store.Assets, &d.Assets)
	fetch(g, gctx, l.store.Vulnerabilities, &d.Vulnerabilities)
	fetch(g, gctx, l.store.Tickets, &d.Tickets)
	fetch(g, gctx, l.store.Workers, &d.Workers)
	fetch(g, gctx, l.store.Projects, &d.Projects)
	if err := g.Wait(); err != nil {
		return Dashboard{}, loadFailed(err)
	}
	return d, nil
}

func (l *PageLoader) LoadTicketsPage(ctx context.Context) (TicketsPage, error) {
	var p TicketsPage
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, l.store.Tickets, &p.Tickets)
	fetch(g, gctx, l.store.Workers, &p.Workers)
	fetch(g, gctx, l.store.Vulnerabilities, &p.Vulnerabilities)
	fetch(g, gctx, l.store.Clients, &p.Clients)
	if err := g.Wait(); err != nil {
		return TicketsPage{}, loadFailed(err)
	}
	return p, nil
}

func (l *PageLoader) LoadReportsPage(ctx context.Context) (ReportsPage, error) {
	var p ReportsPage
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, l.store.Vulnerabilities, &p.Vulnerabilities)
	fetch(g, gctx, l.store.Tickets, &p.Tickets)
	fetch(g, gctx, l.store.Assets, &p.Assets)
	fetch(g, gctx, l.store.Clients, &p.Clients)
	if err := g.Wait(); err != nil {
		return ReportsPage{}, loadFailed(err)
	}
	return p, nil
}

type PageState int

const (
	PageLoading PageState = iota
	PageReady
)

func (s PageState) String() string {
	if s == PageReady {
		return "ready"
	}
	return "loading"
}

// Page holds the data of one page. It moves from loading to ready once
// and never goes back. A failed load leaves it loading.
type Page[T any] struct {
	mu    sync.Mutex
	state PageState
	data  T
}

func (p *Page[T]) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load runs load unless the page is ready already.
func (p *Page[T]) Load(ctx context.Context, load func(ctx context.Context) (T, error)) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PageReady {
		return p.data, nil
	}
	data, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	p.data = data
	p.state = PageReady
	return data, nil
}
