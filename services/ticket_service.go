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
	"strings"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/monitoring"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/l3montree-dev/casedesk/transformer"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrNoVulnerabilities = errors.New("a ticket must reference at least one vulnerability")

type TicketService struct {
	tickets  shared.TicketAPI
	messages shared.TicketMessageAPI
	store    *store.CaseStore
	broker   shared.PubSubBroker
}

// NewTicketService creates the service. broker may be nil, then changes
// are only visible to this instance.
func NewTicketService(tickets shared.TicketAPI, messages shared.TicketMessageAPI, store *store.CaseStore, broker shared.PubSubBroker) *TicketService {
	return &TicketService{
		tickets:  tickets,
		messages: messages,
		store:    store,
		broker:   broker,
	}
}

// Create submits the ticket modal. The form is checked before the backend
// is called.
func (s *TicketService) Create(ctx context.Context, form dtos.TicketCreateRequest) (dtos.TicketDTO, error) {
	if len(form.VulnerabilityIDs) == 0 && form.TicketFromVuln == nil {
		return dtos.TicketDTO{}, ErrNoVulnerabilities
	}
	if err := ValidateForm(form); err != nil {
		return dtos.TicketDTO{}, err
	}

	record := transformer.TicketCreateRequestToBackend(form)
	created, err := s.tickets.Create(ctx, record)
	if err != nil {
		return dtos.TicketDTO{}, errors.Wrap(err, "could not create ticket")
	}
	monitoring.TicketCreatedAmount.Inc()

	if created == nil {
		// the backend accepted the ticket but did not echo it, so the id is unknown
		s.store.Publish(ctx, s.broker, store.CollectionTickets)
		return transformer.TicketToView(record), nil
	}

	view := transformer.TicketToView(*created)
	s.store.Tickets.Merge(view)
	s.store.Notify(ctx, s.broker, store.CollectionTickets)
	return view, nil
}

// AddMessage appends a chat message to a ticket.
func (s *TicketService) AddMessage(ctx context.Context, ticketID int, req dtos.TicketMessageCreateRequest) (dtos.TicketMessageDTO, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := ValidateForm(req); err != nil {
		return dtos.TicketMessageDTO{}, err
	}

	record := transformer.TicketMessageToBackend(ticketID, req)
	created, err := s.messages.CreateTicketMessage(ctx, ticketID, record)
	if err != nil {
		return dtos.TicketMessageDTO{}, errors.Wrapf(err, "could not add message to ticket %d", ticketID)
	}
	monitoring.TicketMessageCreatedAmount.Inc()

	// messages are embedded in the ticket collection
	s.store.Publish(ctx, s.broker, store.CollectionTickets)

	if created == nil {
		return transformer.TicketMessageToView(record), nil
	}
	return transformer.TicketMessageToView(*created), nil
}

type TicketFormOptions struct {
	Assignees       []dtos.WorkerDTO        `json:"assignees"`
	Vulnerabilities []dtos.VulnerabilityDTO `json:"vulnerabilities"`
	Assets          []dtos.AssetDTO         `json:"assets"`
	// Selected is the submitted selection minus the vulnerabilities of
	// other clients
	Selected []int `json:"selected"`
}

// FormOptions returns what the ticket modal may offer once clientID is
// selected.
func (s *TicketService) FormOptions(ctx context.Context, clientID *int, selected []int) (TicketFormOptions, error) {
	var (
		workers []dtos.WorkerDTO
		vulns   []dtos.VulnerabilityDTO
		assets  []dtos.AssetDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, s.store.Workers, &workers)
	fetch(g, gctx, s.store.Vulnerabilities, &vulns)
	fetch(g, gctx, s.store.Assets, &assets)
	if err := g.Wait(); err != nil {
		return TicketFormOptions{}, loadFailed(err)
	}

	return TicketFormOptions{
		Assignees:       AssigneesForClient(workers, clientID),
		Vulnerabilities: SortVulnerabilities(VulnerabilitiesForClient(vulns, clientID)),
		Assets:          AssetsForClient(assets, clientID),
		Selected:        PruneSelection(selected, vulns, clientID),
	}, nil
}
