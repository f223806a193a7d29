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
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/mocks"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTicketTestStore(t *testing.T, tickets shared.TicketAPI) *store.CaseStore {
	_, api := newDemoStore()
	return store.NewCaseStore(api.Clients, api.Assets, api.Vulnerabilities, tickets, api.Workers, api.Projects, time.Minute)
}

func TestTicketServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a ticket without vulnerabilities before calling the backend", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		s := NewTicketService(tickets, mocks.NewTicketMessageAPI(t), newTicketTestStore(t, tickets), nil)

		_, err := s.Create(ctx, dtos.TicketCreateRequest{Title: "t", Priority: "High", ClientID: utils.Ptr(1)})
		assert.ErrorIs(t, err, ErrNoVulnerabilities)
		tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing required fields before calling the backend", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		s := NewTicketService(tickets, mocks.NewTicketMessageAPI(t), newTicketTestStore(t, tickets), nil)

		_, err := s.Create(ctx, dtos.TicketCreateRequest{Priority: "High", VulnerabilityIDs: []int{1}})
		var formErr *FormError
		require.ErrorAs(t, err, &formErr)
		assert.ElementsMatch(t, []string{"title", "clientId"}, formErr.Fields)
		tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("accepts a ticket opened from a single vulnerability", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		st := newTicketTestStore(t, tickets)
		broker := mocks.NewPubSubBroker(t)
		s := NewTicketService(tickets, mocks.NewTicketMessageAPI(t), st, broker)

		tickets.On("List", mock.Anything).Return([]dtos.TicketRecord{{ID: 1, Title: "existing", Status: "Open"}}, nil).Once()
		_, err := st.Tickets.All(ctx)
		require.NoError(t, err)

		tickets.On("Create", mock.Anything, mock.MatchedBy(func(r dtos.TicketRecord) bool {
			return len(r.VulnerabilityIDs) == 1 && r.VulnerabilityIDs[0] == 7 && r.Status == "Open"
		})).Return(&dtos.TicketRecord{ID: 2, Title: "new", Status: "Open", VulnerabilityIDs: []int{7}}, nil)
		broker.On("Publish", mock.Anything, mock.MatchedBy(func(m shared.PubSubMessage) bool {
			return m.GetPayload()["collection"] == store.CollectionTickets
		})).Return(nil)

		created, err := s.Create(ctx, dtos.TicketCreateRequest{Title: "new", Priority: "High", ClientID: utils.Ptr(1), TicketFromVuln: utils.Ptr(7)})
		require.NoError(t, err)
		assert.Equal(t, 2, created.ID)

		// merged into the loaded collection without a reload
		all, err := st.Tickets.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("wraps backend errors", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		s := NewTicketService(tickets, mocks.NewTicketMessageAPI(t), newTicketTestStore(t, tickets), nil)
		tickets.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("HTTP 500: boom"))

		_, err := s.Create(ctx, dtos.TicketCreateRequest{Title: "t", Priority: "High", ClientID: utils.Ptr(1), VulnerabilityIDs: []int{1}})
		assert.ErrorContains(t, err, "could not create ticket: HTTP 500: boom")
	})

	t.Run("falls back to the submitted ticket on an empty response", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		s := NewTicketService(tickets, mocks.NewTicketMessageAPI(t), newTicketTestStore(t, tickets), nil)
		tickets.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

		created, err := s.Create(ctx, dtos.TicketCreateRequest{Title: "t", Priority: "High", ClientID: utils.Ptr(1), VulnerabilityIDs: []int{1}})
		require.NoError(t, err)
		assert.Equal(t, "t", created.Title)
		assert.Equal(t, 0, created.ID)
	})
}

func TestTicketServiceAddMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank messages", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		messages := mocks.NewTicketMessageAPI(t)
		s := NewTicketService(tickets, messages, newTicketTestStore(t, tickets), nil)

		_, err := s.AddMessage(ctx, 1, dtos.TicketMessageCreateRequest{Content: "   "})
		var formErr *FormError
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, []string{"content"}, formErr.Fields)
	})

	t.Run("posts the trimmed message", func(t *testing.T) {
		tickets := mocks.NewResourceAPI[dtos.TicketRecord](t)
		messages := mocks.NewTicketMessageAPI(t)
		s := NewTicketService(tickets, messages, newTicketTestStore(t, tickets), nil)

		messages.On("CreateTicketMessage", mock.Anything, 3, dtos.TicketMessageRecord{TicketID: 3, Content: "on it"}).
			Return(&dtos.TicketMessageRecord{ID: 9, TicketID: 3, Content: "on it", CreatedAt: utils.Ptr("2024-03-15T10:00:00Z")}, nil)

		msg, err := s.AddMessage(ctx, 3, dtos.TicketMessageCreateRequest{Content: " on it "})
		require.NoError(t, err)
		assert.Equal(t, 9, msg.ID)
		assert.Equal(t, "on it", msg.Content)
	})
}

func TestTicketServiceFormOptions(t *testing.T) {
	st, _ := newDemoStore()
	s := NewTicketService(nil, nil, st, nil)

	opts, err := s.FormOptions(context.Background(), utils.Ptr(2), []int{1, 5, 7})
	require.NoError(t, err)

	// robin is assigned to client 2, kim takes every client
	assert.Equal(t, []string{"Robin Responder", "Kim Generalist"}, utils.Map(opts.Assignees, func(w dtos.WorkerDTO) string { return w.Name }))
	for _, v := range opts.Vulnerabilities {
		assert.Equal(t, 2, *v.ClientID)
		assert.NotEqual(t, "Closed", v.Status)
	}
	for _, a := range opts.Assets {
		assert.Equal(t, 2, *a.ClientID)
	}
	assert.Equal(t, []int{5, 7}, opts.Selected)
}
