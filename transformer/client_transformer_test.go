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

package transformer

import (
	"testing"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientToView(t *testing.T) {
	t.Run("should flatten the primary contact", func(t *testing.T) {
		record := dtos.ClientRecord{
			ID:        1,
			Name:      "Acme",
			ShortCode: "ACM",
			Contacts: []dtos.ContactRecord{
				{Name: "Bob", Role: "IT", Email: "bob@acme.io"},
				{Name: "Alice", Role: "CISO", Phone: "+49 1", Email: "alice@acme.io", IsPrimary: true},
			},
		}

		client := ClientToView(record)

		assert.Equal(t, "Alice", client.ContactName)
		assert.Equal(t, "CISO", client.ContactRole)
		assert.Equal(t, "+49 1", client.ContactPhone)
		assert.Equal(t, "alice@acme.io", client.ContactEmail)
		assert.Equal(t, []dtos.ContactDTO{{Name: "Bob", Role: "IT", Email: "bob@acme.io"}}, client.AdditionalContacts)
	})

	t.Run("should fall back to the first contact if none is marked primary", func(t *testing.T) {
		client := ClientToView(dtos.ClientRecord{
			Contacts: []dtos.ContactRecord{{Name: "Bob"}, {Name: "Carl"}},
		})
		assert.Equal(t, "Bob", client.ContactName)
		assert.Len(t, client.AdditionalContacts, 1)
	})

	t.Run("should degrade a missing contact list to empty values", func(t *testing.T) {
		client := ClientToView(dtos.ClientRecord{Name: "Acme", ContractStart: utils.Ptr("2024-03-01T00:00:00Z")})
		assert.Empty(t, client.ContactName)
		assert.NotNil(t, client.AdditionalContacts)
		assert.Empty(t, client.AdditionalContacts)
		assert.Equal(t, "2024-03-01", client.ContractStart)
		assert.False(t, client.HasFirewall)
	})
}

func TestClientRoundTrip(t *testing.T) {
	view := dtos.ClientDTO{
		Name:         "Acme",
		ShortCode:    "ACM",
		ContactName:  "Alice",
		ContactRole:  "CISO",
		ContactPhone: "+49 1",
		ContactEmail: "alice@acme.io",
		AdditionalContacts: []dtos.ContactDTO{
			{Name: "Bob", Email: "bob@acme.io"},
			{},
		},
		HasSIEM: true,
	}

	record := ClientToBackend(view)
	primaries := utils.Count(record.Contacts, func(c dtos.ContactRecord) bool { return c.IsPrimary })
	assert.Equal(t, 1, primaries)
	assert.Len(t, record.Contacts, 2, "empty contact rows are dropped")

	back := ClientToView(record)
	assert.Equal(t, view.ContactName, back.ContactName)
	assert.Equal(t, view.ContactRole, back.ContactRole)
	assert.Equal(t, view.ContactPhone, back.ContactPhone)
	assert.Equal(t, view.ContactEmail, back.ContactEmail)
	assert.True(t, back.HasSIEM)
	assert.Equal(t, []dtos.ContactDTO{{Name: "Bob", Email: "bob@acme.io"}}, back.AdditionalContacts)
}

func TestClientToBackendKeepsRoleOnlyContacts(t *testing.T) {
	record := ClientToBackend(dtos.ClientDTO{
		Name:               "Acme",
		ContactName:        "Alice",
		AdditionalContacts: []dtos.ContactDTO{{Role: "SOC on call"}},
	})
	require.Len(t, record.Contacts, 2)
	assert.Equal(t, "SOC on call", record.Contacts[1].Role)
	assert.False(t, record.Contacts[1].IsPrimary)
}
