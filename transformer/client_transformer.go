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
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

func ClientsToView(records []dtos.ClientRecord) []dtos.ClientDTO {
	return utils.Map(records, ClientToView)
}

// ClientToView flattens the primary contact into the view model. If no contact
// is marked as primary, the first contact is used.
func ClientToView(r dtos.ClientRecord) dtos.ClientDTO {
	primaryIdx := -1
	for i, c := range r.Contacts {
		if c.IsPrimary {
			primaryIdx = i
			break
		}
	}
	if primaryIdx == -1 && len(r.Contacts) > 0 {
		primaryIdx = 0
	}

	client := dtos.ClientDTO{
		ID:                 r.ID,
		Name:               r.Name,
		ShortCode:          r.ShortCode,
		Industry:           utils.SafeDereference(r.Industry),
		AdditionalContacts: make([]dtos.ContactDTO, 0, len(r.Contacts)),
		ContractType:       utils.SafeDereference(r.ContractType),
		ContractStart:      utils.DateOnly(utils.SafeDereference(r.ContractStart)),
		ContractEnd:        utils.DateOnly(utils.SafeDereference(r.ContractEnd)),
		SLALevel:           utils.SafeDereference(r.SLALevel),
		Notes:              utils.SafeDereference(r.Notes),
		HasFirewall:        utils.OrDefault(r.HasFirewall, false),
		HasSIEM:            utils.OrDefault(r.HasSIEM, false),
		HasEDR:             utils.OrDefault(r.HasEDR, false),
		HasBackup:          utils.OrDefault(r.HasBackup, false),
		CloudProvider:      utils.SafeDereference(r.CloudProvider),
		CreatedAt:          utils.DateOnly(utils.SafeDereference(r.CreatedAt)),
	}

	for i, c := range r.Contacts {
		if i == primaryIdx {
			client.ContactName = c.Name
			client.ContactRole = c.Role
			client.ContactPhone = c.Phone
			client.ContactEmail = c.Email
			continue
		}
		client.AdditionalContacts = append(client.AdditionalContacts, dtos.ContactDTO{
			Name:  c.Name,
			Role:  c.Role,
			Phone: c.Phone,
			Email: c.Email,
		})
	}

	return client
}

// ClientToBackend rebuilds the contact list with exactly one primary entry.
// An entirely empty primary contact is left out.
func ClientToBackend(c dtos.ClientDTO) dtos.ClientRecord {
	contacts := make([]dtos.ContactRecord, 0, len(c.AdditionalContacts)+1)
	if c.ContactName != "" || c.ContactRole != "" || c.ContactPhone != "" || c.ContactEmail != "" {
		contacts = append(contacts, dtos.ContactRecord{
			Name:      c.ContactName,
			Role:      c.ContactRole,
			Phone:     c.ContactPhone,
			Email:     c.ContactEmail,
			IsPrimary: true,
		})
	}
	for _, additional := range c.AdditionalContacts {
		// skip rows the user added but never filled
		if additional.Name == "" && additional.Role == "" && additional.Email == "" && additional.Phone == "" {
			continue
		}
		contacts = append(contacts, dtos.ContactRecord{
			Name:  additional.Name,
			Role:  additional.Role,
			Phone: additional.Phone,
			Email: additional.Email,
		})
	}

	return dtos.ClientRecord{
		ID:            c.ID,
		Name:          c.Name,
		ShortCode:     c.ShortCode,
		Industry:      utils.EmptyThenNil(c.Industry),
		Contacts:      contacts,
		ContractType:  utils.EmptyThenNil(c.ContractType),
		ContractStart: utils.EmptyThenNil(c.ContractStart),
		ContractEnd:   utils.EmptyThenNil(c.ContractEnd),
		SLALevel:      utils.EmptyThenNil(c.SLALevel),
		Notes:         utils.EmptyThenNil(c.Notes),
		HasFirewall:   utils.Ptr(c.HasFirewall),
		HasSIEM:       utils.Ptr(c.HasSIEM),
		HasEDR:        utils.Ptr(c.HasEDR),
		HasBackup:     utils.Ptr(c.HasBackup),
		CloudProvider: utils.EmptyThenNil(c.CloudProvider),
	}
}
