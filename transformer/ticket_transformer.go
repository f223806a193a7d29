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
	"slices"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

func TicketsToView(records []dtos.TicketRecord) []dtos.TicketDTO {
	return utils.Map(records, TicketToView)
}

func TicketToView(r dtos.TicketRecord) dtos.TicketDTO {
	vulnIDs := r.VulnerabilityIDs
	if vulnIDs == nil {
		vulnIDs = []int{}
	}
	return dtos.TicketDTO{
		ID:               r.ID,
		Title:            r.Title,
		Description:      utils.SafeDereference(r.Description),
		Priority:         r.Priority,
		Status:           r.Status,
		AssigneeID:       r.AssigneeID,
		ReporterID:       r.ReporterID,
		ClientID:         r.ClientID,
		DueDate:          utils.DateOnly(utils.SafeDereference(r.DueDate)),
		VulnerabilityIDs: vulnIDs,
		Messages:         utils.Map(r.Messages, TicketMessageToView),
		CreatedAt:        utils.DateOnly(utils.SafeDereference(r.CreatedAt)),
		UpdatedAt:        utils.DateOnly(utils.SafeDereference(r.UpdatedAt)),
		ResolvedAt:       utils.DateOnly(utils.SafeDereference(r.ResolvedAt)),
	}
}

func TicketToBackend(t dtos.TicketDTO) dtos.TicketRecord {
	vulnIDs := t.VulnerabilityIDs
	if vulnIDs == nil {
		vulnIDs = []int{}
	}
	return dtos.TicketRecord{
		ID:               t.ID,
		Title:            t.Title,
		Description:      utils.EmptyThenNil(t.Description),
		Priority:         t.Priority,
		Status:           t.Status,
		AssigneeID:       t.AssigneeID,
		ReporterID:       t.ReporterID,
		ClientID:         t.ClientID,
		DueDate:          utils.EmptyThenNil(t.DueDate),
		VulnerabilityIDs: vulnIDs,
	}
}

// TicketCreateRequestToBackend merges the vulnerability the modal was opened
// from into the linked vulnerability ids.
func TicketCreateRequestToBackend(req dtos.TicketCreateRequest) dtos.TicketRecord {
	vulnIDs := make([]int, 0, len(req.VulnerabilityIDs)+1)
	vulnIDs = append(vulnIDs, req.VulnerabilityIDs...)
	if req.TicketFromVuln != nil && !slices.Contains(vulnIDs, *req.TicketFromVuln) {
		vulnIDs = append(vulnIDs, *req.TicketFromVuln)
	}
	status := req.Status
	if status == "" {
		status = "Open"
	}

	return dtos.TicketRecord{
		Title:            req.Title,
		Description:      utils.EmptyThenNil(req.Description),
		Priority:         req.Priority,
		Status:           status,
		AssigneeID:       req.AssigneeID,
		ReporterID:       req.ReporterID,
		ClientID:         req.ClientID,
		DueDate:          utils.EmptyThenNil(req.DueDate),
		VulnerabilityIDs: vulnIDs,
	}
}

func TicketMessageToView(r dtos.TicketMessageRecord) dtos.TicketMessageDTO {
	return dtos.TicketMessageDTO{
		ID:         r.ID,
		TicketID:   r.TicketID,
		AuthorID:   r.AuthorID,
		AuthorName: utils.SafeDereference(r.AuthorName),
		Content:    r.Content,
		CreatedAt:  utils.SafeDereference(r.CreatedAt),
	}
}

func TicketMessageToBackend(ticketID int, req dtos.TicketMessageCreateRequest) dtos.TicketMessageRecord {
	return dtos.TicketMessageRecord{
		TicketID:   ticketID,
		AuthorID:   req.AuthorID,
		AuthorName: utils.EmptyThenNil(req.AuthorName),
		Content:    req.Content,
	}
}

