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

package dtos

type TicketMessageRecord struct {
	ID         int     `json:"id,omitempty"`
	TicketID   int     `json:"ticket_id,omitempty"`
	AuthorID   *int    `json:"author_id"`
	AuthorName *string `json:"author_name"`
	Content    string  `json:"content"`
	CreatedAt  *string `json:"created_at,omitempty"`
}

type TicketRecord struct {
	ID               int                   `json:"id,omitempty"`
	Title            string                `json:"title"`
	Description      *string               `json:"description"`
	Priority         string                `json:"priority"`
	Status           string                `json:"status"`
	AssigneeID       *int                  `json:"assignee_id"`
	ReporterID       *int                  `json:"reporter_id"`
	ClientID         *int                  `json:"client_id"`
	DueDate          *string               `json:"due_date"`
	VulnerabilityIDs []int                 `json:"vulnerability_ids"`
	Messages         []TicketMessageRecord `json:"messages,omitempty"`
	CreatedAt        *string               `json:"created_at,omitempty"`
	UpdatedAt        *string               `json:"updated_at,omitempty"`
	ResolvedAt       *string               `json:"resolved_at,omitempty"`
}

type TicketMessageDTO struct {
	ID         int    `json:"id"`
	TicketID   int    `json:"ticketId"`
	AuthorID   *int   `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content" validate:"required"`
	CreatedAt  string `json:"createdAt"`
}

type TicketDTO struct {
	ID               int                `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Priority         string             `json:"priority"`
	Status           string             `json:"status"`
	AssigneeID       *int               `json:"assigneeId"`
	ReporterID       *int               `json:"reporterId"`
	ClientID         *int               `json:"clientId"`
	DueDate          string             `json:"dueDate"`
	VulnerabilityIDs []int              `json:"vulnerabilityIds"`
	Messages         []TicketMessageDTO `json:"messages"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
	ResolvedAt       string             `json:"resolvedAt"`
}

// TicketCreateRequest is the form payload of the ticket modal. TicketFromVuln is
// set when the modal was opened from a single vulnerability.
type TicketCreateRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	Priority         string `json:"priority" validate:"required,oneof=Critical High Medium Low"`
	Status           string `json:"status"`
	AssigneeID       *int   `json:"assigneeId"`
	ReporterID       *int   `json:"reporterId"`
	ClientID         *int   `json:"clientId" validate:"required"`
	DueDate          string `json:"dueDate"`
	VulnerabilityIDs []int  `json:"vulnerabilityIds"`
	TicketFromVuln   *int   `json:"ticketFromVuln"`
}

type TicketMessageCreateRequest struct {
	AuthorID   *int   `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content" validate:"required"`
}
