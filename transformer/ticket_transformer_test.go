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
)

func TestTicketCreateRequestToBackend(t *testing.T) {
	t.Run("should link the vulnerability the ticket was created from", func(t *testing.T) {
		record := TicketCreateRequestToBackend(dtos.TicketCreateRequest{
			Title:          "Patch host",
			Priority:       "High",
			TicketFromVuln: utils.Ptr(7),
		})
		assert.Equal(t, []int{7}, record.VulnerabilityIDs)
		assert.Equal(t, "Open", record.Status)
	})

	t.Run("should not link the same vulnerability twice", func(t *testing.T) {
		record := TicketCreateRequestToBackend(dtos.TicketCreateRequest{
			VulnerabilityIDs: []int{7, 8},
			TicketFromVuln:   utils.Ptr(7),
			Status:           "In Progress",
		})
		assert.Equal(t, []int{7, 8}, record.VulnerabilityIDs)
		assert.Equal(t, "In Progress", record.Status)
	})
}

func TestTicketToView(t *testing.T) {
	view := TicketToView(dtos.TicketRecord{
		Title:    "Patch host",
		DueDate:  utils.Ptr("2024-02-01T00:00:00"),
		Messages: []dtos.TicketMessageRecord{{Content: "on it", AuthorName: utils.Ptr("Alice")}},
	})
	assert.Equal(t, "2024-02-01", view.DueDate)
	assert.NotNil(t, view.VulnerabilityIDs)
	assert.Len(t, view.Messages, 1)
	assert.Equal(t, "Alice", view.Messages[0].AuthorName)
}
