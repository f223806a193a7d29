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
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Corporation", "ACME"},
		{"  Initech  ", "INIT"},
		{"Müller Maschinenbau GmbH", "MMG"},
		{"Contoso", "CONT"},
		{"Ab", "AB"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientCode(tt.name))
		})
	}

	t.Run("should never exceed the short code limit", func(t *testing.T) {
		code := ClientCode("a b c d e f g h i j k l m n")
		assert.Len(t, code, maxCodeLength)
	})
}

func TestColors(t *testing.T) {
	assert.Equal(t, "bg-red-100 text-red-800", Color(CriticalityColors, "Critical"))
	assert.Equal(t, "bg-blue-100 text-blue-800", Color(TicketStatusColors, "in progress"))
	assert.Equal(t, "bg-blue-100 text-blue-800", Color(TicketStatusColors, "IN_PROGRESS"))
	assert.Equal(t, defaultBadge, Color(TicketStatusColors, "Unknown"))
}

func TestCriticalityRank(t *testing.T) {
	assert.Less(t, CriticalityRank("Critical"), CriticalityRank("High"))
	assert.Less(t, CriticalityRank("high"), CriticalityRank("Medium"))
	assert.Less(t, CriticalityRank("Low"), CriticalityRank("whatever"))
}

func TestMockDataset(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	d := MockDataset(now)

	t.Run("should reference existing clients and assets", func(t *testing.T) {
		clientIDs := map[int]bool{}
		for _, c := range d.Clients {
			clientIDs[c.ID] = true
		}
		assetIDs := map[int]bool{}
		for _, a := range d.Assets {
			assetIDs[a.ID] = true
			assert.True(t, clientIDs[*a.ClientID], a.Name)
		}
		for _, v := range d.Vulnerabilities {
			assert.True(t, clientIDs[*v.ClientID], v.Title)
			assert.True(t, assetIDs[*v.AssetID], v.Title)
		}
		for _, tk := range d.Tickets {
			assert.NotEmpty(t, tk.VulnerabilityIDs, tk.Title)
		}
	})

	t.Run("should keep gantt tasks inside their project", func(t *testing.T) {
		projects := map[int]dtos.ProjectRecord{}
		for _, p := range d.Projects {
			projects[p.ID] = p
		}
		for _, task := range d.GanttTasks {
			p := projects[task.ProjectID]
			assert.GreaterOrEqual(t, task.StartDate, *p.StartDate, task.Name)
			assert.LessOrEqual(t, task.EndDate, *p.EndDate, task.Name)
		}
	})
}

func TestDemoAPI(t *testing.T) {
	ctx := context.Background()
	api := NewDemoAPI(MockDataset(time.Now()))

	t.Run("should assign the next id on create", func(t *testing.T) {
		created, err := api.Tickets.Create(ctx, dtos.TicketRecord{Title: "new"})
		require.NoError(t, err)
		assert.Equal(t, 5, created.ID)

		got, err := api.Tickets.Get(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "new", got.Title)
	})

	t.Run("should answer unknown ids with a not found error", func(t *testing.T) {
		_, err := api.Clients.Get(ctx, 999)
		assert.True(t, casedesk.IsNotFound(err))
		assert.True(t, casedesk.IsNotFound(api.Assets.Delete(ctx, 999)))
	})

	t.Run("should append ticket messages", func(t *testing.T) {
		msg, err := api.CreateTicketMessage(ctx, 1, dtos.TicketMessageRecord{Content: "done"})
		require.NoError(t, err)
		assert.Equal(t, 1, msg.TicketID)

		msgs, err := api.ListTicketMessages(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
		assert.Equal(t, "done", msgs[1].Content)
	})

	t.Run("should list gantt tasks per project", func(t *testing.T) {
		tasks, err := api.ListGanttTasks(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("should serve reference lists", func(t *testing.T) {
		items, err := api.ListReference(ctx, casedesk.ReferenceScanners)
		require.NoError(t, err)
		assert.Equal(t, "Nessus", items[0].Name)

		_, err = api.ListReference(ctx, "unknown")
		assert.True(t, casedesk.IsNotFound(err))
	})
}
