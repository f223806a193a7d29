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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/dtos"
)

// ResourceAPI is a backend collection with one call per verb.
type ResourceAPI[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id int, item T) (*T, error)
	Delete(ctx context.Context, id int) error
}

type ClientAPI = ResourceAPI[dtos.ClientRecord]
type ProjectAPI = ResourceAPI[dtos.ProjectRecord]
type AssetAPI = ResourceAPI[dtos.AssetRecord]
type VulnerabilityAPI = ResourceAPI[dtos.VulnerabilityRecord]
type TicketAPI = ResourceAPI[dtos.TicketRecord]
type WorkerAPI = ResourceAPI[dtos.WorkerRecord]

type TicketMessageAPI interface {
	ListTicketMessages(ctx context.Context, ticketID int) ([]dtos.TicketMessageRecord, error)
	CreateTicketMessage(ctx context.Context, ticketID int, msg dtos.TicketMessageRecord) (*dtos.TicketMessageRecord, error)
}

type GanttAPI interface {
	ListGanttTasks(ctx context.Context, projectID int) ([]dtos.GanttTaskRecord, error)
	CreateGanttTask(ctx context.Context, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error)
	UpdateGanttTask(ctx context.Context, id int, task dtos.GanttTaskRecord) (*dtos.GanttTaskRecord, error)
	DeleteGanttTask(ctx context.Context, id int) error
}

type ReferenceAPI interface {
	ListReference(ctx context.Context, kind string) ([]dtos.ReferenceItem, error)
}

type ReportSnapshotRepository interface {
	Save(tx DB, snapshot *models.ReportSnapshot) error
	CreateBatch(tx DB, snapshots []models.ReportSnapshot) error
	Transaction(f func(tx DB) error) error
	Read(id uuid.UUID) (models.ReportSnapshot, error)
	Delete(tx DB, id uuid.UUID) error
	ListByClient(clientID *int, limit int) ([]models.ReportSnapshot, error)
	ListInRange(start, end time.Time) ([]models.ReportSnapshot, error)
}
