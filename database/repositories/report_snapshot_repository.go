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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/shared"
)

type reportSnapshotRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.ReportSnapshot]
}

var _ shared.ReportSnapshotRepository = (*reportSnapshotRepository)(nil)

func NewReportSnapshotRepository(db shared.DB) *reportSnapshotRepository {
	return &reportSnapshotRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ReportSnapshot](db),
	}
}

// ListByClient returns the newest snapshots first. A nil client lists the
// portfolio-wide snapshots only.
func (r *reportSnapshotRepository) ListByClient(clientID *int, limit int) ([]models.ReportSnapshot, error) {
	var snapshots []models.ReportSnapshot
	q := r.db.Order("created_at DESC")
	if clientID == nil {
		q = q.Where("client_id IS NULL")
	} else {
		q = q.Where("client_id = ?", *clientID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&snapshots).Error
	return snapshots, err
}

// ListInRange returns every snapshot whose range lies within [start, end].
func (r *reportSnapshotRepository) ListInRange(start, end time.Time) ([]models.ReportSnapshot, error) {
	var snapshots []models.ReportSnapshot
	err := r.db.
		Where("range_start >= ? AND range_end <= ?", start, end).
		Order("range_start ASC").
		Find(&snapshots).Error
	return snapshots, err
}
