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

package repositories_test

import (
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/database/repositories"
	"github.com/l3montree-dev/casedesk/integrationtestutil"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func snapshot(clientID *int, start, end int, score int) models.ReportSnapshot {
	return models.ReportSnapshot{
		ClientID:   clientID,
		RangeStart: day(start),
		RangeEnd:   day(end),
		RiskScore:  score,
		RiskLevel:  "Medium",
		Report:     datatypes.JSON(`{"riskScore":42}`),
	}
}

func TestReportSnapshotRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a postgres container")
	}
	db, _, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repo := repositories.NewReportSnapshotRepository(db)

	all := []models.ReportSnapshot{
		snapshot(nil, 1, 1, 10),
		snapshot(nil, 2, 2, 20),
		snapshot(utils.Ptr(1), 1, 15, 30),
		snapshot(utils.Ptr(2), 10, 20, 40),
	}
	for i := range all {
		require.NoError(t, repo.Save(nil, &all[i]))
		assert.NotZero(t, all[i].ID)
	}

	t.Run("lists portfolio snapshots newest first", func(t *testing.T) {
		list, err := repo.ListByClient(nil, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 20, list[0].RiskScore)
		assert.Equal(t, 10, list[1].RiskScore)
	})

	t.Run("limits the result", func(t *testing.T) {
		list, err := repo.ListByClient(nil, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("filters by client", func(t *testing.T) {
		list, err := repo.ListByClient(utils.Ptr(2), 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 40, list[0].RiskScore)
	})

	t.Run("lists snapshots within a range", func(t *testing.T) {
		list, err := repo.ListInRange(day(1), day(15))
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("reads the stored report", func(t *testing.T) {
		read, err := repo.Read(all[2].ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"riskScore":42}`, string(read.Report))
		assert.Equal(t, day(15), read.RangeEnd.UTC())
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(nil, all[3].ID))
		_, err := repo.Read(all[3].ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("creates a batch within a transaction", func(t *testing.T) {
		batch := []models.ReportSnapshot{
			snapshot(utils.Ptr(3), 21, 21, 50),
			snapshot(utils.Ptr(3), 22, 22, 60),
		}
		require.NoError(t, repo.Transaction(func(tx *gorm.DB) error {
			return repo.CreateBatch(tx, batch)
		}))
		assert.NotZero(t, batch[0].ID)

		list, err := repo.ListByClient(utils.Ptr(3), 10)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("rolls the batch back on error", func(t *testing.T) {
		err := repo.Transaction(func(tx *gorm.DB) error {
			if err := repo.CreateBatch(tx, []models.ReportSnapshot{snapshot(utils.Ptr(4), 23, 23, 70)}); err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.Error(t, err)

		list, err := repo.ListByClient(utils.Ptr(4), 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
