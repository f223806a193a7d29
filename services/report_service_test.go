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
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/mocks"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestReportService(t *testing.T) (*ReportService, *mocks.ReportSnapshotRepository) {
	st, _ := newDemoStore()
	repo := mocks.NewReportSnapshotRepository(t)
	s := NewReportService(NewPageLoader(st), repo)
	s.now = func() time.Time { return testNow }
	return s, repo
}

func TestReportServiceGenerate(t *testing.T) {
	s, _ := newTestReportService(t)
	ctx := context.Background()

	t.Run("defaults to the last 30 days", func(t *testing.T) {
		r, err := s.RangeOrDefault("", "")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-15..2024-03-15", r.String())
	})

	t.Run("rejects half given or reversed ranges", func(t *testing.T) {
		_, err := s.RangeOrDefault("2024-01-01", "")
		var formErr *FormError
		assert.ErrorAs(t, err, &formErr)
		_, err = s.RangeOrDefault("2024-02-01", "2024-01-01")
		assert.ErrorAs(t, err, &formErr)
	})

	t.Run("rejects ranges longer than the maximum", func(t *testing.T) {
		_, err := s.RangeOrDefault("0001-01-01", "9999-12-31")
		var formErr *FormError
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, []string{"start", "end"}, formErr.Fields)

		r, err := s.RangeOrDefault("2023-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Equal(t, MaxReportDays, r.Len())
		_, err = s.RangeOrDefault("2023-01-01", "2025-01-01")
		assert.ErrorAs(t, err, &formErr)
	})

	t.Run("aggregates the demo data", func(t *testing.T) {
		r := reporting.LastNDays(30, testNow)
		report, err := s.Generate(ctx, r, nil)
		require.NoError(t, err)

		// the 40 and 100 day old findings fall outside of the range
		assert.Equal(t, 7, report.Summary.TotalVulns)
		assert.Len(t, report.Daily, 30)
		assert.GreaterOrEqual(t, report.RiskScore, 0)
		assert.LessOrEqual(t, report.RiskScore, 100)
		assert.Equal(t, reporting.RiskLevel(report.RiskScore), report.RiskLevel)
	})

	t.Run("scopes to one client", func(t *testing.T) {
		report, err := s.Generate(ctx, reporting.LastNDays(30, testNow), utils.Ptr(2))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Summary.TotalVulns)
	})
}

func TestReportServiceSnapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the generated report", func(t *testing.T) {
		s, repo := newTestReportService(t)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(snap *models.ReportSnapshot) bool {
			var report reporting.Report
			if err := json.Unmarshal(snap.Report, &report); err != nil {
				return false
			}
			return snap.ClientID != nil && *snap.ClientID == 1 &&
				snap.RiskScore == report.RiskScore &&
				snap.RangeStart.Format("2006-01-02") == "2024-03-01"
		})).Return(nil)

		dto, err := s.CreateSnapshot(ctx, dtos.ReportSnapshotCreateRequest{Start: "2024-03-01", End: "2024-03-15", ClientID: utils.Ptr(1)})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", dto.Start)
		assert.Equal(t, "2024-03-15", dto.End)
		assert.NotEmpty(t, dto.Report)
	})

	t.Run("validates the request before generating", func(t *testing.T) {
		s, _ := newTestReportService(t)
		_, err := s.CreateSnapshot(ctx, dtos.ReportSnapshotCreateRequest{Start: "01.03.2024", End: "2024-03-15"})
		var formErr *FormError
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, []string{"start"}, formErr.Fields)
	})

	t.Run("lists snapshots without their report", func(t *testing.T) {
		s, repo := newTestReportService(t)
		id := uuid.New()
		repo.On("ListByClient", (*int)(nil), 10).Return([]models.ReportSnapshot{
			{Model: models.Model{ID: id}, RiskScore: 42, RiskLevel: "Medium", Report: []byte(`{"riskScore":42}`)},
		}, nil)

		list, err := s.ListSnapshots(nil, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0].ID)
		assert.Nil(t, list[0].Report)
	})

	t.Run("backfills one snapshot per day in one transaction", func(t *testing.T) {
		s, repo := newTestReportService(t)
		repo.On("Transaction", mock.Anything).Return(func(f func(*gorm.DB) error) error {
			return f(nil)
		}).Once()
		repo.On("CreateBatch", (*gorm.DB)(nil), mock.MatchedBy(func(snaps []models.ReportSnapshot) bool {
			if len(snaps) != 7 {
				return false
			}
			for _, snap := range snaps {
				if !snap.RangeStart.Equal(snap.RangeEnd) {
					return false
				}
			}
			return snaps[0].RangeStart.Before(snaps[6].RangeStart)
		})).Return(nil).Once()

		progress := 0
		saved, err := s.Backfill(ctx, 7, nil, func() { progress++ })
		require.NoError(t, err)
		assert.Equal(t, 7, saved)
		assert.Equal(t, 7, progress)
	})

	t.Run("stores nothing when the batch fails", func(t *testing.T) {
		s, repo := newTestReportService(t)
		repo.On("Transaction", mock.Anything).Return(func(f func(*gorm.DB) error) error {
			return f(nil)
		})
		repo.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		saved, err := s.Backfill(ctx, 3, nil, nil)
		assert.ErrorContains(t, err, "connection reset")
		assert.Equal(t, 0, saved)
	})

	t.Run("rejects backfills beyond the maximum range", func(t *testing.T) {
		s, _ := newTestReportService(t)
		for _, days := range []int{0, MaxReportDays + 1} {
			_, err := s.Backfill(ctx, days, nil, nil)
			var formErr *FormError
			require.ErrorAs(t, err, &formErr)
			assert.Equal(t, []string{"days"}, formErr.Fields)
		}
	})

	t.Run("lists snapshots within a range", func(t *testing.T) {
		s, repo := newTestReportService(t)
		start, _ := reporting.ParseDate("2024-03-01")
		end, _ := reporting.ParseDate("2024-03-15")
		repo.On("ListInRange", start, end).Return([]models.ReportSnapshot{
			{Model: models.Model{ID: uuid.New()}, RangeStart: start, RangeEnd: start},
		}, nil)

		list, err := s.ListSnapshotsInRange("2024-03-01", "2024-03-15")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "2024-03-01", list[0].Start)

		_, err = s.ListSnapshotsInRange("2024-03-15", "2024-03-01")
		var formErr *FormError
		assert.ErrorAs(t, err, &formErr)
	})

	t.Run("reports missing persistence", func(t *testing.T) {
		st, _ := newDemoStore()
		s := NewReportService(NewPageLoader(st), nil)
		_, err := s.ListSnapshots(nil, 10)
		assert.ErrorIs(t, err, ErrSnapshotsDisabled)
	})
}
