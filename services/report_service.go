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
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/monitoring"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/transformer"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// DefaultReportDays is the range of a report request without dates.
const DefaultReportDays = 30

// MaxReportDays bounds every report and backfill range. Reports hold one
// bucket per day.
const MaxReportDays = 731

var ErrSnapshotsDisabled = errors.New("report snapshots need a database")

type ReportService struct {
	loader    *PageLoader
	snapshots shared.ReportSnapshotRepository
	now       func() time.Time
}

// NewReportService creates the service. Without a snapshot repository
// only on-the-fly reports are available.
func NewReportService(loader *PageLoader, snapshots shared.ReportSnapshotRepository) *ReportService {
	return &ReportService{
		loader:    loader,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// RangeOrDefault parses start and end. Both empty means the last
// DefaultReportDays days. Ranges longer than MaxReportDays are rejected.
func (s *ReportService) RangeOrDefault(start, end string) (reporting.DateRange, error) {
	if start == "" && end == "" {
		return reporting.LastNDays(DefaultReportDays, s.now()), nil
	}
	r, err := reporting.ParseDateRange(start, end)
	if err != nil || r.Len() > MaxReportDays {
		return reporting.DateRange{}, &FormError{Fields: []string{"start", "end"}}
	}
	return r, nil
}

func scope(clientID *int) string {
	if clientID == nil {
		return "all"
	}
	return strconv.Itoa(*clientID)
}

// Generate loads the report collections and aggregates them.
func (s *ReportService) Generate(ctx context.Context, r reporting.DateRange, clientID *int) (reporting.Report, error) {
	start := time.Now()
	page, err := s.loader.LoadReportsPage(ctx)
	if err != nil {
		return reporting.Report{}, err
	}
	report := generate(page, r, clientID, s.now())

	monitoring.ReportGeneratedAmount.Inc()
	monitoring.ReportGenerationDuration.Observe(time.Since(start).Seconds())
	monitoring.ReportRiskScore.WithLabelValues(scope(clientID)).Set(float64(report.RiskScore))
	return report, nil
}

func generate(page ReportsPage, r reporting.DateRange, clientID *int, now time.Time) reporting.Report {
	return reporting.Generate(reporting.Input{
		Vulnerabilities: page.Vulnerabilities,
		Tickets:         page.Tickets,
		Assets:          page.Assets,
		Clients:         page.Clients,
		Range:           r,
		ClientID:        clientID,
		Now:             now,
	})
}

func snapshotOf(report reporting.Report, r reporting.DateRange) (models.ReportSnapshot, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return models.ReportSnapshot{}, errors.Wrap(err, "could not encode report")
	}
	return models.ReportSnapshot{
		ClientID:      report.ClientID,
		RangeStart:    r.Start,
		RangeEnd:      r.End,
		RiskScore:     report.RiskScore,
		RiskLevel:     report.RiskLevel,
		TotalVulns:    report.Summary.TotalVulns,
		OpenVulns:     report.Summary.OpenVulns,
		CriticalVulns: report.Summary.CriticalVulns,
		HighVulns:     report.Summary.HighVulns,
		Report:        datatypes.JSON(raw),
	}, nil
}

// CreateSnapshot generates the report and persists it.
func (s *ReportService) CreateSnapshot(ctx context.Context, req dtos.ReportSnapshotCreateRequest) (dtos.ReportSnapshotDTO, error) {
	if s.snapshots == nil {
		return dtos.ReportSnapshotDTO{}, ErrSnapshotsDisabled
	}
	if err := ValidateForm(req); err != nil {
		return dtos.ReportSnapshotDTO{}, err
	}
	r, err := s.RangeOrDefault(req.Start, req.End)
	if err != nil {
		return dtos.ReportSnapshotDTO{}, err
	}

	report, err := s.Generate(ctx, r, req.ClientID)
	if err != nil {
		return dtos.ReportSnapshotDTO{}, err
	}
	snapshot, err := snapshotOf(report, r)
	if err != nil {
		return dtos.ReportSnapshotDTO{}, err
	}
	if err := s.snapshots.Save(nil, &snapshot); err != nil {
		return dtos.ReportSnapshotDTO{}, errors.Wrap(err, "could not save report snapshot")
	}
	monitoring.ReportSnapshotSavedAmount.Inc()
	return transformer.ReportSnapshotToDTO(snapshot, true), nil
}

func (s *ReportService) ListSnapshots(clientID *int, limit int) ([]dtos.ReportSnapshotDTO, error) {
	if s.snapshots == nil {
		return nil, ErrSnapshotsDisabled
	}
	snapshots, err := s.snapshots.ListByClient(clientID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "could not list report snapshots")
	}
	return utils.Map(snapshots, func(s models.ReportSnapshot) dtos.ReportSnapshotDTO {
		return transformer.ReportSnapshotToDTO(s, false)
	}), nil
}

// ListSnapshotsInRange returns the snapshots whose range lies within start
// and end, oldest first.
func (s *ReportService) ListSnapshotsInRange(start, end string) ([]dtos.ReportSnapshotDTO, error) {
	if s.snapshots == nil {
		return nil, ErrSnapshotsDisabled
	}
	r, err := reporting.ParseDateRange(start, end)
	if err != nil {
		return nil, &FormError{Fields: []string{"start", "end"}}
	}
	snapshots, err := s.snapshots.ListInRange(r.Start, r.End)
	if err != nil {
		return nil, errors.Wrap(err, "could not list report snapshots")
	}
	return utils.Map(snapshots, func(s models.ReportSnapshot) dtos.ReportSnapshotDTO {
		return transformer.ReportSnapshotToDTO(s, false)
	}), nil
}

func (s *ReportService) ReadSnapshot(id uuid.UUID) (dtos.ReportSnapshotDTO, error) {
	if s.snapshots == nil {
		return dtos.ReportSnapshotDTO{}, ErrSnapshotsDisabled
	}
	snapshot, err := s.snapshots.Read(id)
	if err != nil {
		return dtos.ReportSnapshotDTO{}, err
	}
	return transformer.ReportSnapshotToDTO(snapshot, true), nil
}

func (s *ReportService) DeleteSnapshot(id uuid.UUID) error {
	if s.snapshots == nil {
		return ErrSnapshotsDisabled
	}
	return s.snapshots.Delete(nil, id)
}

// Backfill stores one single-day snapshot for each of the last days days,
// oldest first. The collections are loaded once and the snapshots are
// written in one transaction, so a failed backfill stores nothing. progress
// is called after every generated snapshot and may be nil.
func (s *ReportService) Backfill(ctx context.Context, days int, clientID *int, progress func()) (int, error) {
	if s.snapshots == nil {
		return 0, ErrSnapshotsDisabled
	}
	if days < 1 || days > MaxReportDays {
		return 0, &FormError{Fields: []string{"days"}}
	}
	page, err := s.loader.LoadReportsPage(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	snapshots := make([]models.ReportSnapshot, 0, days)
	for _, day := range reporting.LastNDays(days, now).Days() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		r := reporting.DateRange{Start: day, End: day}
		snapshot, err := snapshotOf(generate(page, r, clientID, now), r)
		if err != nil {
			return 0, err
		}
		snapshots = append(snapshots, snapshot)
		if progress != nil {
			progress()
		}
	}

	err = s.snapshots.Transaction(func(tx shared.DB) error {
		return s.snapshots.CreateBatch(tx, snapshots)
	})
	if err != nil {
		return 0, errors.Wrap(err, "could not store backfilled snapshots")
	}
	monitoring.ReportSnapshotSavedAmount.Add(float64(len(snapshots)))
	return len(snapshots), nil
}
