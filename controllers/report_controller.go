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

package controllers

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const defaultSnapshotLimit = 50

type ReportController struct {
	reportService *services.ReportService
}

func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Summary generates the report for ?start=&end=&clientId=. Without dates the
// last 30 days are used.
func (c *ReportController) Summary(ctx shared.Context) error {
	clientID, err := shared.GetOptionalIntQuery(ctx, "clientId")
	if err != nil {
		return echo.NewHTTPError(400, "invalid clientId").WithInternal(err)
	}
	r, err := c.reportService.RangeOrDefault(ctx.QueryParam("start"), ctx.QueryParam("end"))
	if err != nil {
		return toHTTPError(err, "invalid date range")
	}

	report, err := c.reportService.Generate(ctx.Request().Context(), r, clientID)
	if err != nil {
		return toHTTPError(err, "could not generate report")
	}
	return ctx.JSON(200, report)
}

func (c *ReportController) CreateSnapshot(ctx shared.Context) error {
	var req dtos.ReportSnapshotCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	snapshot, err := c.reportService.CreateSnapshot(ctx.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "could not create report snapshot")
	}
	return ctx.JSON(201, snapshot)
}

// ListSnapshots lists the newest snapshots of ?clientId=, or with ?start=&end=
// every snapshot within that range.
func (c *ReportController) ListSnapshots(ctx shared.Context) error {
	if start, end := ctx.QueryParam("start"), ctx.QueryParam("end"); start != "" || end != "" {
		snapshots, err := c.reportService.ListSnapshotsInRange(start, end)
		if err != nil {
			return toHTTPError(err, "could not list report snapshots")
		}
		return ctx.JSON(200, snapshots)
	}

	clientID, err := shared.GetOptionalIntQuery(ctx, "clientId")
	if err != nil {
		return echo.NewHTTPError(400, "invalid clientId").WithInternal(err)
	}
	limit := defaultSnapshotLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(400, "limit must be a positive number")
		}
	}

	snapshots, err := c.reportService.ListSnapshots(clientID, limit)
	if err != nil {
		return toHTTPError(err, "could not list report snapshots")
	}
	return ctx.JSON(200, snapshots)
}

func snapshotID(ctx shared.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(shared.GetParam(ctx, "id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid snapshot id").WithInternal(err)
	}
	return id, nil
}

func (c *ReportController) ReadSnapshot(ctx shared.Context) error {
	id, err := snapshotID(ctx)
	if err != nil {
		return err
	}
	snapshot, err := c.reportService.ReadSnapshot(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "could not find report snapshot").WithInternal(err)
		}
		return toHTTPError(err, "could not read report snapshot")
	}
	return ctx.JSON(200, snapshot)
}

func (c *ReportController) DeleteSnapshot(ctx shared.Context) error {
	id, err := snapshotID(ctx)
	if err != nil {
		return err
	}
	if err := c.reportService.DeleteSnapshot(id); err != nil {
		return toHTTPError(err, "could not delete report snapshot")
	}
	return ctx.NoContent(200)
}
