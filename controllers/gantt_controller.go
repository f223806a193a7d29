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
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/labstack/echo/v4"
)

type GanttController struct {
	ganttService *services.GanttService
}

func NewGanttController(ganttService *services.GanttService) *GanttController {
	return &GanttController{ganttService: ganttService}
}

func projectID(ctx shared.Context) (int, error) {
	id, err := shared.GetIntParam(ctx, "projectID")
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}
	return id, nil
}

func (c *GanttController) Layout(ctx shared.Context) error {
	id, err := projectID(ctx)
	if err != nil {
		return err
	}
	layout, err := c.ganttService.ProjectLayout(ctx.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "could not build gantt chart")
	}
	return ctx.JSON(200, layout)
}

func (c *GanttController) CreateTask(ctx shared.Context) error {
	id, err := projectID(ctx)
	if err != nil {
		return err
	}
	var task dtos.GanttTaskDTO
	if err := ctx.Bind(&task); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	created, err := c.ganttService.CreateTask(ctx.Request().Context(), id, task)
	if err != nil {
		return toHTTPError(err, "could not create gantt task")
	}
	return ctx.JSON(201, created)
}
