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
	"strconv"
	"strings"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/labstack/echo/v4"
)

type TicketController struct {
	ticketService *services.TicketService
}

func NewTicketController(ticketService *services.TicketService) *TicketController {
	return &TicketController{ticketService: ticketService}
}

// FormOptions answers ?clientId=&selected=1,2 with the assignees,
// vulnerabilities and assets the ticket modal may offer.
func (c *TicketController) FormOptions(ctx shared.Context) error {
	clientID, err := shared.GetOptionalIntQuery(ctx, "clientId")
	if err != nil {
		return echo.NewHTTPError(400, "invalid clientId").WithInternal(err)
	}
	selected := make([]int, 0)
	if raw := ctx.QueryParam("selected"); raw != "" {
		for part := range strings.SplitSeq(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return echo.NewHTTPError(400, "selected must be a comma separated list of ids").WithInternal(err)
			}
			selected = append(selected, id)
		}
	}

	options, err := c.ticketService.FormOptions(ctx.Request().Context(), clientID, selected)
	if err != nil {
		return toHTTPError(err, "could not load ticket form options")
	}
	return ctx.JSON(200, options)
}

func (c *TicketController) Create(ctx shared.Context) error {
	var req dtos.TicketCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	ticket, err := c.ticketService.Create(ctx.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "could not create ticket")
	}
	return ctx.JSON(201, ticket)
}

func (c *TicketController) CreateMessage(ctx shared.Context) error {
	ticketID, err := shared.GetIntParam(ctx, "ticketID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid ticket id").WithInternal(err)
	}
	var req dtos.TicketMessageCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	msg, err := c.ticketService.AddMessage(ctx.Request().Context(), ticketID, req)
	if err != nil {
		return toHTTPError(err, "could not create ticket message")
	}
	return ctx.JSON(201, msg)
}
