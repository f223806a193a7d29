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
	"github.com/l3montree-dev/casedesk/services"
	"github.com/l3montree-dev/casedesk/shared"
)

type DashboardController struct {
	loader *services.PageLoader
}

func NewDashboardController(loader *services.PageLoader) *DashboardController {
	return &DashboardController{loader: loader}
}

func (c *DashboardController) Read(ctx shared.Context) error {
	dashboard, err := c.loader.LoadDashboard(ctx.Request().Context())
	if err != nil {
		return toHTTPError(err, "could not load dashboard")
	}
	return ctx.JSON(200, dashboard)
}
