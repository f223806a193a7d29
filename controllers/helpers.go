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
	"net/http"

	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service and upstream errors to the status the caller
// should see. Unknown errors become a 500.
func toHTTPError(err error, msg string) error {
	var formErr *services.FormError
	var apiErr *casedesk.APIError
	switch {
	case errors.As(err, &formErr):
		return echo.NewHTTPError(http.StatusBadRequest, formErr.Error()).WithInternal(err)
	case errors.Is(err, services.ErrNoVulnerabilities),
		errors.Is(err, services.ErrTaskOutsideProject),
		errors.Is(err, services.ErrTaskEndBeforeStart),
		errors.Is(err, services.ErrInvalidProjectRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.Is(err, services.ErrProjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "could not find project").WithInternal(err)
	case errors.Is(err, services.ErrSnapshotsDisabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error()).WithInternal(err)
	case errors.As(err, &apiErr):
		return echo.NewHTTPError(apiErr.Status, apiErr.Message).WithInternal(err)
	case errors.Is(err, services.ErrLoadFailed):
		return echo.NewHTTPError(http.StatusBadGateway, msg).WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
}
