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

package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestServer(t *testing.T) {
	e := Server()
	e.GET("/api/v1/ok/", func(ctx echo.Context) error {
		return ctx.String(200, "ok")
	})
	e.GET("/api/v1/upstream/", func(ctx echo.Context) error {
		return echo.NewHTTPError(422, "Validation failed: title: field required").WithInternal(errors.New("boom"))
	})
	e.GET("/api/v1/plain/", func(ctx echo.Context) error {
		return errors.New("database is on fire")
	})
	e.GET("/api/v1/panic/", func(ctx echo.Context) error {
		panic("nil map")
	})

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("adds the trailing slash", func(t *testing.T) {
		rec := serve("/api/v1/ok")
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("keeps the status of http errors", func(t *testing.T) {
		rec := serve("/api/v1/upstream/")
		assert.Equal(t, 422, rec.Code)
		assert.JSONEq(t, `{"message":"Validation failed: title: field required"}`, rec.Body.String())
	})

	t.Run("hides internal errors", func(t *testing.T) {
		rec := serve("/api/v1/plain/")
		assert.Equal(t, 500, rec.Code)
		assert.NotContains(t, rec.Body.String(), "fire")
	})

	t.Run("recovers from panics", func(t *testing.T) {
		rec := serve("/api/v1/panic/")
		assert.Equal(t, 500, rec.Code)
	})
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://soc.example, ,https://ops.example")
	assert.Equal(t, []string{"https://soc.example", "https://ops.example"}, allowedOrigins())
}
