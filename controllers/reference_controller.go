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
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/shared"
	"golang.org/x/sync/errgroup"
)

type ReferenceResponse struct {
	reference.Catalog
	Lists map[string][]dtos.ReferenceItem `json:"lists"`
}

type ReferenceController struct {
	referenceAPI shared.ReferenceAPI
}

func NewReferenceController(referenceAPI shared.ReferenceAPI) *ReferenceController {
	return &ReferenceController{referenceAPI: referenceAPI}
}

// Read returns the static catalog together with the upstream reference
// lists (asset types, scanners, industries, os types).
func (c *ReferenceController) Read(ctx shared.Context) error {
	lists := make([][]dtos.ReferenceItem, len(casedesk.ReferenceKinds))
	g, gctx := errgroup.WithContext(ctx.Request().Context())
	for i, kind := range casedesk.ReferenceKinds {
		g.Go(func() error {
			items, err := c.referenceAPI.ListReference(gctx, kind)
			if err != nil {
				return err
			}
			lists[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return toHTTPError(err, "could not load reference data")
	}

	resp := ReferenceResponse{
		Catalog: reference.NewCatalog(),
		Lists:   make(map[string][]dtos.ReferenceItem, len(lists)),
	}
	for i, kind := range casedesk.ReferenceKinds {
		resp.Lists[kind] = lists[i]
	}
	return ctx.JSON(200, resp)
}
