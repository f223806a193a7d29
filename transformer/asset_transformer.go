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

package transformer

import (
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

func AssetsToView(records []dtos.AssetRecord) []dtos.AssetDTO {
	return utils.Map(records, AssetToView)
}

func AssetToView(r dtos.AssetRecord) dtos.AssetDTO {
	return dtos.AssetDTO{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.AssetType,
		IP:          utils.SafeDereference(r.IPAddress),
		OS:          utils.SafeDereference(r.OperatingSystem),
		Status:      r.Status,
		Criticality: r.Criticality,
		ClientID:    r.ClientID,
		Location:    utils.SafeDereference(r.Location),
		Owner:       utils.SafeDereference(r.Owner),
		Description: utils.SafeDereference(r.Description),
		LastScan:    utils.DateOnly(utils.SafeDereference(r.LastScan)),
	}
}

func AssetToBackend(a dtos.AssetDTO) dtos.AssetRecord {
	return dtos.AssetRecord{
		ID:              a.ID,
		Name:            a.Name,
		AssetType:       a.Type,
		IPAddress:       utils.EmptyThenNil(a.IP),
		OperatingSystem: utils.EmptyThenNil(a.OS),
		Status:          a.Status,
		Criticality:     a.Criticality,
		ClientID:        a.ClientID,
		Location:        utils.EmptyThenNil(a.Location),
		Owner:           utils.EmptyThenNil(a.Owner),
		Description:     utils.EmptyThenNil(a.Description),
		LastScan:        utils.EmptyThenNil(a.LastScan),
	}
}
