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

func WorkersToView(records []dtos.WorkerRecord) []dtos.WorkerDTO {
	return utils.Map(records, WorkerToView)
}

// WorkerToView treats a missing activity flag as active.
func WorkerToView(r dtos.WorkerRecord) dtos.WorkerDTO {
	clientIDs := r.ClientIDs
	if clientIDs == nil {
		clientIDs = []int{}
	}
	return dtos.WorkerDTO{
		ID:        r.ID,
		Name:      r.Name,
		Email:     utils.SafeDereference(r.Email),
		Role:      utils.SafeDereference(r.Role),
		ClientIDs: clientIDs,
		Active:    utils.OrDefault(r.IsActive, true),
	}
}

func WorkerToBackend(w dtos.WorkerDTO) dtos.WorkerRecord {
	return dtos.WorkerRecord{
		ID:        w.ID,
		Name:      w.Name,
		Email:     utils.EmptyThenNil(w.Email),
		Role:      utils.EmptyThenNil(w.Role),
		ClientIDs: w.ClientIDs,
		IsActive:  utils.Ptr(w.Active),
	}
}
