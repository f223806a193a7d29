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

func VulnerabilitiesToView(records []dtos.VulnerabilityRecord) []dtos.VulnerabilityDTO {
	return utils.Map(records, VulnerabilityToView)
}

func VulnerabilityToView(r dtos.VulnerabilityRecord) dtos.VulnerabilityDTO {
	cvss := r.CVSSScore
	if cvss == nil && r.CVSSVector != nil {
		// older scanner imports only carry the vector
		if score, ok := BaseScoreFromVector(*r.CVSSVector); ok {
			cvss = &score
		}
	}

	return dtos.VulnerabilityDTO{
		ID:            r.ID,
		Title:         r.Title,
		Description:   utils.SafeDereference(r.Description),
		CVSS:          cvss,
		CVSSVector:    utils.SafeDereference(r.CVSSVector),
		CVE:           utils.SafeDereference(r.CVEID),
		Criticality:   r.Criticality,
		Status:        r.Status,
		DiscoveryDate: utils.DateOnly(utils.SafeDereference(r.DiscoveryDate)),
		ModifiedDate:  utils.DateOnly(utils.SafeDereference(r.ModifiedDate)),
		AssetID:       r.AssetID,
		ClientID:      r.ClientID,
		Remediation:   utils.SafeDereference(r.Remediation),
		Scanner:       utils.SafeDereference(r.Scanner),
	}
}

func VulnerabilityToBackend(v dtos.VulnerabilityDTO) dtos.VulnerabilityRecord {
	return dtos.VulnerabilityRecord{
		ID:            v.ID,
		Title:         v.Title,
		Description:   utils.EmptyThenNil(v.Description),
		CVSSScore:     v.CVSS,
		CVSSVector:    utils.EmptyThenNil(v.CVSSVector),
		CVEID:         utils.EmptyThenNil(v.CVE),
		Criticality:   v.Criticality,
		Status:        v.Status,
		DiscoveryDate: utils.EmptyThenNil(v.DiscoveryDate),
		ModifiedDate:  utils.EmptyThenNil(v.ModifiedDate),
		AssetID:       v.AssetID,
		ClientID:      v.ClientID,
		Remediation:   utils.EmptyThenNil(v.Remediation),
		Scanner:       utils.EmptyThenNil(v.Scanner),
	}
}
