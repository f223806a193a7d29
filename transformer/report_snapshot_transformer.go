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
	"encoding/json"
	"time"

	"github.com/l3montree-dev/casedesk/database/models"
	"github.com/l3montree-dev/casedesk/dtos"
)

// ReportSnapshotToDTO leaves out the stored report unless withReport is set.
func ReportSnapshotToDTO(s models.ReportSnapshot, withReport bool) dtos.ReportSnapshotDTO {
	dto := dtos.ReportSnapshotDTO{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		ClientID:      s.ClientID,
		Start:         s.RangeStart.Format(time.DateOnly),
		End:           s.RangeEnd.Format(time.DateOnly),
		RiskScore:     s.RiskScore,
		RiskLevel:     s.RiskLevel,
		TotalVulns:    s.TotalVulns,
		OpenVulns:     s.OpenVulns,
		CriticalVulns: s.CriticalVulns,
		HighVulns:     s.HighVulns,
	}
	if withReport && len(s.Report) > 0 {
		dto.Report = json.RawMessage(s.Report)
	}
	return dto
}
