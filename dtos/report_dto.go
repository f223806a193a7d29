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

package dtos

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ReportSnapshotCreateRequest struct {
	Start    string `json:"start" validate:"required,datetime=2006-01-02"`
	End      string `json:"end" validate:"required,datetime=2006-01-02"`
	ClientID *int   `json:"clientId"`
}

type ReportSnapshotDTO struct {
	ID            uuid.UUID       `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	ClientID      *int            `json:"clientId"`
	Start         string          `json:"start"`
	End           string          `json:"end"`
	RiskScore     int             `json:"riskScore"`
	RiskLevel     string          `json:"riskLevel"`
	TotalVulns    int             `json:"totalVulns"`
	OpenVulns     int             `json:"openVulns"`
	CriticalVulns int             `json:"criticalVulns"`
	HighVulns     int             `json:"highVulns"`
	Report        json.RawMessage `json:"report,omitempty"`
}
