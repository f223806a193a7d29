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

package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReportSnapshot is a persisted report over a fixed range.
// Report holds the full reporting.Report as generated.
type ReportSnapshot struct {
	Model
	ClientID      *int           `json:"clientId" gorm:"index"`
	RangeStart    time.Time      `json:"rangeStart" gorm:"type:date;not null"`
	RangeEnd      time.Time      `json:"rangeEnd" gorm:"type:date;not null"`
	RiskScore     int            `json:"riskScore" gorm:"not null;default:0"`
	RiskLevel     string         `json:"riskLevel" gorm:"type:text;not null"`
	TotalVulns    int            `json:"totalVulns" gorm:"not null;default:0"`
	OpenVulns     int            `json:"openVulns" gorm:"not null;default:0"`
	CriticalVulns int            `json:"criticalVulns" gorm:"not null;default:0"`
	HighVulns     int            `json:"highVulns" gorm:"not null;default:0"`
	Report        datatypes.JSON `json:"report" gorm:"type:jsonb"`
}

func (ReportSnapshot) TableName() string {
	return "report_snapshots"
}
