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

package reference

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge classes as the web app renders them.
const defaultBadge = "bg-gray-100 text-gray-800"

var CriticalityColors = map[string]string{
	"Critical": "bg-red-100 text-red-800",
	"High":     "bg-orange-100 text-orange-800",
	"Medium":   "bg-yellow-100 text-yellow-800",
	"Low":      "bg-green-100 text-green-800",
}

var VulnerabilityStatusColors = map[string]string{
	"Open":        "bg-red-100 text-red-800",
	"In Progress": "bg-blue-100 text-blue-800",
	"Closed":      "bg-green-100 text-green-800",
}

var TicketStatusColors = map[string]string{
	"Open":        "bg-red-100 text-red-800",
	"In Progress": "bg-blue-100 text-blue-800",
	"Pending":     "bg-yellow-100 text-yellow-800",
	"Resolved":    "bg-green-100 text-green-800",
	"Closed":      "bg-gray-100 text-gray-800",
}

var AssetStatusColors = map[string]string{
	"Active":         "bg-green-100 text-green-800",
	"Inactive":       "bg-gray-100 text-gray-800",
	"Maintenance":    "bg-yellow-100 text-yellow-800",
	"Decommissioned": "bg-red-100 text-red-800",
}

var ProjectStatusColors = map[string]string{
	"Planning":    "bg-purple-100 text-purple-800",
	"In Progress": "bg-blue-100 text-blue-800",
	"On Hold":     "bg-yellow-100 text-yellow-800",
	"Completed":   "bg-green-100 text-green-800",
	"Cancelled":   "bg-gray-100 text-gray-800",
}

// criticality rank, lower is more severe
var criticalityOrder = map[string]int{
	"Critical": 0,
	"High":     1,
	"Medium":   2,
	"Low":      3,
}

var titleCaser = cases.Title(language.English)

// Label normalizes free-form enum values such as "in progress" or
// "IN_PROGRESS" to the display form "In Progress".
func Label(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	return titleCaser.String(strings.ToLower(s))
}

// Color looks up the badge class for value, tolerating casing differences.
func Color(colors map[string]string, value string) string {
	if c, ok := colors[value]; ok {
		return c
	}
	if c, ok := colors[Label(value)]; ok {
		return c
	}
	return defaultBadge
}

// CriticalityRank orders criticalities from Critical (0) to Low (3).
// Unknown values sort last.
func CriticalityRank(criticality string) int {
	if r, ok := criticalityOrder[Label(criticality)]; ok {
		return r
	}
	return len(criticalityOrder)
}

// Catalog is the static reference data served to the web app.
type Catalog struct {
	Criticalities       []string          `json:"criticalities"`
	CriticalityColors   map[string]string `json:"criticalityColors"`
	VulnerabilityStatus map[string]string `json:"vulnerabilityStatusColors"`
	TicketStatus        map[string]string `json:"ticketStatusColors"`
	AssetStatus         map[string]string `json:"assetStatusColors"`
	ProjectStatus       map[string]string `json:"projectStatusColors"`
	ClientCodes         map[string]string `json:"clientCodes"`
}

func NewCatalog() Catalog {
	return Catalog{
		Criticalities:       []string{"Critical", "High", "Medium", "Low"},
		CriticalityColors:   CriticalityColors,
		VulnerabilityStatus: VulnerabilityStatusColors,
		TicketStatus:        TicketStatusColors,
		AssetStatus:         AssetStatusColors,
		ProjectStatus:       ProjectStatusColors,
		ClientCodes:         ClientCodes,
	}
}
