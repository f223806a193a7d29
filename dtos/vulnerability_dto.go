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

type VulnerabilityRecord struct {
	ID            int      `json:"id,omitempty"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	CVSSScore     *float64 `json:"cvss_score"`
	CVSSVector    *string  `json:"cvss_vector"`
	CVEID         *string  `json:"cve_id"`
	Criticality   string   `json:"criticality"`
	Status        string   `json:"status"`
	DiscoveryDate *string  `json:"discovery_date"`
	ModifiedDate  *string  `json:"modified_date"`
	AssetID       *int     `json:"asset_id"`
	ClientID      *int     `json:"client_id"`
	Remediation   *string  `json:"remediation"`
	Scanner       *string  `json:"scanner"`
}

type VulnerabilityDTO struct {
	ID            int      `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	CVSS          *float64 `json:"cvss" validate:"omitempty,min=0,max=10"`
	CVSSVector    string   `json:"cvssVector"`
	CVE           string   `json:"cve"`
	Criticality   string   `json:"criticality" validate:"required,oneof=Critical High Medium Low"`
	Status        string   `json:"status" validate:"required"`
	DiscoveryDate string   `json:"discoveryDate" validate:"required"`
	ModifiedDate  string   `json:"modifiedDate"`
	AssetID       *int     `json:"assetId" validate:"required"`
	ClientID      *int     `json:"clientId" validate:"required"`
	Remediation   string   `json:"remediation"`
	Scanner       string   `json:"scanner"`
}
