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

type AssetRecord struct {
	ID              int     `json:"id,omitempty"`
	Name            string  `json:"name"`
	AssetType       string  `json:"asset_type"`
	IPAddress       *string `json:"ip_address"`
	OperatingSystem *string `json:"operating_system"`
	Status          string  `json:"status"`
	Criticality     string  `json:"criticality"`
	ClientID        *int    `json:"client_id"`
	Location        *string `json:"location"`
	Owner           *string `json:"owner"`
	Description     *string `json:"description"`
	LastScan        *string `json:"last_scan"`
}

type AssetDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	IP          string `json:"ip" validate:"omitempty,ip"`
	OS          string `json:"os"`
	Status      string `json:"status" validate:"required"`
	Criticality string `json:"criticality" validate:"required,oneof=Critical High Medium Low"`
	ClientID    *int   `json:"clientId" validate:"required"`
	Location    string `json:"location"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
	LastScan    string `json:"lastScan"`
}
