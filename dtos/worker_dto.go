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

type WorkerRecord struct {
	ID        int     `json:"id,omitempty"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	ClientIDs []int   `json:"client_ids"`
	IsActive  *bool   `json:"is_active"`
}

type WorkerDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ClientIDs []int  `json:"clientIds"`
	Active    bool   `json:"active"`
}

// ReferenceItem is one entry of the backend's reference lists
// (asset types, scanners, industries, ...).
type ReferenceItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
