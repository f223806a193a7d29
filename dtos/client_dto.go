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

// ContactRecord is a single contact entry as the backend stores it.
type ContactRecord struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"is_primary"`
}

type ClientRecord struct {
	ID            int             `json:"id,omitempty"`
	Name          string          `json:"name"`
	ShortCode     string          `json:"short_code"`
	Industry      *string         `json:"industry"`
	Contacts      []ContactRecord `json:"contacts"`
	ContractType  *string         `json:"contract_type"`
	ContractStart *string         `json:"contract_start"`
	ContractEnd   *string         `json:"contract_end"`
	SLALevel      *string         `json:"sla_level"`
	Notes         *string         `json:"notes"`

	// infrastructure flags
	HasFirewall   *bool   `json:"has_firewall"`
	HasSIEM       *bool   `json:"has_siem"`
	HasEDR        *bool   `json:"has_edr"`
	HasBackup     *bool   `json:"has_backup"`
	CloudProvider *string `json:"cloud_provider"`

	CreatedAt *string `json:"created_at,omitempty"`
}

type ContactDTO struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ClientDTO is the flattened view model of a client. The primary contact lives
// in the Contact* fields, every other contact in AdditionalContacts.
type ClientDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name" validate:"required"`
	ShortCode string `json:"shortCode" validate:"required,max=10"`
	Industry  string `json:"industry"`

	ContactName        string       `json:"contactName" validate:"required"`
	ContactRole        string       `json:"contactRole"`
	ContactPhone       string       `json:"contactPhone"`
	ContactEmail       string       `json:"contactEmail" validate:"required,email"`
	AdditionalContacts []ContactDTO `json:"additionalContacts" validate:"dive"`

	ContractType  string `json:"contractType"`
	ContractStart string `json:"contractStart"`
	ContractEnd   string `json:"contractEnd"`
	SLALevel      string `json:"slaLevel"`
	Notes         string `json:"notes"`

	HasFirewall   bool   `json:"hasFirewall"`
	HasSIEM       bool   `json:"hasSiem"`
	HasEDR        bool   `json:"hasEdr"`
	HasBackup     bool   `json:"hasBackup"`
	CloudProvider string `json:"cloudProvider"`

	CreatedAt string `json:"createdAt"`
}
