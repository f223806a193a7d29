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

package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/utils"
	"golang.org/x/text/cases"
)

// FilterAll is the dropdown value which disables a filter.
const FilterAll = "all"

// Filter is the derived view state of a list page. Empty fields and
// FilterAll match everything.
type Filter struct {
	Search      string
	Status      string
	Criticality string
	Priority    string
	Type        string
	ClientID    *int
}

func matchesOption(want, got string) bool {
	if want == "" || strings.EqualFold(want, FilterAll) {
		return true
	}
	return strings.EqualFold(want, got)
}

// matchesSearch reports whether any field contains term, ignoring case
// and Unicode case variants.
func matchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

func matchesClient(clientID *int, owner *int) bool {
	if clientID == nil {
		return true
	}
	return owner != nil && *owner == *clientID
}

func FilterVulnerabilities(vulns []dtos.VulnerabilityDTO, f Filter) []dtos.VulnerabilityDTO {
	return utils.Filter(vulns, func(v dtos.VulnerabilityDTO) bool {
		return matchesClient(f.ClientID, v.ClientID) &&
			matchesOption(f.Status, v.Status) &&
			matchesOption(f.Criticality, v.Criticality) &&
			matchesSearch(f.Search, v.Title, v.CVE, v.Description, v.Scanner)
	})
}

func FilterAssets(assets []dtos.AssetDTO, f Filter) []dtos.AssetDTO {
	return utils.Filter(assets, func(a dtos.AssetDTO) bool {
		return matchesClient(f.ClientID, a.ClientID) &&
			matchesOption(f.Status, a.Status) &&
			matchesOption(f.Criticality, a.Criticality) &&
			matchesOption(f.Type, a.Type) &&
			matchesSearch(f.Search, a.Name, a.IP, a.OS, a.Type, a.Owner, a.Location)
	})
}

func FilterTickets(tickets []dtos.TicketDTO, f Filter) []dtos.TicketDTO {
	return utils.Filter(tickets, func(t dtos.TicketDTO) bool {
		return matchesClient(f.ClientID, t.ClientID) &&
			matchesOption(f.Status, t.Status) &&
			matchesOption(f.Priority, t.Priority) &&
			matchesSearch(f.Search, t.Title, t.Description)
	})
}

func FilterClients(clients []dtos.ClientDTO, f Filter) []dtos.ClientDTO {
	return utils.Filter(clients, func(c dtos.ClientDTO) bool {
		return (f.ClientID == nil || c.ID == *f.ClientID) &&
			matchesOption(f.Type, c.ContractType) &&
			matchesSearch(f.Search, c.Name, c.ShortCode, c.Industry, c.ContactName, c.ContactEmail)
	})
}

func FilterProjects(projects []dtos.ProjectDTO, f Filter) []dtos.ProjectDTO {
	return utils.Filter(projects, func(p dtos.ProjectDTO) bool {
		return (f.ClientID == nil || p.ClientID == *f.ClientID) &&
			matchesOption(f.Status, p.Status) &&
			matchesOption(f.Priority, p.Priority) &&
			matchesOption(f.Type, p.Type) &&
			matchesSearch(f.Search, p.Name, p.Description)
	})
}

// SortVulnerabilities orders by criticality, most severe first, then by
// discovery date, newest first. Undated records go last.
func SortVulnerabilities(vulns []dtos.VulnerabilityDTO) []dtos.VulnerabilityDTO {
	sorted := slices.Clone(vulns)
	slices.SortStableFunc(sorted, func(a, b dtos.VulnerabilityDTO) int {
		if c := cmp.Compare(reference.CriticalityRank(a.Criticality), reference.CriticalityRank(b.Criticality)); c != 0 {
			return c
		}
		return compareDatesDesc(a.DiscoveryDate, b.DiscoveryDate)
	})
	return sorted
}

// SortTickets orders by priority, then by creation date, newest first.
func SortTickets(tickets []dtos.TicketDTO) []dtos.TicketDTO {
	sorted := slices.Clone(tickets)
	slices.SortStableFunc(sorted, func(a, b dtos.TicketDTO) int {
		if c := cmp.Compare(reference.CriticalityRank(a.Priority), reference.CriticalityRank(b.Priority)); c != 0 {
			return c
		}
		return compareDatesDesc(a.CreatedAt, b.CreatedAt)
	})
	return sorted
}

func compareDatesDesc(a, b string) int {
	da, okA := reporting.ParseDate(a)
	db, okB := reporting.ParseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return db.Compare(da)
}

// AssigneesForClient returns the active workers who may take a ticket of
// the client: workers assigned to it and general workers without any client.
func AssigneesForClient(workers []dtos.WorkerDTO, clientID *int) []dtos.WorkerDTO {
	return utils.Filter(workers, func(w dtos.WorkerDTO) bool {
		if !w.Active {
			return false
		}
		if clientID == nil || len(w.ClientIDs) == 0 {
			return true
		}
		return slices.Contains(w.ClientIDs, *clientID)
	})
}

// VulnerabilitiesForClient returns the vulnerabilities a ticket of the
// client may reference. Closed vulnerabilities are not selectable.
func VulnerabilitiesForClient(vulns []dtos.VulnerabilityDTO, clientID *int) []dtos.VulnerabilityDTO {
	return utils.Filter(vulns, func(v dtos.VulnerabilityDTO) bool {
		return !reporting.IsClosed(v.Status) && matchesClient(clientID, v.ClientID)
	})
}

func AssetsForClient(assets []dtos.AssetDTO, clientID *int) []dtos.AssetDTO {
	return utils.Filter(assets, func(a dtos.AssetDTO) bool {
		return matchesClient(clientID, a.ClientID)
	})
}

// PruneSelection drops selected vulnerability ids which do not belong to
// the client. Unknown ids are dropped as well.
func PruneSelection(selected []int, vulns []dtos.VulnerabilityDTO, clientID *int) []int {
	byID := utils.IndexBy(vulns, func(v dtos.VulnerabilityDTO) int { return v.ID })
	kept := make([]int, 0, len(selected))
	for _, id := range selected {
		v, ok := byID[id]
		if ok && matchesClient(clientID, v.ClientID) {
			kept = append(kept, id)
		}
	}
	return kept
}
