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

package reporting

import (
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
)

type DailyBucket struct {
	Date        string `json:"date"`
	Vulns       int    `json:"vulns"`
	ClosedVulns int    `json:"closedVulns"`
}

type TicketBucket struct {
	Date            string `json:"date"`
	Tickets         int    `json:"tickets"`
	ResolvedTickets int    `json:"resolvedTickets"`
}

func dayIndex(days []time.Time) map[string]int {
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Format(time.DateOnly)] = i
	}
	return index
}

// DailyBreakdown returns one bucket per day of the range counting the
// vulnerabilities discovered on that day and how many of them are closed.
func DailyBreakdown(vulns []dtos.VulnerabilityDTO, r DateRange) []DailyBucket {
	days := r.Days()
	buckets := make([]DailyBucket, len(days))
	for i, d := range days {
		buckets[i].Date = d.Format(time.DateOnly)
	}
	index := dayIndex(days)

	for _, v := range vulns {
		discovered, ok := ParseDate(v.DiscoveryDate)
		if !ok {
			continue
		}
		i, ok := index[discovered.Format(time.DateOnly)]
		if !ok {
			continue
		}
		buckets[i].Vulns++
		if IsClosed(v.Status) {
			buckets[i].ClosedVulns++
		}
	}
	return buckets
}

// DailyTicketBreakdown buckets tickets by their creation day.
func DailyTicketBreakdown(tickets []dtos.TicketDTO, r DateRange) []TicketBucket {
	days := r.Days()
	buckets := make([]TicketBucket, len(days))
	for i, d := range days {
		buckets[i].Date = d.Format(time.DateOnly)
	}
	index := dayIndex(days)

	for _, t := range tickets {
		created, ok := ParseDate(t.CreatedAt)
		if !ok {
			continue
		}
		i, ok := index[created.Format(time.DateOnly)]
		if !ok {
			continue
		}
		buckets[i].Tickets++
		if IsResolvedTicket(t.Status) {
			buckets[i].ResolvedTickets++
		}
	}
	return buckets
}
