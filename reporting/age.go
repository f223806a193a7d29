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
	"math"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
)

type AgeBucket struct {
	Label   string `json:"label"`
	MinDays int    `json:"minDays"`
	// -1 marks the open ended bucket
	MaxDays int `json:"maxDays"`
	Count   int `json:"count"`
}

func newAgeBuckets() []AgeBucket {
	return []AgeBucket{
		{Label: "0-7 days", MinDays: 0, MaxDays: 7},
		{Label: "8-30 days", MinDays: 8, MaxDays: 30},
		{Label: "31-90 days", MinDays: 31, MaxDays: 90},
		{Label: "90+ days", MinDays: 91, MaxDays: -1},
	}
}

// DaysBetween counts calendar days, so DST shifts do not lose a day.
func DaysBetween(from, to time.Time) int {
	return int(math.Round(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24))
}

// AgeHistogram buckets the open vulnerabilities by days since discovery.
func AgeHistogram(vulns []dtos.VulnerabilityDTO, now time.Time) []AgeBucket {
	buckets := newAgeBuckets()
	for _, v := range vulns {
		if IsClosed(v.Status) {
			continue
		}
		discovered, ok := ParseDate(v.DiscoveryDate)
		if !ok {
			continue
		}
		age := max(DaysBetween(discovered, now), 0)
		for i := range buckets {
			if age >= buckets[i].MinDays && (buckets[i].MaxDays == -1 || age <= buckets[i].MaxDays) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}
