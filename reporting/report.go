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
	"cmp"
	"slices"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

const topAssetLimit = 5

type Input struct {
	Vulnerabilities []dtos.VulnerabilityDTO
	Tickets         []dtos.TicketDTO
	Assets          []dtos.AssetDTO
	Clients         []dtos.ClientDTO
	Range           DateRange
	// restricts every aggregate to a single client if set
	ClientID *int
	Now      time.Time
}

type Summary struct {
	TotalVulns      int     `json:"totalVulns"`
	OpenVulns       int     `json:"openVulns"`
	ClosedVulns     int     `json:"closedVulns"`
	CriticalVulns   int     `json:"criticalVulns"`
	HighVulns       int     `json:"highVulns"`
	AverageCVSS     float64 `json:"averageCvss"`
	TotalTickets    int     `json:"totalTickets"`
	OpenTickets     int     `json:"openTickets"`
	ResolvedTickets int     `json:"resolvedTickets"`
	OverdueTickets  int     `json:"overdueTickets"`
}

type ClientCount struct {
	ClientID   int    `json:"clientId"`
	ClientName string `json:"clientName"`
	Vulns      int    `json:"vulns"`
	OpenVulns  int    `json:"openVulns"`
}

type AssetCount struct {
	AssetID     int    `json:"assetId"`
	AssetName   string `json:"assetName"`
	Criticality string `json:"criticality"`
	OpenVulns   int    `json:"openVulns"`
}

type Report struct {
	Start         string         `json:"start"`
	End           string         `json:"end"`
	GeneratedAt   time.Time      `json:"generatedAt"`
	ClientID      *int           `json:"clientId"`
	Summary       Summary        `json:"summary"`
	RiskScore     int            `json:"riskScore"`
	RiskLevel     string         `json:"riskLevel"`
	ByCriticality map[string]int `json:"byCriticality"`
	ByStatus      map[string]int `json:"byStatus"`
	ByClient      []ClientCount  `json:"byClient"`
	TopAssets     []AssetCount   `json:"topAssets"`
	Daily         []DailyBucket  `json:"daily"`
	DailyTickets  []TicketBucket `json:"dailyTickets"`
	Age           []AgeBucket    `json:"age"`
}

func belongsTo(clientID *int, owner *int) bool {
	if clientID == nil {
		return true
	}
	return owner != nil && *owner == *clientID
}

// Generate aggregates the vulnerabilities discovered and the tickets created
// within the range. The age histogram looks at the range's open
// vulnerabilities relative to Now.
func Generate(in Input) Report {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	vulns := FilterByDate(utils.Filter(in.Vulnerabilities, func(v dtos.VulnerabilityDTO) bool {
		return belongsTo(in.ClientID, v.ClientID)
	}), in.Range, func(v dtos.VulnerabilityDTO) string { return v.DiscoveryDate })

	tickets := FilterByDate(utils.Filter(in.Tickets, func(t dtos.TicketDTO) bool {
		return belongsTo(in.ClientID, t.ClientID)
	}), in.Range, func(t dtos.TicketDTO) string { return t.CreatedAt })

	stats := ComputeRiskStats(vulns)
	score := RiskScore(stats)

	report := Report{
		Start:       in.Range.Start.Format(time.DateOnly),
		End:         in.Range.End.Format(time.DateOnly),
		GeneratedAt: now,
		ClientID:    in.ClientID,
		Summary: Summary{
			TotalVulns:    stats.Total,
			OpenVulns:     stats.Open,
			ClosedVulns:   stats.Total - stats.Open,
			CriticalVulns: stats.Critical,
			HighVulns:     stats.High,
			AverageCVSS:   stats.AverageCVSS,
		},
		RiskScore:     score,
		RiskLevel:     RiskLevel(score),
		ByCriticality: utils.CountBy(vulns, func(v dtos.VulnerabilityDTO) string { return NormalizeCriticality(v.Criticality) }),
		ByStatus:      utils.CountBy(vulns, func(v dtos.VulnerabilityDTO) string { return v.Status }),
		ByClient:      countByClient(vulns, in.Clients),
		TopAssets:     topAssets(vulns, in.Assets),
		Daily:         DailyBreakdown(vulns, in.Range),
		DailyTickets:  DailyTicketBreakdown(tickets, in.Range),
		Age:           AgeHistogram(vulns, now),
	}

	today := StartOfDay(now)
	for _, t := range tickets {
		report.Summary.TotalTickets++
		if IsResolvedTicket(t.Status) {
			report.Summary.ResolvedTickets++
			continue
		}
		report.Summary.OpenTickets++
		if due, ok := ParseDate(t.DueDate); ok && due.Before(today) {
			report.Summary.OverdueTickets++
		}
	}

	return report
}

func countByClient(vulns []dtos.VulnerabilityDTO, clients []dtos.ClientDTO) []ClientCount {
	names := utils.IndexBy(clients, func(c dtos.ClientDTO) int { return c.ID })
	counts := make(map[int]*ClientCount)
	for _, v := range vulns {
		if v.ClientID == nil {
			continue
		}
		c, ok := counts[*v.ClientID]
		if !ok {
			c = &ClientCount{ClientID: *v.ClientID, ClientName: names[*v.ClientID].Name}
			counts[*v.ClientID] = c
		}
		c.Vulns++
		if !IsClosed(v.Status) {
			c.OpenVulns++
		}
	}

	res := make([]ClientCount, 0, len(counts))
	for _, c := range counts {
		res = append(res, *c)
	}
	slices.SortFunc(res, func(a, b ClientCount) int {
		if n := cmp.Compare(b.Vulns, a.Vulns); n != 0 {
			return n
		}
		return cmp.Compare(a.ClientID, b.ClientID)
	})
	return res
}

func topAssets(vulns []dtos.VulnerabilityDTO, assets []dtos.AssetDTO) []AssetCount {
	byID := utils.IndexBy(assets, func(a dtos.AssetDTO) int { return a.ID })
	counts := make(map[int]int)
	for _, v := range vulns {
		if v.AssetID == nil || IsClosed(v.Status) {
			continue
		}
		counts[*v.AssetID]++
	}

	res := make([]AssetCount, 0, len(counts))
	for id, n := range counts {
		asset := byID[id]
		res = append(res, AssetCount{AssetID: id, AssetName: asset.Name, Criticality: asset.Criticality, OpenVulns: n})
	}
	slices.SortFunc(res, func(a, b AssetCount) int {
		if n := cmp.Compare(b.OpenVulns, a.OpenVulns); n != 0 {
			return n
		}
		return cmp.Compare(a.AssetID, b.AssetID)
	})
	if len(res) > topAssetLimit {
		res = res[:topAssetLimit]
	}
	return res
}
