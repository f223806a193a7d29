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
	"strings"

	"github.com/l3montree-dev/casedesk/dtos"
)

const (
	CriticalityCritical = "Critical"
	CriticalityHigh     = "High"
	CriticalityMedium   = "Medium"
	CriticalityLow      = "Low"

	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
	StatusResolved   = "Resolved"
)

func IsClosed(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusClosed)
}

// NormalizeCriticality maps the criticality to its canonical spelling.
// Unknown values are returned trimmed.
func NormalizeCriticality(criticality string) string {
	criticality = strings.TrimSpace(criticality)
	for _, c := range []string{CriticalityCritical, CriticalityHigh, CriticalityMedium, CriticalityLow} {
		if strings.EqualFold(criticality, c) {
			return c
		}
	}
	return criticality
}

func IsResolvedTicket(status string) bool {
	return IsClosed(status) || strings.EqualFold(strings.TrimSpace(status), StatusResolved)
}

type RiskStats struct {
	Total       int     `json:"total"`
	Open        int     `json:"open"`
	Critical    int     `json:"critical"`
	High        int     `json:"high"`
	AverageCVSS float64 `json:"averageCvss"`
}

// ComputeRiskStats counts criticalities over the whole collection. Records
// without a cvss score do not take part in the average.
func ComputeRiskStats(vulns []dtos.VulnerabilityDTO) RiskStats {
	stats := RiskStats{Total: len(vulns)}
	cvssSum := 0.
	cvssCount := 0
	for _, v := range vulns {
		if !IsClosed(v.Status) {
			stats.Open++
		}
		switch NormalizeCriticality(v.Criticality) {
		case CriticalityCritical:
			stats.Critical++
		case CriticalityHigh:
			stats.High++
		}
		if v.CVSS != nil && !math.IsNaN(*v.CVSS) {
			cvssSum += *v.CVSS
			cvssCount++
		}
	}
	if cvssCount > 0 {
		stats.AverageCVSS = cvssSum / float64(cvssCount)
	}
	return stats
}

// RiskScore is a composite 0-100 metric:
// critical*10 + high*5 + openRatio*50 + (avgCvss/10)*30, clamped to 100.
func RiskScore(s RiskStats) int {
	score := float64(s.Critical)*10 + float64(s.High)*5 + (s.AverageCVSS/10)*30
	if s.Total > 0 {
		score += float64(s.Open) / float64(s.Total) * 50
	}
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	return int(math.Min(100, math.Round(score)))
}

func RiskLevel(score int) string {
	switch {
	case score >= 70:
		return CriticalityCritical
	case score >= 50:
		return CriticalityHigh
	case score >= 30:
		return CriticalityMedium
	default:
		return CriticalityLow
	}
}
