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
	"fmt"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/utils"
)

// Dataset is a consistent set of backend records for demos and tests.
type Dataset struct {
	Clients         []dtos.ClientRecord
	Assets          []dtos.AssetRecord
	Vulnerabilities []dtos.VulnerabilityRecord
	Tickets         []dtos.TicketRecord
	Projects        []dtos.ProjectRecord
	GanttTasks      []dtos.GanttTaskRecord
	Workers         []dtos.WorkerRecord
}

func daysAgo(now time.Time, n int) *string {
	return utils.Ptr(now.AddDate(0, 0, -n).Format(time.DateOnly))
}

func daysAhead(now time.Time, n int) *string {
	return daysAgo(now, -n)
}

// MockDataset builds the demo data with dates relative to now, so the last
// 30 days always contain activity.
func MockDataset(now time.Time) Dataset {
	clients := []dtos.ClientRecord{
		{
			ID: 1, Name: "Acme Corporation", ShortCode: "ACME", Industry: utils.Ptr("Manufacturing"),
			Contacts: []dtos.ContactRecord{
				{Name: "Jane Doe", Role: "CISO", Phone: "+49 30 1234567", Email: "jane.doe@acme.example", IsPrimary: true},
				{Name: "Max Mustermann", Role: "IT Lead", Email: "max@acme.example"},
			},
			ContractType: utils.Ptr("Managed Security"), SLALevel: utils.Ptr("Gold"),
			HasFirewall: utils.Ptr(true), HasSIEM: utils.Ptr(true), HasEDR: utils.Ptr(true), HasBackup: utils.Ptr(true),
			CloudProvider: utils.Ptr("AWS"),
		},
		{
			ID: 2, Name: "Globex Industries", ShortCode: "GLBX", Industry: utils.Ptr("Energy"),
			Contacts: []dtos.ContactRecord{
				{Name: "Hank Scorpio", Role: "CEO", Email: "hank@globex.example", IsPrimary: true},
			},
			ContractType: utils.Ptr("Incident Response"), SLALevel: utils.Ptr("Silver"),
			HasFirewall: utils.Ptr(true), HasSIEM: utils.Ptr(false), HasEDR: utils.Ptr(false), HasBackup: utils.Ptr(true),
		},
		{
			ID: 3, Name: "Umbrella Health", ShortCode: "UMBH", Industry: utils.Ptr("Healthcare"),
			Contacts: []dtos.ContactRecord{
				{Name: "Alice Abernathy", Role: "Security Officer", Email: "alice@umbrella.example", IsPrimary: true},
			},
			ContractType: utils.Ptr("Penetration Testing"), SLALevel: utils.Ptr("Bronze"),
			CloudProvider: utils.Ptr("Azure"),
		},
	}

	assets := []dtos.AssetRecord{
		{ID: 1, Name: "acme-fw-01", AssetType: "Firewall", IPAddress: utils.Ptr("10.0.0.1"), OperatingSystem: utils.Ptr("FortiOS"), Status: "Active", Criticality: "Critical", ClientID: utils.Ptr(1), LastScan: daysAgo(now, 1)},
		{ID: 2, Name: "acme-web-01", AssetType: "Server", IPAddress: utils.Ptr("10.0.1.10"), OperatingSystem: utils.Ptr("Ubuntu 22.04"), Status: "Active", Criticality: "High", ClientID: utils.Ptr(1), LastScan: daysAgo(now, 2)},
		{ID: 3, Name: "acme-db-01", AssetType: "Database", IPAddress: utils.Ptr("10.0.2.20"), OperatingSystem: utils.Ptr("RHEL 9"), Status: "Active", Criticality: "Critical", ClientID: utils.Ptr(1), LastScan: daysAgo(now, 2)},
		{ID: 4, Name: "glbx-scada-gw", AssetType: "Network Device", IPAddress: utils.Ptr("172.16.0.5"), Status: "Active", Criticality: "Critical", ClientID: utils.Ptr(2), LastScan: daysAgo(now, 7)},
		{ID: 5, Name: "glbx-ws-114", AssetType: "Workstation", IPAddress: utils.Ptr("172.16.4.114"), OperatingSystem: utils.Ptr("Windows 11"), Status: "Maintenance", Criticality: "Low", ClientID: utils.Ptr(2)},
		{ID: 6, Name: "umbh-pacs-01", AssetType: "Server", IPAddress: utils.Ptr("192.168.10.4"), OperatingSystem: utils.Ptr("Windows Server 2019"), Status: "Active", Criticality: "High", ClientID: utils.Ptr(3), LastScan: daysAgo(now, 14)},
	}

	type vulnSpec struct {
		title       string
		cve         string
		vector      string
		criticality string
		status      string
		age         int
		asset       int
		client      int
	}
	specs := []vulnSpec{
		{"OpenSSH regreSSHion remote code execution", "CVE-2024-6387", "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:H/I:H/A:H", "High", "Open", 2, 2, 1},
		{"FortiOS SSL-VPN heap overflow", "CVE-2024-21762", "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", "Critical", "In Progress", 5, 1, 1},
		{"PostgreSQL privilege escalation", "CVE-2023-5869", "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H", "High", "Closed", 12, 3, 1},
		{"Outdated TLS configuration", "", "", "Medium", "Open", 20, 2, 1},
		{"SCADA gateway default credentials", "", "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", "Critical", "Open", 40, 4, 2},
		{"Windows SmartScreen bypass", "CVE-2024-21412", "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:U/C:H/I:H/A:H", "High", "Closed", 9, 5, 2},
		{"SMB signing not required", "", "CVSS:3.1/AV:A/AC:H/PR:N/UI:N/S:U/C:L/I:L/A:N", "Low", "Open", 100, 5, 2},
		{"PACS server exposes DICOM without auth", "", "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N", "High", "Open", 3, 6, 3},
		{"Print spooler remote code execution", "CVE-2021-34527", "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H", "Critical", "Closed", 25, 6, 3},
	}
	vulns := make([]dtos.VulnerabilityRecord, 0, len(specs))
	for i, s := range specs {
		v := dtos.VulnerabilityRecord{
			ID:            i + 1,
			Title:         s.title,
			Criticality:   s.criticality,
			Status:        s.status,
			DiscoveryDate: daysAgo(now, s.age),
			AssetID:       utils.Ptr(s.asset),
			ClientID:      utils.Ptr(s.client),
			Scanner:       utils.Ptr("Nessus"),
			CVEID:         utils.EmptyThenNil(s.cve),
			CVSSVector:    utils.EmptyThenNil(s.vector),
		}
		if s.status == "Closed" {
			v.ModifiedDate = daysAgo(now, s.age/2)
			v.Remediation = utils.Ptr("Patched to the vendor fixed release")
		}
		vulns = append(vulns, v)
	}

	workers := []dtos.WorkerRecord{
		{ID: 1, Name: "Sam Analyst", Email: utils.Ptr("sam@casedesk.example"), Role: utils.Ptr("SOC Analyst"), ClientIDs: []int{1}},
		{ID: 2, Name: "Robin Responder", Email: utils.Ptr("robin@casedesk.example"), Role: utils.Ptr("Incident Responder"), ClientIDs: []int{2, 3}},
		{ID: 3, Name: "Kim Generalist", Email: utils.Ptr("kim@casedesk.example"), Role: utils.Ptr("Security Engineer")},
		{ID: 4, Name: "Alex Former", Role: utils.Ptr("SOC Analyst"), ClientIDs: []int{1}, IsActive: utils.Ptr(false)},
	}

	tickets := []dtos.TicketRecord{
		{
			ID: 1, Title: "Patch FortiOS on acme-fw-01", Priority: "Critical", Status: "In Progress",
			AssigneeID: utils.Ptr(1), ReporterID: utils.Ptr(3), ClientID: utils.Ptr(1),
			DueDate: daysAhead(now, 2), VulnerabilityIDs: []int{2}, CreatedAt: daysAgo(now, 4),
			Messages: []dtos.TicketMessageRecord{
				{ID: 1, TicketID: 1, AuthorID: utils.Ptr(1), AuthorName: utils.Ptr("Sam Analyst"), Content: "Maintenance window requested.", CreatedAt: daysAgo(now, 3)},
			},
		},
		{
			ID: 2, Title: "Upgrade PostgreSQL", Priority: "High", Status: "Resolved",
			AssigneeID: utils.Ptr(1), ClientID: utils.Ptr(1), VulnerabilityIDs: []int{3},
			CreatedAt: daysAgo(now, 11), ResolvedAt: daysAgo(now, 6),
		},
		{
			ID: 3, Title: "Rotate SCADA gateway credentials", Priority: "Critical", Status: "Open",
			AssigneeID: utils.Ptr(2), ClientID: utils.Ptr(2), DueDate: daysAgo(now, 10),
			VulnerabilityIDs: []int{5}, CreatedAt: daysAgo(now, 35),
		},
		{
			ID: 4, Title: "Restrict DICOM access", Priority: "High", Status: "Open",
			AssigneeID: utils.Ptr(3), ClientID: utils.Ptr(3), VulnerabilityIDs: []int{8}, CreatedAt: daysAgo(now, 1),
		},
	}

	projects := []dtos.ProjectRecord{
		{
			ID: 1, Name: "Acme SOC onboarding", ClientID: 1, ProjectType: "Implementation", Status: "In Progress", Priority: "High",
			StartDate: daysAgo(now, 30), EndDate: daysAhead(now, 30), TeamMemberIDs: []int{1, 3},
		},
		{
			ID: 2, Name: "Globex OT assessment", ClientID: 2, ProjectType: "Assessment", Status: "Planning", Priority: "Medium",
			StartDate: daysAhead(now, 7), EndDate: daysAhead(now, 37), TeamMemberIDs: []int{2},
		},
	}

	ganttTasks := []dtos.GanttTaskRecord{
		{ID: 1, ProjectID: 1, Name: "Kickoff", StartDate: *daysAgo(now, 30), EndDate: *daysAgo(now, 28), Progress: utils.Ptr(100), AssigneeID: utils.Ptr(3)},
		{ID: 2, ProjectID: 1, Name: "Log source integration", StartDate: *daysAgo(now, 27), EndDate: *daysAhead(now, 5), Progress: utils.Ptr(60), AssigneeID: utils.Ptr(1)},
		{ID: 3, ProjectID: 1, Name: "Use case tuning", StartDate: *daysAhead(now, 6), EndDate: *daysAhead(now, 30), Progress: utils.Ptr(0), AssigneeID: utils.Ptr(1)},
		{ID: 4, ProjectID: 2, Name: "Network discovery", StartDate: *daysAhead(now, 7), EndDate: *daysAhead(now, 20), AssigneeID: utils.Ptr(2)},
	}

	return Dataset{
		Clients:         clients,
		Assets:          assets,
		Vulnerabilities: vulns,
		Tickets:         tickets,
		Projects:        projects,
		GanttTasks:      ganttTasks,
		Workers:         workers,
	}
}

func (d Dataset) String() string {
	return fmt.Sprintf("%d clients, %d assets, %d vulnerabilities, %d tickets, %d projects, %d workers",
		len(d.Clients), len(d.Assets), len(d.Vulnerabilities), len(d.Tickets), len(d.Projects), len(d.Workers))
}
