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

package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/spf13/cobra"
)

// clientFlag returns nil unless --client was given.
func clientFlag(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("client") {
		return nil
	}
	id, _ := cmd.Flags().GetInt("client")
	return &id
}

func startSpinner(cmd *cobra.Command, suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + suffix
	s.Start()
	return s
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the risk report of a date range",
		Long:  `Aggregates the vulnerabilities and tickets of the range. Without --start and --end the last 30 days are reported.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			output, _ := cmd.Flags().GetString("output")

			b, err := newBackend(cmd)
			if err != nil {
				return err
			}
			reportService := services.NewReportService(services.NewPageLoader(b.store), nil)
			r, err := reportService.RangeOrDefault(start, end)
			if err != nil {
				return err
			}

			var page services.Page[reporting.Report]
			s := startSpinner(cmd, "loading report")
			report, err := page.Load(cmd.Context(), func(ctx context.Context) (reporting.Report, error) {
				return reportService.Generate(ctx, r, clientFlag(cmd))
			})
			s.Stop()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, report, renderReport)
		},
	}
	cmd.Flags().String("start", "", "First day of the range (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Last day of the range (YYYY-MM-DD)")
	cmd.Flags().Int("client", 0, "Only report on this client id")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")
	return cmd
}

func renderReport(w io.Writer, report reporting.Report) {
	summary := table.NewWriter()
	summary.SetTitle(fmt.Sprintf("Risk report %s to %s", report.Start, report.End))
	summary.AppendRows([]table.Row{
		{"Risk score", fmt.Sprintf("%d (%s)", report.RiskScore, report.RiskLevel)},
		{"Vulnerabilities", report.Summary.TotalVulns},
		{"Open", report.Summary.OpenVulns},
		{"Critical", report.Summary.CriticalVulns},
		{"High", report.Summary.HighVulns},
		{"Average CVSS", fmt.Sprintf("%.1f", report.Summary.AverageCVSS)},
		{"Tickets", report.Summary.TotalTickets},
		{"Overdue tickets", report.Summary.OverdueTickets},
	})
	fmt.Fprintln(w, summary.Render())

	if len(report.TopAssets) > 0 {
		assets := table.NewWriter()
		assets.SetTitle("Most affected assets")
		assets.AppendHeader(table.Row{"Asset", "Criticality", "Open"})
		for _, a := range report.TopAssets {
			assets.AppendRow(table.Row{a.AssetName, reference.Label(a.Criticality), a.OpenVulns})
		}
		fmt.Fprintln(w, assets.Render())
	}

	age := table.NewWriter()
	age.SetTitle("Age of open vulnerabilities")
	age.AppendHeader(table.Row{"Age", "Count"})
	for _, b := range report.Age {
		age.AppendRow(table.Row{b.Label, b.Count})
	}
	fmt.Fprintln(w, age.Render())

	daily := table.NewWriter()
	daily.SetTitle("Daily")
	daily.AppendHeader(table.Row{"Date", "Found", "Closed"})
	for _, d := range report.Daily {
		if d.Vulns == 0 {
			continue
		}
		daily.AppendRow(table.Row{d.Date, d.Vulns, d.ClosedVulns})
	}
	fmt.Fprintln(w, daily.Render())
}
