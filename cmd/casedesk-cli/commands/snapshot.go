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
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/casedesk/database/repositories"
	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newSnapshotCommand() *cobra.Command {
	snapshot := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored report snapshots",
	}
	snapshot.AddCommand(newSnapshotBackfillCommand(), newSnapshotListCommand())
	return snapshot
}

func newSnapshotBackfillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Store one single-day snapshot for each of the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			if days < 1 || days > services.MaxReportDays {
				return fmt.Errorf("--days must be between 1 and %d", services.MaxReportDays)
			}

			b, err := newBackend(cmd)
			if err != nil {
				return err
			}
			db, closeDB, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			reportService := services.NewReportService(services.NewPageLoader(b.store), repositories.NewReportSnapshotRepository(db))
			bar := progressbar.NewOptions(days,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("backfilling snapshots"),
				progressbar.OptionShowCount(),
			)
			saved, err := reportService.Backfill(cmd.Context(), days, clientFlag(cmd), func() {
				bar.Add(1) // nolint: errcheck
			})
			bar.Finish() // nolint: errcheck
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nstored %d snapshots\n", saved)
			return nil
		},
	}
	cmd.Flags().Int("days", 30, "Number of days to backfill, ending today")
	cmd.Flags().Int("client", 0, "Only snapshot this client id")
	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest snapshots, or every snapshot within --start and --end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			output, _ := cmd.Flags().GetString("output")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			db, closeDB, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			reportService := services.NewReportService(nil, repositories.NewReportSnapshotRepository(db))
			var snapshots []dtos.ReportSnapshotDTO
			if start != "" || end != "" {
				snapshots, err = reportService.ListSnapshotsInRange(start, end)
			} else {
				snapshots, err = reportService.ListSnapshots(clientFlag(cmd), limit)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, snapshots, renderSnapshots)
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of snapshots")
	cmd.Flags().Int("client", 0, "Only list snapshots of this client id")
	cmd.Flags().String("start", "", "List the snapshots from this date on (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "List the snapshots up to this date (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")
	return cmd
}

func renderSnapshots(w io.Writer, snapshots []dtos.ReportSnapshotDTO) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Created", "Range", "Client", "Risk", "Open", "Critical", "High"})
	for _, s := range snapshots {
		client := "all"
		if s.ClientID != nil {
			client = fmt.Sprint(*s.ClientID)
		}
		tw.AppendRow(table.Row{
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Start + ".." + s.End,
			client,
			fmt.Sprintf("%d (%s)", s.RiskScore, s.RiskLevel),
			s.OpenVulns,
			s.CriticalVulns,
			s.HighVulns,
		})
	}
	fmt.Fprintln(w, tw.Render())
}
