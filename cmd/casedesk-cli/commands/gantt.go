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
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/spf13/cobra"
)

const timelineWidth = 40

func newGanttCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gantt <projectID>",
		Short: "Show the task timeline of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			output, _ := cmd.Flags().GetString("output")

			b, err := newBackend(cmd)
			if err != nil {
				return err
			}
			s := startSpinner(cmd, "loading project")
			layout, err := services.NewGanttService(b.projects, b.gantt).ProjectLayout(cmd.Context(), projectID)
			s.Stop()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, layout, renderGantt)
		},
	}
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")
	return cmd
}

// timeline draws a bar of timelineWidth cells. Every bar is at least one
// cell wide.
func timeline(bar services.GanttBar) string {
	left := int(math.Round(bar.LeftPercent / 100 * timelineWidth))
	width := max(1, int(math.Round(bar.WidthPercent/100*timelineWidth)))
	left = min(left, timelineWidth-1)
	width = min(width, timelineWidth-left)
	return strings.Repeat(" ", left) + strings.Repeat("█", width) + strings.Repeat(" ", timelineWidth-left-width)
}

func renderGantt(w io.Writer, layout services.GanttLayout) {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Project %d: %s to %s (%d days)", layout.ProjectID, layout.Start, layout.End, layout.TotalDays))
	tw.AppendHeader(table.Row{"Task", "Start", "End", "Progress", "Timeline"})
	for _, bar := range layout.Bars {
		tw.AppendRow(table.Row{bar.Task.Name, bar.Task.StartDate, bar.Task.EndDate, fmt.Sprintf("%d%%", bar.Task.Progress), timeline(bar)})
	}
	fmt.Fprintln(w, tw.Render())
}
