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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/l3montree-dev/casedesk/reporting"
	"github.com/l3montree-dev/casedesk/services"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Chdir(t.TempDir())

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := run(t, "report", "--demo", "--output", "json")
		require.NoError(t, err)

		var report reporting.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 7, report.Summary.TotalVulns)
		assert.Nil(t, report.ClientID)
	})

	t.Run("yaml for one client", func(t *testing.T) {
		out, err := run(t, "report", "--demo", "--client", "2", "-o", "yaml")
		require.NoError(t, err)

		var report map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.Equal(t, 2, report["clientId"])
	})

	t.Run("table", func(t *testing.T) {
		out, err := run(t, "report", "--demo")
		require.NoError(t, err)
		assert.Contains(t, out, "Risk score")
		assert.Contains(t, out, "acme-fw-01")
	})

	t.Run("unknown output format", func(t *testing.T) {
		_, err := run(t, "report", "--demo", "-o", "xml")
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("demo mode from the environment", func(t *testing.T) {
		t.Setenv("CASEDESK_DEMO", "true")
		out, err := run(t, "report", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"totalVulns": 7`)
	})
}

func TestGanttCommand(t *testing.T) {
	out, err := run(t, "gantt", "1", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Kickoff")
	assert.Contains(t, out, "Use case tuning")

	_, err = run(t, "gantt", "abc", "--demo")
	assert.ErrorContains(t, err, "invalid project id")

	_, err = run(t, "gantt", "42", "--demo")
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestTimeline(t *testing.T) {
	assert.Equal(t, "██████████"+spaces(30), timeline(services.GanttBar{LeftPercent: 0, WidthPercent: 25}))
	assert.Equal(t, spaces(39)+"█", timeline(services.GanttBar{LeftPercent: 100, WidthPercent: 0.1}))
	assert.Len(t, []rune(timeline(services.GanttBar{LeftPercent: 90, WidthPercent: 50})), timelineWidth)
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}

func TestTicketCreateCommand(t *testing.T) {
	out, err := run(t, "ticket", "create", "--demo", "--title", "Patch OpenSSH", "--priority", "High", "--client", "1", "--vuln", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Patch OpenSSH")

	_, err = run(t, "ticket", "create", "--demo", "--title", "Patch", "--client", "1")
	assert.ErrorContains(t, err, "at least one vulnerability")
}

func TestSnapshotBackfillCommand(t *testing.T) {
	for _, days := range []string{"0", "732"} {
		_, err := run(t, "snapshot", "backfill", "--days", days)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--days must be between 1 and 731")
	}
}

func TestReportCommandRejectsOversizedRanges(t *testing.T) {
	_, err := run(t, "report", "--demo", "--start", "0001-01-01", "--end", "9999-12-31")
	var formErr *services.FormError
	assert.ErrorAs(t, err, &formErr)
}
