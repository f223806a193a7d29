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
	"time"

	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/spf13/cobra"
)

// backend bundles what the commands read from and write to. It is either
// the real backend or the demo dataset.
type backend struct {
	store    *store.CaseStore
	projects shared.ProjectAPI
	tickets  shared.TicketAPI
	messages shared.TicketMessageAPI
	gantt    shared.GanttAPI
}

func newBackend(cmd *cobra.Command) (backend, error) {
	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		api := reference.NewDemoAPI(reference.MockDataset(time.Now()))
		return backend{
			store:    store.NewCaseStore(api.Clients, api.Assets, api.Vulnerabilities, api.Tickets, api.Workers, api.Projects, time.Hour),
			projects: api.Projects,
			tickets:  api.Tickets,
			messages: api,
			gantt:    api,
		}, nil
	}

	apiURL, _ := cmd.Flags().GetString("apiUrl")
	if apiURL == "" {
		apiURL = casedesk.APIURLFromEnv()
	}
	opts := []casedesk.Option{}
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		opts = append(opts, casedesk.WithToken(token))
	}
	httpClient, err := casedesk.NewHTTPClient(apiURL, opts...)
	if err != nil {
		return backend{}, err
	}
	api := casedesk.NewAPIClient(httpClient)
	return backend{
		store:    store.NewCaseStore(api.Clients, api.Assets, api.Vulnerabilities, api.Tickets, api.Workers, api.Projects, time.Hour),
		projects: api.Projects,
		tickets:  api.Tickets,
		messages: api,
		gantt:    api,
	}, nil
}
