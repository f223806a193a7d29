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

package services

import (
	"time"

	"github.com/l3montree-dev/casedesk/reference"
	"github.com/l3montree-dev/casedesk/store"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

func newDemoStore() (*store.CaseStore, *reference.DemoAPI) {
	api := reference.NewDemoAPI(reference.MockDataset(testNow))
	return store.NewCaseStore(api.Clients, api.Assets, api.Vulnerabilities, api.Tickets, api.Workers, api.Projects, time.Minute), api
}
