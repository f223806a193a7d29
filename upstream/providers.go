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

package upstream

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/l3montree-dev/casedesk/common"
	"github.com/l3montree-dev/casedesk/pkg/casedesk"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/utils"
	"go.uber.org/fx"
)

const (
	referenceCacheSize = 64
	referenceCacheTTL  = time.Hour
)

// NewReferenceCache caches the reference lists. They change rarely and are
// requested on every modal open.
func NewReferenceCache() *common.CacheTransport {
	return common.NewCacheTransport(referenceCacheSize, referenceCacheTTL, utils.Map(casedesk.ReferenceKinds, func(kind string) string {
		return "/reference/" + kind
	})...)
}

// NewAPIClient builds the backend client from the environment.
// CASEDESK_API_RPS optionally limits the request rate.
func NewAPIClient(cache *common.CacheTransport) (*casedesk.APIClient, error) {
	opts := []casedesk.Option{
		casedesk.WithBaseTransport(common.Chain(http.DefaultTransport, common.MetricsHandler(), cache.Handler())),
	}
	if raw := os.Getenv("CASEDESK_API_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		opts = append(opts, casedesk.WithRateLimit(rps, max(1, int(rps))))
	}
	return casedesk.NewAPIClientFromEnv(opts...)
}

var Module = fx.Options(
	fx.Provide(NewReferenceCache),
	fx.Provide(NewAPIClient),
	fx.Provide(func(c *casedesk.APIClient) shared.ClientAPI { return c.Clients }),
	fx.Provide(func(c *casedesk.APIClient) shared.ProjectAPI { return c.Projects }),
	fx.Provide(func(c *casedesk.APIClient) shared.AssetAPI { return c.Assets }),
	fx.Provide(func(c *casedesk.APIClient) shared.VulnerabilityAPI { return c.Vulnerabilities }),
	fx.Provide(func(c *casedesk.APIClient) shared.TicketAPI { return c.Tickets }),
	fx.Provide(func(c *casedesk.APIClient) shared.WorkerAPI { return c.Workers }),
	fx.Provide(func(c *casedesk.APIClient) shared.TicketMessageAPI { return c }),
	fx.Provide(func(c *casedesk.APIClient) shared.GanttAPI { return c }),
	fx.Provide(func(c *casedesk.APIClient) shared.ReferenceAPI { return c }),
)
