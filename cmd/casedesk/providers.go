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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/casedesk/database"
	"github.com/l3montree-dev/casedesk/middlewares"
	"github.com/l3montree-dev/casedesk/monitoring"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/store"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func newPool(lc fx.Lifecycle) (*pgxpool.Pool, error) {
	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

// newDB opens gorm on top of the pool and migrates unless
// DISABLE_AUTOMIGRATE is true.
func newDB(pool *pgxpool.Pool) (shared.DB, error) {
	db, err := database.NewGormDB(pool)
	if err != nil {
		return nil, err
	}
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return db, nil
	}
	slog.Info("running database migrations...")
	if err := database.RunMigrationsWithDB(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newCaseStore(clients shared.ClientAPI, assets shared.AssetAPI, vulns shared.VulnerabilityAPI, tickets shared.TicketAPI, workers shared.WorkerAPI, projects shared.ProjectAPI) *store.CaseStore {
	return store.NewCaseStore(clients, assets, vulns, tickets, workers, projects, store.TTLFromEnv())
}

// listenForInvalidations keeps the store of this instance in sync with the
// mutations of every other instance.
func listenForInvalidations(lc fx.Lifecycle, caseStore *store.CaseStore, broker *database.PostgreSQLBroker) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return caseStore.ListenForInvalidations(ctx, broker)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startServer(lc fx.Lifecycle, e *echo.Echo) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting server", "port", port)
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					monitoring.Alert("server stopped unexpectedly", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: e.Shutdown,
	})
}

var serverModule = fx.Options(
	fx.Provide(newPool),
	fx.Provide(newDB),
	fx.Provide(database.NewPostgreSQLBroker),
	fx.Provide(func(b *database.PostgreSQLBroker) shared.PubSubBroker { return b }),
	fx.Provide(newCaseStore),
	fx.Provide(middlewares.Server),
)
