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

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/casedesk/controllers"
	"github.com/l3montree-dev/casedesk/database"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/utils"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	broker *database.PostgreSQLBroker,
	dashboardController *controllers.DashboardController,
	reportController *controllers.ReportController,
	ganttController *controllers.GanttController,
	ticketController *controllers.TicketController,
	referenceController *controllers.ReferenceController,
) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/info/", func(ctx shared.Context) error {
		return ctx.JSON(200, info(ctx, db, pool, broker))
	})
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx shared.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}
		if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		if !broker.IsHealthy(ctx.Request().Context()) {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "broker connection lost",
			})
		}
		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.GET("/reference/", referenceController.Read)
	apiV1Router.GET("/dashboard/", dashboardController.Read)

	reportRouter := apiV1Router.Group("/reports")
	reportRouter.GET("/summary/", reportController.Summary)
	reportRouter.GET("/snapshots/", reportController.ListSnapshots)
	reportRouter.POST("/snapshots/", reportController.CreateSnapshot)
	reportRouter.GET("/snapshots/:id/", reportController.ReadSnapshot)
	reportRouter.DELETE("/snapshots/:id/", reportController.DeleteSnapshot)

	projectRouter := apiV1Router.Group("/projects/:projectID")
	projectRouter.GET("/gantt/", ganttController.Layout)
	projectRouter.POST("/gantt/tasks/", ganttController.CreateTask)

	ticketRouter := apiV1Router.Group("/tickets")
	ticketRouter.GET("/form-options/", ticketController.FormOptions)
	ticketRouter.POST("/", ticketController.Create)
	ticketRouter.POST("/:ticketID/messages/", ticketController.CreateMessage)

	return APIV1Router{Group: apiV1Router}
}

func info(ctx shared.Context, db shared.DB, pool *pgxpool.Pool, broker *database.PostgreSQLBroker) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   Version,
			Commit:    Commit,
			BuildDate: BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			HeapAlloc:     mem.HeapAlloc,
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(startedAt).Seconds()),
		},
		Database: DatabaseInfo{Status: "healthy"},
		Broker: BrokerInfo{
			Healthy: broker.IsHealthy(ctx.Request().Context()),
			ActiveTopics: utils.Map(broker.GetActiveTopics(), func(c shared.PubSubChannel) string {
				return string(c)
			}),
		},
	}
	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request().Context())
	}
	if err != nil {
		msg := err.Error()
		resp.Database.Status = "unhealthy"
		resp.Database.Error = &msg
		return resp
	}

	stats := pool.Stat()
	resp.Database.Pool = &PoolInfo{
		DBName:        pool.Config().ConnConfig.Database,
		TotalConns:    int(stats.TotalConns()),
		IdleConns:     int(stats.IdleConns()),
		AcquiredConns: int(stats.AcquiredConns()),
		MaxConns:      int(stats.MaxConns()),
	}
	if version, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		resp.Database.MigrationVersion = &version
		resp.Database.MigrationDirty = &dirty
	}
	return resp
}
