// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/l3montree-dev/vulntracker/cmd/vulntracker/api"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, db shared.DB, cfg config.Config) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, buildInfo(db, cfg))
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{Group: apiV1Router}
}

func buildInfo(db shared.DB, cfg config.Config) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
		},
		Cache: CacheInfo{
			Backend:         strings.ToLower(cfg.CacheBackend),
			SummaryCacheTTL: cfg.SummaryCacheTTL.String(),
		},
		Advisory: AdvisoryInfo{
			URL:         cfg.OSVURL,
			Ecosystem:   cfg.OSVEcosystem,
			Timeout:     cfg.AdvisoryTimeout.String(),
			MaxRetries:  cfg.AdvisoryMaxRetries,
			Concurrency: cfg.ResolverConcurrency,
		},
	}

	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	dbInfo := DatabaseInfo{Status: "unknown", Driver: db.Dialector.Name()}
	if dbInfo.Driver == "postgres" {
		poolCfg := database.PoolConfigFromConfig(cfg)
		dbInfo.Pool = &PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}
	if err := sqlDB.Ping(); err != nil {
		errMsg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}

	dbInfo.Status = "healthy"
	dbInfo.DBStats = sqlDB.Stats()
	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		dbInfo.MigrationVersion = &ver
		dbInfo.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		dbInfo.MigrationError = &errStr
	}

	resp.Database = dbInfo
	return resp
}
