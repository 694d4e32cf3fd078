// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/cmd/vulntracker/api"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/controllers"
	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/database/repositories"
	"github.com/l3montree-dev/vulntracker/monitoring"
	"github.com/l3montree-dev/vulntracker/router"
	"github.com/l3montree-dev/vulntracker/services"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/vulndb"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

//	@title			vulntracker API
//	@version		v1
//	@description	tracks the dependencies of applications and their known vulnerabilities

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), cfg.OTLPEndpoint, "vulntracker", config.Version)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.Warn("could not flush traces", "err", err)
		}
	}()

	db, err := shared.DatabaseFactory(cfg)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate || db.Dialector.Name() == "sqlite" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db, cfg),
		fx.Provide(api.NewServer),
		vulndb.Module,
		cache.Module,
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,

		// the default user has to exist before any user can be deleted
		fx.Invoke(func(lc fx.Lifecycle, userService shared.UserService) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return userService.EnsureDefaultUser(ctx)
				},
			})
		}),

		// we need to invoke all routers to register their routes
		fx.Invoke(func(ApplicationRouter router.ApplicationRouter) {}),
		fx.Invoke(func(DependencyRouter router.DependencyRouter) {}),
		fx.Invoke(func(UserRouter router.UserRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}

func initSentry(cfg config.Config) {
	environment := cfg.Environment
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
