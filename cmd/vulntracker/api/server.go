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

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartedAt is used to report the uptime of the process
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer creates the echo server and binds it to the fx lifecycle.
// The server listens once the application starts and shuts down gracefully on stop.
func NewServer(lc fx.Lifecycle, cfg config.Config) Server {
	e := middlewares.Server()
	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", port)
				if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped unexpectedly", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down server")
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
