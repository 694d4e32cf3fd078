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

package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowHeaders: middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
		},
	))

	e.Use(otelecho.Middleware("vulntracker"))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler(e)
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		if he, ok := err.(*echo.HTTPError); ok && he.Code < http.StatusInternalServerError {
			slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		} else {
			slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		}

		if ctx.Response().Committed {
			return
		}

		if he, ok := err.(*echo.HTTPError); ok {
			message := he.Message
			if m, ok := he.Message.(string); ok {
				message = echo.Map{"message": m}
			}
			if err := ctx.JSON(he.Code, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}

		var message any = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
		if e.Debug {
			message = echo.Map{"message": http.StatusText(http.StatusInternalServerError), "error": err.Error()}
		}
		if _, ok := err.(json.Marshaler); ok {
			message = err
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(http.StatusInternalServerError); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		} else {
			if err := ctx.JSON(http.StatusInternalServerError, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		}
	}
}

// Server creates the echo instance with all global middlewares registered.
func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
