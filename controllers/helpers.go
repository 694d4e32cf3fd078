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

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/labstack/echo/v4"
)

// httpError translates service errors into an echo http error.
// The original error is kept as internal error so the error handler can log it.
func httpError(err error, msg string) error {
	var validationErrors validator.ValidationErrors
	switch {
	case shared.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage(err)).WithInternal(err)
	case errors.Is(err, shared.ErrDuplicateApplication), errors.Is(err, shared.ErrUserAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error()).WithInternal(err)
	case errors.Is(err, shared.ErrMalformedManifest), errors.Is(err, shared.ErrDefaultUserProtected):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.As(err, &validationErrors):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("could not validate request: %s", validationErrors.Error())).WithInternal(err)
	case errors.Is(err, shared.ErrAdvisoryUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "advisory service unavailable, please retry later").WithInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrUserNotFound):
		return "could not find user"
	case errors.Is(err, shared.ErrApplicationNotFound):
		return "could not find application"
	default:
		return "could not find dependency"
	}
}

func param(ctx shared.Context, name string) (string, error) {
	value := ctx.Param(name)
	// echo keeps the escaping if the request path carried encoded characters
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}
	value = shared.SanitizeParam(value)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing %s", name))
	}
	return value, nil
}
