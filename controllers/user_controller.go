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
	"net/http"
	"strings"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	userService        shared.UserService
	applicationService shared.ApplicationService
	dependencyService  shared.DependencyService
}

func NewUserController(userService shared.UserService, applicationService shared.ApplicationService, dependencyService shared.DependencyService) *UserController {
	return &UserController{
		userService:        userService,
		applicationService: applicationService,
		dependencyService:  dependencyService,
	}
}

// @Summary Create user
// @Param body body dtos.UserCreateRequest true "Request body"
// @Success 201 {object} dtos.UserResponse
// @Router /users [post]
func (c *UserController) Create(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	req.ID = strings.TrimSpace(req.ID)

	user, err := c.userService.Create(ctx.Request().Context(), req.ID)
	if err != nil {
		return httpError(err, "could not create user")
	}
	return ctx.JSON(http.StatusCreated, user)
}

func (c *UserController) Read(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	user, err := c.userService.Read(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err, "could not read user")
	}
	return ctx.JSON(http.StatusOK, user)
}

// Delete reassigns the applications of the user to the default user before removing it
func (c *UserController) Delete(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.userService.Delete(ctx.Request().Context(), id); err != nil {
		return httpError(err, "could not delete user")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *UserController) ListApplications(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	applications, err := c.applicationService.ListByUser(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err, "could not list applications")
	}
	return ctx.JSON(http.StatusOK, applications)
}

func (c *UserController) ListDependencies(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	dependencies, err := c.dependencyService.ListForUser(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err, "could not list dependencies")
	}
	return ctx.JSON(http.StatusOK, dependencies)
}
