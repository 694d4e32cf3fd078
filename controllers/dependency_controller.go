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

	"github.com/l3montree-dev/vulntracker/shared"
)

type DependencyController struct {
	dependencyService shared.DependencyService
}

func NewDependencyController(dependencyService shared.DependencyService) *DependencyController {
	return &DependencyController{
		dependencyService: dependencyService,
	}
}

func (c *DependencyController) Read(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	dependency, err := c.dependencyService.Read(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err, "could not read dependency")
	}
	return ctx.JSON(http.StatusOK, dependency)
}

func (c *DependencyController) ListApplications(ctx shared.Context) error {
	id, err := param(ctx, "id")
	if err != nil {
		return err
	}

	applications, err := c.dependencyService.ListApplicationsForDependency(ctx.Request().Context(), id)
	if err != nil {
		return httpError(err, "could not list applications")
	}
	return ctx.JSON(http.StatusOK, applications)
}
