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
	"github.com/l3montree-dev/vulntracker/controllers"
	"github.com/labstack/echo/v4"
)

type ApplicationRouter struct {
	*echo.Group
}

func NewApplicationRouter(apiV1Router APIV1Router, applicationController *controllers.ApplicationController) ApplicationRouter {
	applicationRouter := apiV1Router.Group.Group("/applications")
	applicationRouter.POST("/", applicationController.Create)

	applicationScopedRouter := applicationRouter.Group("/:name")
	applicationScopedRouter.GET("/", applicationController.Read)
	applicationScopedRouter.DELETE("/", applicationController.Delete)
	applicationScopedRouter.GET("/dependencies/", applicationController.ListDependencies)

	return ApplicationRouter{Group: applicationRouter}
}
