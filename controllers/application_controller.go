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
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/labstack/echo/v4"
)

type ApplicationController struct {
	applicationService shared.ApplicationService
	dependencyService  shared.DependencyService
	maxManifestSize    int64
}

func NewApplicationController(applicationService shared.ApplicationService, dependencyService shared.DependencyService, cfg config.Config) *ApplicationController {
	maxManifestSize := cfg.MaxManifestSize
	if maxManifestSize <= 0 {
		maxManifestSize = 500 * 1024
	}
	return &ApplicationController{
		applicationService: applicationService,
		dependencyService:  dependencyService,
		maxManifestSize:    maxManifestSize,
	}
}

// @Summary Create application
// @Accept multipart/form-data
// @Param name formData string true "Application name"
// @Param user_id formData string true "Owner id"
// @Param description formData string false "Description"
// @Param file formData file true "requirements.txt"
// @Success 201 {object} dtos.ApplicationResponse
// @Router /applications [post]
func (c *ApplicationController) Create(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing manifest file").WithInternal(err)
	}
	if fileHeader.Size > c.maxManifestSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("manifest exceeds %d bytes", c.maxManifestSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read manifest file").WithInternal(err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, c.maxManifestSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read manifest file").WithInternal(err)
	}
	if int64(len(content)) > c.maxManifestSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("manifest exceeds %d bytes", c.maxManifestSize))
	}

	req := dtos.CreateApplicationRequest{
		Name:     strings.TrimSpace(ctx.FormValue("name")),
		UserID:   strings.TrimSpace(ctx.FormValue("user_id")),
		Manifest: string(content),
	}
	if description := strings.TrimSpace(ctx.FormValue("description")); description != "" {
		req.Description = &description
	}

	application, err := c.applicationService.Create(ctx.Request().Context(), req)
	if err != nil {
		return httpError(err, "could not create application")
	}

	return ctx.JSON(http.StatusCreated, application)
}

func (c *ApplicationController) Read(ctx shared.Context) error {
	name, err := param(ctx, "name")
	if err != nil {
		return err
	}

	application, err := c.applicationService.Read(ctx.Request().Context(), name)
	if err != nil {
		return httpError(err, "could not read application")
	}
	return ctx.JSON(http.StatusOK, application)
}

func (c *ApplicationController) Delete(ctx shared.Context) error {
	name, err := param(ctx, "name")
	if err != nil {
		return err
	}

	if err := c.applicationService.Delete(ctx.Request().Context(), name); err != nil {
		return httpError(err, "could not delete application")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ApplicationController) ListDependencies(ctx shared.Context) error {
	name, err := param(ctx, "name")
	if err != nil {
		return err
	}

	dependencies, err := c.dependencyService.ListForApplication(ctx.Request().Context(), name)
	if err != nil {
		return httpError(err, "could not list dependencies")
	}
	return ctx.JSON(http.StatusOK, dependencies)
}
