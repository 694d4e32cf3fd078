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

package transformer

import (
	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
)

func ApplicationModelsToDTOs(apps []models.Application) []dtos.ApplicationResponse {
	responses := make([]dtos.ApplicationResponse, len(apps))
	for i, app := range apps {
		responses[i] = ApplicationModelToDTO(app)
	}
	return responses
}

func ApplicationModelToDTO(app models.Application) dtos.ApplicationResponse {
	return dtos.ApplicationResponse{
		Name:         app.Name,
		Description:  app.Description,
		IsVulnerable: app.IsVulnerable,
		CreatedAt:    app.CreatedAt,
		UserID:       app.UserID,
	}
}

func UserModelToDTO(user models.User, applications []string) dtos.UserResponse {
	if applications == nil {
		applications = []string{}
	}
	return dtos.UserResponse{
		ID:           user.ID,
		CreatedAt:    user.CreatedAt,
		Applications: applications,
	}
}
