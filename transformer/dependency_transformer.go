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
	"github.com/pkg/errors"
)

// DependencyModelToDTO fails if the stored snapshot is not a json array.
func DependencyModelToDTO(dependency models.Dependency, applications []string) (dtos.DependencyResponse, error) {
	advisories, err := dependency.Advisories()
	if err != nil {
		return dtos.DependencyResponse{}, errors.Wrapf(err, "could not decode the vulnerabilities of %s", dependency.ID)
	}
	if applications == nil {
		applications = []string{}
	}
	return dtos.DependencyResponse{
		ID:              dependency.ID,
		Name:            dependency.Name,
		Version:         dependency.Version,
		Purl:            dependency.Package().Purl(),
		Applications:    applications,
		Vulnerabilities: advisories,
	}, nil
}

// DependencyModelsToDTOs looks the applications of every dependency up in applicationsByDependency.
func DependencyModelsToDTOs(dependencies []models.Dependency, applicationsByDependency map[string][]string) ([]dtos.DependencyResponse, error) {
	responses := make([]dtos.DependencyResponse, 0, len(dependencies))
	for _, dependency := range dependencies {
		response, err := DependencyModelToDTO(dependency, applicationsByDependency[dependency.ID])
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}
