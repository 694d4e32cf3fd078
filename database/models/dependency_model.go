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

package models

import (
	"encoding/json"

	"github.com/l3montree-dev/vulntracker/dtos"
	"gorm.io/datatypes"
)

// Dependency is a released package version. The row is immutable once created:
// Vulnerabilities is the advisory snapshot fetched when the identity was first seen.
type Dependency struct {
	// ID is name:version
	ID              string         `json:"id" gorm:"primaryKey;column:id"`
	Name            string         `json:"name" gorm:"column:name;not null"`
	Version         string         `json:"version" gorm:"column:version;not null"`
	Vulnerabilities datatypes.JSON `json:"vulnerabilities" gorm:"column:vulnerabilities;not null"`
}

func (Dependency) TableName() string {
	return "dependencies"
}

func NewDependency(resolved dtos.ResolvedDependency) (Dependency, error) {
	advisories := resolved.Advisories
	if advisories == nil {
		advisories = []dtos.Advisory{}
	}
	b, err := json.Marshal(advisories)
	if err != nil {
		return Dependency{}, err
	}
	return Dependency{
		ID:              resolved.ID(),
		Name:            resolved.Name,
		Version:         resolved.Version,
		Vulnerabilities: datatypes.JSON(b),
	}, nil
}

func (d Dependency) Package() dtos.Package {
	return dtos.Package{Name: d.Name, Version: d.Version}
}

func (d Dependency) Advisories() ([]dtos.Advisory, error) {
	advisories := []dtos.Advisory{}
	if len(d.Vulnerabilities) == 0 {
		return advisories, nil
	}
	if err := json.Unmarshal(d.Vulnerabilities, &advisories); err != nil {
		return nil, err
	}
	return advisories, nil
}
