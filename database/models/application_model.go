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

import "time"

type Application struct {
	Name         string    `json:"name" gorm:"primaryKey;column:name"`
	Description  *string   `json:"description" gorm:"column:description;type:text"`
	IsVulnerable bool      `json:"isVulnerable" gorm:"column:is_vulnerable;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null"`

	UserID string `json:"userId" gorm:"column:user_id;not null;index:applications_user_id_idx"`
	User   User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT;"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationDependency links an application to a dependency.
// Position is the index of the dependency inside the manifest the application was created from.
type ApplicationDependency struct {
	ApplicationName string `json:"applicationName" gorm:"primaryKey;column:app_name"`
	DependencyID    string `json:"dependencyId" gorm:"primaryKey;column:dep_id;index:app_dependencies_dep_id_idx"`
	Position        int    `json:"position" gorm:"column:position;not null"`

	Application Application `json:"-" gorm:"foreignKey:ApplicationName;references:Name;constraint:OnDelete:CASCADE;"`
	Dependency  Dependency  `json:"-" gorm:"foreignKey:DependencyID;references:ID;constraint:OnDelete:RESTRICT;"`
}

func (ApplicationDependency) TableName() string {
	return "app_dependencies"
}
