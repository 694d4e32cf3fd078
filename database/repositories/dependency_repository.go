// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/utils"
	"gorm.io/gorm"
)

type dependencyRepository struct {
	db *gorm.DB
	*GormRepository[string, models.Dependency]
}

var _ utils.Repository[string, models.Dependency, *gorm.DB] = (*dependencyRepository)(nil)

func NewDependencyRepository(db *gorm.DB) *dependencyRepository {
	return &dependencyRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Dependency](db, "id"),
	}
}

func (r *dependencyRepository) FindByID(tx *gorm.DB, id string) (models.Dependency, error) {
	var dependency models.Dependency
	err := r.GetDB(tx).Where("id = ?", id).First(&dependency).Error
	return dependency, err
}

// ListByApplication returns the dependencies in manifest order.
func (r *dependencyRepository) ListByApplication(tx *gorm.DB, applicationName string) ([]models.Dependency, error) {
	dependencies := []models.Dependency{}
	err := r.GetDB(tx).
		Joins("JOIN app_dependencies ON app_dependencies.dep_id = dependencies.id").
		Where("app_dependencies.app_name = ?", applicationName).
		Order("app_dependencies.position").
		Find(&dependencies).Error
	return dependencies, err
}

func (r *dependencyRepository) ListByUser(tx *gorm.DB, userID string) ([]models.Dependency, error) {
	db := r.GetDB(tx)
	dependencies := []models.Dependency{}
	usedByUser := db.Table("app_dependencies").
		Select("app_dependencies.dep_id").
		Joins("JOIN applications ON applications.name = app_dependencies.app_name").
		Where("applications.user_id = ?", userID)

	err := db.Where("id IN (?)", usedByUser).Order("id").Find(&dependencies).Error
	return dependencies, err
}

func (r *dependencyRepository) ApplicationNames(tx *gorm.DB, dependencyIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(dependencyIDs))
	if len(dependencyIDs) == 0 {
		return result, nil
	}

	var links []models.ApplicationDependency
	err := r.GetDB(tx).Select("app_name", "dep_id").
		Where("dep_id IN ?", dependencyIDs).
		Order("app_name").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		result[link.DependencyID] = append(result[link.DependencyID], link.ApplicationName)
	}
	return result, nil
}
