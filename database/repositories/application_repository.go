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
	"gorm.io/gorm/clause"
)

type applicationRepository struct {
	db *gorm.DB
	utils.Repository[string, models.Application, *gorm.DB]
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{
		db:         db,
		Repository: newGormRepository[string, models.Application](db, "name"),
	}
}

func (r *applicationRepository) FindByName(tx *gorm.DB, name string) (models.Application, error) {
	var app models.Application
	err := r.GetDB(tx).Where("name = ?", name).First(&app).Error
	return app, err
}

func (r *applicationRepository) ListByUser(tx *gorm.DB, userID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.GetDB(tx).Where("user_id = ?", userID).Order("created_at, name").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListNamesByUser(tx *gorm.DB, userID string) ([]string, error) {
	names := []string{}
	err := r.GetDB(tx).Model(&models.Application{}).Where("user_id = ?", userID).Order("name").Pluck("name", &names).Error
	return names, err
}

func (r *applicationRepository) ListForDependency(tx *gorm.DB, dependencyID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.GetDB(tx).
		Joins("JOIN app_dependencies ON app_dependencies.app_name = applications.name").
		Where("app_dependencies.dep_id = ?", dependencyID).
		Order("applications.name").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) LinkDependencies(tx *gorm.DB, links []models.ApplicationDependency) error {
	if len(links) == 0 {
		return nil
	}
	return r.GetDB(tx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (r *applicationRepository) DeleteByName(tx *gorm.DB, name string) error {
	res := r.GetDB(tx).Where("name = ?", name).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) ReassignApplications(tx *gorm.DB, fromUserID string, toUserID string) (int64, error) {
	res := r.GetDB(tx).Model(&models.Application{}).Where("user_id = ?", fromUserID).Update("user_id", toUserID)
	return res.RowsAffected, res.Error
}
