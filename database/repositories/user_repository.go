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

type userRepository struct {
	db *gorm.DB
	utils.Repository[string, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[string, models.User](db, "id"),
	}
}

func (r *userRepository) FindByID(tx *gorm.DB, id string) (models.User, error) {
	var user models.User
	err := r.GetDB(tx).Where("id = ?", id).First(&user).Error
	return user, err
}
