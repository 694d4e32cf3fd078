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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/l3montree-dev/vulntracker/utils"
)

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
	// primaryKey is the column the generic methods look rows up by
	primaryKey string
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB, primaryKey string) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db:         db,
		primaryKey: primaryKey,
	}
}

func (g *GormRepository[ID, T]) All() ([]T, error) {
	var ts []T
	err := g.db.Order(g.primaryKey).Find(&ts).Error
	return ts, err
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Omit(clause.Associations).Save(t).Error
}

// Transaction commits if f returns nil and rolls back otherwise.
// f must only use the passed tx, sqlite runs with a single connection.
func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Omit(clause.Associations).Create(t).Error
}

// CreateBatch inserts all rows and silently skips the ones whose key already exists.
func (g *GormRepository[ID, T]) CreateBatch(tx *gorm.DB, ts []T) error {
	if len(ts) == 0 {
		return nil
	}
	return g.GetDB(tx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(ts).Error
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.Where(clause.Eq{Column: clause.Column{Name: g.primaryKey}, Value: id}).First(&t).Error

	return t, err
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	return g.GetDB(tx).Where(clause.Eq{Column: clause.Column{Name: g.primaryKey}, Value: id}).Delete(&t).Error
}
