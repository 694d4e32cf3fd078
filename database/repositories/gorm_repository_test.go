// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/integrationtestutil"
	"github.com/l3montree-dev/vulntracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createDependency(t *testing.T, repo *dependencyRepository, name, version string, advisories ...dtos.Advisory) models.Dependency {
	t.Helper()
	dep, err := models.NewDependency(dtos.ResolvedDependency{
		Package:    dtos.Package{Name: name, Version: version},
		Advisories: advisories,
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateBatch(nil, []models.Dependency{dep}))
	return dep
}

func TestGormRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	users := NewUserRepository(db)

	t.Run("should read by primary key", func(t *testing.T) {
		require.NoError(t, users.Create(nil, &models.User{ID: "alice@example.com", CreatedAt: time.Now()}))

		user, err := users.Read("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.ID)

		_, err = users.Read("nobody@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should roll back if the transaction function fails", func(t *testing.T) {
		errAbort := errors.New("abort")
		err := users.Transaction(func(tx *gorm.DB) error {
			require.NoError(t, users.Create(tx, &models.User{ID: "bob@example.com", CreatedAt: time.Now()}))
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		_, err = users.Read("bob@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should translate primary key violations", func(t *testing.T) {
		err := users.Create(nil, &models.User{ID: "alice@example.com", CreatedAt: time.Now()})
		assert.True(t, database.IsDuplicateKeyError(err))
	})

	t.Run("should delete by primary key", func(t *testing.T) {
		require.NoError(t, users.Create(nil, &models.User{ID: "carol@example.com", CreatedAt: time.Now()}))
		require.NoError(t, users.Delete(nil, "carol@example.com"))

		all, err := users.All()
		require.NoError(t, err)
		assert.Equal(t, []string{"alice@example.com"}, utils.Map(all, func(u models.User) string { return u.ID }))
	})
}

func TestDependencyRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	users := NewUserRepository(db)
	apps := NewApplicationRepository(db)
	deps := NewDependencyRepository(db)

	require.NoError(t, users.Create(nil, &models.User{ID: "alice@example.com", CreatedAt: time.Now()}))
	require.NoError(t, users.Create(nil, &models.User{ID: "bob@example.com", CreatedAt: time.Now()}))

	flask := createDependency(t, deps, "flask", "2.0.1", dtos.Advisory(`{"id":"GHSA-m2qf-hxjv-5gpq"}`))
	requests := createDependency(t, deps, "requests", "2.25.1")
	django := createDependency(t, deps, "django", "4.2.0")

	require.NoError(t, apps.Create(nil, &models.Application{Name: "web", UserID: "alice@example.com", CreatedAt: time.Now()}))
	require.NoError(t, apps.Create(nil, &models.Application{Name: "api", UserID: "bob@example.com", CreatedAt: time.Now()}))
	require.NoError(t, apps.LinkDependencies(nil, []models.ApplicationDependency{
		{ApplicationName: "web", DependencyID: requests.ID, Position: 0},
		{ApplicationName: "web", DependencyID: flask.ID, Position: 1},
		{ApplicationName: "api", DependencyID: django.ID, Position: 0},
		{ApplicationName: "api", DependencyID: requests.ID, Position: 1},
	}))

	t.Run("should never overwrite an existing snapshot", func(t *testing.T) {
		replacement, err := models.NewDependency(dtos.ResolvedDependency{Package: dtos.Package{Name: "flask", Version: "2.0.1"}})
		require.NoError(t, err)
		require.NoError(t, deps.CreateBatch(nil, []models.Dependency{replacement}))

		stored, err := deps.FindByID(nil, "flask:2.0.1")
		require.NoError(t, err)
		advisories, err := stored.Advisories()
		require.NoError(t, err)
		assert.Len(t, advisories, 1)
	})

	t.Run("should list the dependencies of an application in manifest order", func(t *testing.T) {
		list, err := deps.ListByApplication(nil, "web")
		require.NoError(t, err)
		assert.Equal(t, []string{"requests:2.25.1", "flask:2.0.1"}, utils.Map(list, func(d models.Dependency) string { return d.ID }))
	})

	t.Run("should list the dependencies of a user once", func(t *testing.T) {
		list, err := deps.ListByUser(nil, "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"django:4.2.0", "requests:2.25.1"}, utils.Map(list, func(d models.Dependency) string { return d.ID }))
	})

	t.Run("should map dependencies to application names", func(t *testing.T) {
		names, err := deps.ApplicationNames(nil, []string{requests.ID, flask.ID, "unknown:1.0"})
		require.NoError(t, err)
		assert.Equal(t, []string{"api", "web"}, names[requests.ID])
		assert.Equal(t, []string{"web"}, names[flask.ID])
		assert.Empty(t, names["unknown:1.0"])
	})

	t.Run("should list applications for a dependency", func(t *testing.T) {
		list, err := apps.ListForDependency(nil, requests.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"api", "web"}, utils.Map(list, func(a models.Application) string { return a.Name }))
	})

	t.Run("should ignore links which already exist", func(t *testing.T) {
		err := apps.LinkDependencies(nil, []models.ApplicationDependency{{ApplicationName: "web", DependencyID: flask.ID, Position: 7}})
		require.NoError(t, err)

		list, err := deps.ListByApplication(nil, "web")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("should run the list queries on the given session", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tx := db.WithContext(ctx)

		_, err := deps.ListByApplication(tx, "web")
		assert.ErrorIs(t, err, context.Canceled)
		_, err = deps.ListByUser(tx, "bob@example.com")
		assert.ErrorIs(t, err, context.Canceled)
		_, err = deps.ApplicationNames(tx, []string{requests.ID})
		assert.ErrorIs(t, err, context.Canceled)
		_, err = apps.ListForDependency(tx, requests.ID)
		assert.ErrorIs(t, err, context.Canceled)
		_, err = apps.ListByUser(tx, "alice@example.com")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestApplicationRepository(t *testing.T) {
	db := integrationtestutil.InitSQLiteDatabase(t)
	users := NewUserRepository(db)
	apps := NewApplicationRepository(db)
	deps := NewDependencyRepository(db)

	require.NoError(t, users.Create(nil, &models.User{ID: "default@user.com", CreatedAt: time.Now()}))
	require.NoError(t, users.Create(nil, &models.User{ID: "alice@example.com", CreatedAt: time.Now()}))

	t.Run("should reject applications of unknown users", func(t *testing.T) {
		err := apps.Create(nil, &models.Application{Name: "orphan", UserID: "nobody@example.com", CreatedAt: time.Now()})
		assert.Error(t, err)
	})

	t.Run("should cascade the links but keep the dependency on delete", func(t *testing.T) {
		flask := createDependency(t, deps, "flask", "2.0.1")
		require.NoError(t, apps.Create(nil, &models.Application{Name: "web", UserID: "alice@example.com", CreatedAt: time.Now()}))
		require.NoError(t, apps.LinkDependencies(nil, []models.ApplicationDependency{{ApplicationName: "web", DependencyID: flask.ID}}))

		require.NoError(t, apps.DeleteByName(nil, "web"))

		_, err := apps.FindByName(nil, "web")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		names, err := deps.ApplicationNames(nil, []string{flask.ID})
		require.NoError(t, err)
		assert.Empty(t, names[flask.ID])
		_, err = deps.FindByID(nil, flask.ID)
		assert.NoError(t, err)
	})

	t.Run("should report deleting an unknown application as not found", func(t *testing.T) {
		assert.ErrorIs(t, apps.DeleteByName(nil, "unknown"), gorm.ErrRecordNotFound)
	})

	t.Run("should reassign applications to another user", func(t *testing.T) {
		require.NoError(t, apps.Create(nil, &models.Application{Name: "a", UserID: "alice@example.com", CreatedAt: time.Now()}))
		require.NoError(t, apps.Create(nil, &models.Application{Name: "b", UserID: "alice@example.com", CreatedAt: time.Now()}))

		names, err := apps.ListNamesByUser(nil, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, names)

		n, err := apps.ReassignApplications(nil, "alice@example.com", "default@user.com")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		list, err := apps.ListByUser(nil, "default@user.com")
		require.NoError(t, err)
		assert.Len(t, list, 2)
		list, err = apps.ListByUser(nil, "alice@example.com")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
