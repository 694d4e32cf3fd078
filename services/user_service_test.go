// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"testing"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("should never delete the default user", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.userService.Delete(ctx, defaultUserID)
		assert.ErrorIs(t, err, shared.ErrDefaultUserProtected)

		_, err = env.userService.Read(ctx, defaultUserID)
		assert.NoError(t, err)
	})

	t.Run("should hand the applications of a deleted user to the default user", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectFlaskAndRequests()

		_, err := env.userService.Create(ctx, "alice@example.com")
		require.NoError(t, err)
		req := createRequest("web", "flask==2.0.1\nrequests==2.25.1")
		req.UserID = "alice@example.com"
		_, err = env.applicationService.Create(ctx, req)
		require.NoError(t, err)
		require.True(t, env.mr.Exists("app_name:web"))

		alice, err := env.userService.Read(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"web"}, alice.Applications)

		require.NoError(t, env.userService.Delete(ctx, "alice@example.com"))

		_, err = env.userService.Read(ctx, "alice@example.com")
		assert.ErrorIs(t, err, shared.ErrUserNotFound)

		// the stale summary is gone, the next read comes from storage
		assert.False(t, env.mr.Exists("app_name:web"))
		app, err := env.applicationService.Read(ctx, "web")
		require.NoError(t, err)
		assert.Equal(t, defaultUserID, app.UserID)

		defaultUser, err := env.userService.Read(ctx, defaultUserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"web"}, defaultUser.Applications)
	})

	t.Run("should return not found when deleting an unknown user", func(t *testing.T) {
		env := newTestEnv(t)
		assert.ErrorIs(t, env.userService.Delete(ctx, "nobody@example.com"), shared.ErrUserNotFound)
	})

	t.Run("should reject duplicate users", func(t *testing.T) {
		env := newTestEnv(t)
		user, err := env.userService.Create(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.ID)
		assert.Equal(t, []string{}, user.Applications)

		_, err = env.userService.Create(ctx, "alice@example.com")
		assert.ErrorIs(t, err, shared.ErrUserAlreadyExists)
	})

	t.Run("should ensure the default user idempotently", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.userService.EnsureDefaultUser(ctx))
		require.NoError(t, env.userService.EnsureDefaultUser(ctx))

		users, err := env.userRepository.All()
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestDependencyService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.expectFlaskAndRequests()

	_, err := env.userService.Create(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = env.applicationService.Create(ctx, createRequest("web", "flask==2.0.1\nrequests==2.25.1"))
	require.NoError(t, err)
	req := createRequest("api", "requests==2.25.1")
	req.UserID = "alice@example.com"
	_, err = env.applicationService.Create(ctx, req)
	require.NoError(t, err)

	t.Run("should list the dependencies of an application in manifest order", func(t *testing.T) {
		dependencies, err := env.dependencyService.ListForApplication(ctx, "web")
		require.NoError(t, err)
		require.Len(t, dependencies, 2)

		assert.Equal(t, "flask:2.0.1", dependencies[0].ID)
		assert.Equal(t, "pkg:pypi/flask@2.0.1", dependencies[0].Purl)
		assert.Equal(t, []string{"web"}, dependencies[0].Applications)
		assert.Len(t, dependencies[0].Vulnerabilities, 1)

		assert.Equal(t, "requests:2.25.1", dependencies[1].ID)
		assert.Equal(t, []string{"api", "web"}, dependencies[1].Applications)
		assert.Empty(t, dependencies[1].Vulnerabilities)
	})

	t.Run("should read a single dependency", func(t *testing.T) {
		dependency, err := env.dependencyService.Read(ctx, "requests:2.25.1")
		require.NoError(t, err)
		assert.Equal(t, "requests", dependency.Name)
		assert.Equal(t, "2.25.1", dependency.Version)

		_, err = env.dependencyService.Read(ctx, "requests:0.0.1")
		assert.ErrorIs(t, err, shared.ErrDependencyNotFound)
	})

	t.Run("should list the applications of a dependency", func(t *testing.T) {
		apps, err := env.dependencyService.ListApplicationsForDependency(ctx, "requests:2.25.1")
		require.NoError(t, err)
		assert.Equal(t, []string{"api", "web"}, utils.Map(apps, func(a dtos.ApplicationResponse) string { return a.Name }))

		_, err = env.dependencyService.ListApplicationsForDependency(ctx, "unknown:1.0")
		assert.ErrorIs(t, err, shared.ErrDependencyNotFound)
	})

	t.Run("should list the dependencies of a user", func(t *testing.T) {
		dependencies, err := env.dependencyService.ListForUser(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"requests:2.25.1"}, utils.Map(dependencies, func(d dtos.DependencyResponse) string { return d.ID }))

		_, err = env.dependencyService.ListForUser(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrUserNotFound)
	})

	t.Run("should return not found for the dependencies of an unknown application", func(t *testing.T) {
		_, err := env.dependencyService.ListForApplication(ctx, "unknown")
		assert.ErrorIs(t, err, shared.ErrApplicationNotFound)
	})
}
