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

package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/cmd/vulntracker/api"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/controllers"
	"github.com/l3montree-dev/vulntracker/database/repositories"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/integrationtestutil"
	"github.com/l3montree-dev/vulntracker/middlewares"
	"github.com/l3montree-dev/vulntracker/services"
	"github.com/l3montree-dev/vulntracker/vulndb"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOSVServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var query dtos.OSVQuery
		if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if query.Package.Name == "flask" && query.Version == "2.2.0" {
			io.WriteString(w, `{"vulns":[{"id":"GHSA-m2qf-hxjv-5gpq"}]}`) //nolint:errcheck
			return
		}
		io.WriteString(w, `{}`) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db := integrationtestutil.InitSQLiteDatabase(t)
	osv := newOSVServer(t)

	cfg := config.Config{
		CacheBackend:        "memory",
		SummaryCacheTTL:     30 * time.Second,
		OSVURL:              osv.URL,
		OSVEcosystem:        "PyPI",
		AdvisoryTimeout:     time.Second,
		ResolverConcurrency: 4,
		DefaultUserID:       "default@user.com",
		MaxManifestSize:     1024,
	}

	store, err := cache.NewMemoryStore(100)
	require.NoError(t, err)
	vulnerabilityCache := cache.NewVulnerabilityCache(store, cfg.SummaryCacheTTL)
	advisoryClient := vulndb.NewOSVService(vulndb.OSVOptions{
		URL:             cfg.OSVURL,
		Ecosystem:       cfg.OSVEcosystem,
		Timeout:         cfg.AdvisoryTimeout,
		InitialInterval: time.Millisecond,
	})

	userRepository := repositories.NewUserRepository(db)
	applicationRepository := repositories.NewApplicationRepository(db)
	dependencyRepository := repositories.NewDependencyRepository(db)

	resolver := services.NewVulnerabilityResolver(vulnerabilityCache, advisoryClient, cfg)
	applicationService := services.NewApplicationService(applicationRepository, dependencyRepository, userRepository, resolver, vulnerabilityCache, cfg)
	dependencyService := services.NewDependencyService(dependencyRepository, applicationRepository, userRepository)
	userService := services.NewUserService(userRepository, applicationRepository, vulnerabilityCache, cfg)
	require.NoError(t, userService.EnsureDefaultUser(t.Context()))

	srv := api.Server{Echo: middlewares.Server()}
	apiV1Router := NewAPIV1Router(srv, db, cfg)
	NewApplicationRouter(apiV1Router, controllers.NewApplicationController(applicationService, dependencyService, cfg))
	NewDependencyRouter(apiV1Router, controllers.NewDependencyController(dependencyService))
	NewUserRouter(apiV1Router, controllers.NewUserController(userService, applicationService, dependencyService))

	return srv.Echo
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createApplicationRequest(t *testing.T, name, userID, manifest string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("name", name))
	require.NoError(t, writer.WriteField("user_id", userID))
	part, err := writer.CreateFormFile("file", "requirements.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(manifest))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestAPIV1(t *testing.T) {
	e := newTestServer(t)

	t.Run("health and info", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/api/v1/health/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/info", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var info InfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "sqlite", info.Database.Driver)
		assert.Equal(t, "healthy", info.Database.Status)
		assert.Equal(t, "memory", info.Cache.Backend)
	})

	t.Run("application lifecycle", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodPost, "/api/v1/users/", strings.NewReader(`{"id":"alice@example.com"}`)))
		// missing content type
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/", strings.NewReader(`{"id":"alice@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec = do(e, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = do(e, createApplicationRequest(t, "my-app", "alice@example.com", "Flask==2.2.0\nrequests==2.31.0\n"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var application dtos.ApplicationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &application))
		assert.True(t, application.IsVulnerable)
		assert.Equal(t, "alice@example.com", application.UserID)

		rec = do(e, createApplicationRequest(t, "my-app", "alice@example.com", "flask==2.2.0\n"))
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = do(e, createApplicationRequest(t, "other-app", "alice@example.com", "flask\n"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, createApplicationRequest(t, "other-app", "bob@example.com", "flask==2.2.0\n"))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/applications/my-app", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_vulnerable":true`)

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/applications/my-app/dependencies/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var dependencies []dtos.DependencyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dependencies))
		require.Len(t, dependencies, 2)
		assert.Equal(t, "flask:2.2.0", dependencies[0].ID)
		assert.Len(t, dependencies[0].Vulnerabilities, 1)
		assert.Equal(t, "requests:2.31.0", dependencies[1].ID)
		assert.Empty(t, dependencies[1].Vulnerabilities)

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/dependencies/flask:2.2.0/applications/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"my-app"`)

		rec = do(e, httptest.NewRequest(http.MethodDelete, "/api/v1/users/alice@example.com/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/users/default@user.com/applications/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":"default@user.com"`)

		rec = do(e, httptest.NewRequest(http.MethodDelete, "/api/v1/users/default@user.com/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(e, httptest.NewRequest(http.MethodDelete, "/api/v1/applications/my-app/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/applications/my-app/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		// dependencies outlive the applications using them
		rec = do(e, httptest.NewRequest(http.MethodGet, "/api/v1/dependencies/flask:2.2.0/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
