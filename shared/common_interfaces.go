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

package shared

import (
	"context"
	"time"

	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/utils"
)

type UserRepository interface {
	utils.Repository[string, models.User, DB]
	FindByID(tx DB, id string) (models.User, error)
}

type ApplicationRepository interface {
	utils.Repository[string, models.Application, DB]
	FindByName(tx DB, name string) (models.Application, error)
	ListByUser(tx DB, userID string) ([]models.Application, error)
	ListNamesByUser(tx DB, userID string) ([]string, error)
	ListForDependency(tx DB, dependencyID string) ([]models.Application, error)
	// LinkDependencies ignores links which already exist
	LinkDependencies(tx DB, links []models.ApplicationDependency) error
	// DeleteByName returns gorm.ErrRecordNotFound if no row was deleted
	DeleteByName(tx DB, name string) error
	ReassignApplications(tx DB, fromUserID string, toUserID string) (int64, error)
}

type DependencyRepository interface {
	utils.Repository[string, models.Dependency, DB]
	FindByID(tx DB, id string) (models.Dependency, error)
	// CreateBatch never overwrites an existing row. Concurrent creates of the same id converge to one row.
	CreateBatch(tx DB, dependencies []models.Dependency) error
	ListByApplication(tx DB, applicationName string) ([]models.Dependency, error)
	ListByUser(tx DB, userID string) ([]models.Dependency, error)
	// ApplicationNames returns the names of the applications using each of the given dependencies
	ApplicationNames(tx DB, dependencyIDs []string) (map[string][]string, error)
}

// AdvisoryClient queries the advisory service for a single package version.
// A confirmed empty result is returned as an empty, non-nil slice. Failures wrap ErrAdvisoryUnavailable.
type AdvisoryClient interface {
	Lookup(ctx context.Context, pkg string, version string) ([]dtos.Advisory, error)
}

// VulnerabilityCache never returns backend errors from reads or writes, they degrade to misses.
type VulnerabilityCache interface {
	GetAdvisories(ctx context.Context, pkg string, version string) ([]dtos.Advisory, bool)
	PutAdvisories(ctx context.Context, pkg string, version string, advisories []dtos.Advisory)
	// GetSummary extends the ttl of the key on a hit. A ttl of zero uses the configured default.
	GetSummary(ctx context.Context, key string, ttl time.Duration) (string, bool)
	SetSummary(ctx context.Context, key string, value string, ttl time.Duration)
	DeleteSummary(ctx context.Context, key string) error
}

type VulnerabilityResolver interface {
	Resolve(ctx context.Context, packages []dtos.Package) (dtos.Resolution, error)
}

type ApplicationService interface {
	Create(ctx context.Context, req dtos.CreateApplicationRequest) (dtos.ApplicationResponse, error)
	Read(ctx context.Context, name string) (dtos.ApplicationResponse, error)
	Delete(ctx context.Context, name string) error
	ListByUser(ctx context.Context, userID string) ([]dtos.ApplicationResponse, error)
}

type DependencyService interface {
	Read(ctx context.Context, id string) (dtos.DependencyResponse, error)
	ListForApplication(ctx context.Context, applicationName string) ([]dtos.DependencyResponse, error)
	ListForUser(ctx context.Context, userID string) ([]dtos.DependencyResponse, error)
	ListApplicationsForDependency(ctx context.Context, id string) ([]dtos.ApplicationResponse, error)
}

type UserService interface {
	Create(ctx context.Context, id string) (dtos.UserResponse, error)
	Read(ctx context.Context, id string) (dtos.UserResponse, error)
	Delete(ctx context.Context, id string) error
	EnsureDefaultUser(ctx context.Context) error
}
