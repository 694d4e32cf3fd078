// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/monitoring"
	"github.com/l3montree-dev/vulntracker/normalize"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/transformer"
	"github.com/l3montree-dev/vulntracker/utils"
	"gorm.io/gorm"
)

type applicationService struct {
	applicationRepository shared.ApplicationRepository
	dependencyRepository  shared.DependencyRepository
	userRepository        shared.UserRepository
	resolver              shared.VulnerabilityResolver
	cache                 shared.VulnerabilityCache
	summaryTTL            time.Duration
}

var _ shared.ApplicationService = (*applicationService)(nil)

func NewApplicationService(
	applicationRepository shared.ApplicationRepository,
	dependencyRepository shared.DependencyRepository,
	userRepository shared.UserRepository,
	resolver shared.VulnerabilityResolver,
	cache shared.VulnerabilityCache,
	cfg config.Config,
) *applicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		dependencyRepository:  dependencyRepository,
		userRepository:        userRepository,
		resolver:              resolver,
		cache:                 cache,
		summaryTTL:            cfg.SummaryCacheTTL,
	}
}

func storageFailure(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, shared.ErrStorageFailure, err)
}

// Create registers a new application: it resolves the advisories of every manifest entry
// and persists the application, its dependencies and the links in a single transaction.
// Nothing is persisted if any step fails.
func (s *applicationService) Create(ctx context.Context, req dtos.CreateApplicationRequest) (dtos.ApplicationResponse, error) {
	if err := shared.V.Struct(req); err != nil {
		return dtos.ApplicationResponse{}, err
	}

	db := s.applicationRepository.GetDB(nil).WithContext(ctx)
	if _, err := s.userRepository.FindByID(db, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.ApplicationResponse{}, fmt.Errorf("%w: %s", shared.ErrUserNotFound, req.UserID)
		}
		return dtos.ApplicationResponse{}, storageFailure("could not read user", err)
	}
	if _, err := s.applicationRepository.FindByName(db, req.Name); err == nil {
		return dtos.ApplicationResponse{}, fmt.Errorf("%w: %s", shared.ErrDuplicateApplication, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.ApplicationResponse{}, storageFailure("could not read application", err)
	}

	packages, err := normalize.ParseRequirements(req.Manifest)
	if err != nil {
		return dtos.ApplicationResponse{}, err
	}

	resolution, err := s.resolver.Resolve(ctx, packages)
	if err != nil {
		return dtos.ApplicationResponse{}, err
	}

	resolved := utils.UniqBy(resolution.Dependencies, func(d dtos.ResolvedDependency) string { return d.ID() })
	dependencies := make([]models.Dependency, 0, len(resolved))
	links := make([]models.ApplicationDependency, 0, len(resolved))
	for i, r := range resolved {
		dependency, err := models.NewDependency(r)
		if err != nil {
			return dtos.ApplicationResponse{}, err
		}
		dependencies = append(dependencies, dependency)
		links = append(links, models.ApplicationDependency{
			ApplicationName: req.Name,
			DependencyID:    dependency.ID,
			Position:        i,
		})
	}

	// concurrent creates sharing dependencies insert them in the same order and cannot deadlock.
	// the links keep the manifest position.
	slices.SortFunc(dependencies, func(a, b models.Dependency) int { return strings.Compare(a.ID, b.ID) })

	app := models.Application{
		Name:         req.Name,
		Description:  utils.EmptyThenNil(utils.SafeDereference(req.Description)),
		IsVulnerable: resolution.IsVulnerable(),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UserID:       req.UserID,
	}

	err = s.applicationRepository.Transaction(func(tx shared.DB) error {
		tx = tx.WithContext(ctx)
		if err := s.applicationRepository.Create(tx, &app); err != nil {
			if database.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: %s", shared.ErrDuplicateApplication, req.Name)
			}
			return storageFailure("could not create application", err)
		}
		// existing dependencies keep the snapshot from when they were first seen
		if err := s.dependencyRepository.CreateBatch(tx, dependencies); err != nil {
			return storageFailure("could not create dependencies", err)
		}
		if err := s.applicationRepository.LinkDependencies(tx, links); err != nil {
			return storageFailure("could not link dependencies", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("could not create application", "name", req.Name, "err", err)
		return dtos.ApplicationResponse{}, err
	}

	monitoring.ApplicationsCreated.Inc()
	slog.Info("application created", "name", app.Name, "userID", app.UserID, "dependencies", len(dependencies), "isVulnerable", app.IsVulnerable)

	response := transformer.ApplicationModelToDTO(app)
	s.cacheSummary(ctx, response)
	return response, nil
}

func (s *applicationService) cacheSummary(ctx context.Context, response dtos.ApplicationResponse) {
	b, err := json.Marshal(response)
	if err != nil {
		slog.Warn("could not encode application summary", "name", response.Name, "err", err)
		return
	}
	s.cache.SetSummary(ctx, cache.SummaryKey(response.Name), string(b), s.summaryTTL)
}

// Read serves the summary from the cache and falls back to storage on a miss.
func (s *applicationService) Read(ctx context.Context, name string) (dtos.ApplicationResponse, error) {
	if val, ok := s.cache.GetSummary(ctx, cache.SummaryKey(name), s.summaryTTL); ok {
		var response dtos.ApplicationResponse
		if err := json.Unmarshal([]byte(val), &response); err == nil {
			return response, nil
		}
		slog.Warn("cached application summary is not valid json", "name", name)
	}

	app, err := s.applicationRepository.FindByName(s.applicationRepository.GetDB(nil).WithContext(ctx), name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.ApplicationResponse{}, fmt.Errorf("%w: %s", shared.ErrApplicationNotFound, name)
		}
		return dtos.ApplicationResponse{}, storageFailure("could not read application", err)
	}

	response := transformer.ApplicationModelToDTO(app)
	s.cacheSummary(ctx, response)
	return response, nil
}

// Delete removes the application and its links. The dependencies stay.
// The summary is evicted even if the application does not exist.
func (s *applicationService) Delete(ctx context.Context, name string) error {
	err := s.applicationRepository.DeleteByName(s.applicationRepository.GetDB(nil).WithContext(ctx), name)

	if cacheErr := s.cache.DeleteSummary(ctx, cache.SummaryKey(name)); cacheErr != nil {
		slog.Warn("could not evict application summary", "name", name, "err", cacheErr)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrApplicationNotFound, name)
		}
		return storageFailure("could not delete application", err)
	}
	slog.Info("application deleted", "name", name)
	return nil
}

func (s *applicationService) ListByUser(ctx context.Context, userID string) ([]dtos.ApplicationResponse, error) {
	db := s.userRepository.GetDB(nil).WithContext(ctx)
	if _, err := s.userRepository.FindByID(db, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, userID)
		}
		return nil, storageFailure("could not read user", err)
	}

	apps, err := s.applicationRepository.ListByUser(db, userID)
	if err != nil {
		return nil, storageFailure("could not list applications", err)
	}
	return transformer.ApplicationModelsToDTOs(apps), nil
}
