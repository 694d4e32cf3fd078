// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/transformer"
	"github.com/l3montree-dev/vulntracker/utils"
	"gorm.io/gorm"
)

type dependencyService struct {
	dependencyRepository  shared.DependencyRepository
	applicationRepository shared.ApplicationRepository
	userRepository        shared.UserRepository
}

var _ shared.DependencyService = (*dependencyService)(nil)

func NewDependencyService(dependencyRepository shared.DependencyRepository, applicationRepository shared.ApplicationRepository, userRepository shared.UserRepository) *dependencyService {
	return &dependencyService{
		dependencyRepository:  dependencyRepository,
		applicationRepository: applicationRepository,
		userRepository:        userRepository,
	}
}

func (s *dependencyService) Read(ctx context.Context, id string) (dtos.DependencyResponse, error) {
	db := s.dependencyRepository.GetDB(nil).WithContext(ctx)
	dependency, err := s.dependencyRepository.FindByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.DependencyResponse{}, fmt.Errorf("%w: %s", shared.ErrDependencyNotFound, id)
		}
		return dtos.DependencyResponse{}, storageFailure("could not read dependency", err)
	}

	names, err := s.dependencyRepository.ApplicationNames(db, []string{id})
	if err != nil {
		return dtos.DependencyResponse{}, storageFailure("could not read applications of dependency", err)
	}
	return transformer.DependencyModelToDTO(dependency, names[id])
}

func (s *dependencyService) ListForApplication(ctx context.Context, applicationName string) ([]dtos.DependencyResponse, error) {
	db := s.applicationRepository.GetDB(nil).WithContext(ctx)
	if _, err := s.applicationRepository.FindByName(db, applicationName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrApplicationNotFound, applicationName)
		}
		return nil, storageFailure("could not read application", err)
	}

	dependencies, err := s.dependencyRepository.ListByApplication(db, applicationName)
	if err != nil {
		return nil, storageFailure("could not list dependencies", err)
	}
	return s.withApplications(db, dependencies)
}

func (s *dependencyService) ListForUser(ctx context.Context, userID string) ([]dtos.DependencyResponse, error) {
	db := s.userRepository.GetDB(nil).WithContext(ctx)
	if _, err := s.userRepository.FindByID(db, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, userID)
		}
		return nil, storageFailure("could not read user", err)
	}

	dependencies, err := s.dependencyRepository.ListByUser(db, userID)
	if err != nil {
		return nil, storageFailure("could not list dependencies", err)
	}
	return s.withApplications(db, dependencies)
}

func (s *dependencyService) ListApplicationsForDependency(ctx context.Context, id string) ([]dtos.ApplicationResponse, error) {
	db := s.dependencyRepository.GetDB(nil).WithContext(ctx)
	if _, err := s.dependencyRepository.FindByID(db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrDependencyNotFound, id)
		}
		return nil, storageFailure("could not read dependency", err)
	}

	apps, err := s.applicationRepository.ListForDependency(db, id)
	if err != nil {
		return nil, storageFailure("could not list applications", err)
	}
	return transformer.ApplicationModelsToDTOs(apps), nil
}

func (s *dependencyService) withApplications(db shared.DB, dependencies []models.Dependency) ([]dtos.DependencyResponse, error) {
	names, err := s.dependencyRepository.ApplicationNames(db, utils.Map(dependencies, func(d models.Dependency) string { return d.ID }))
	if err != nil {
		return nil, storageFailure("could not read applications of dependencies", err)
	}
	return transformer.DependencyModelsToDTOs(dependencies, names)
}
