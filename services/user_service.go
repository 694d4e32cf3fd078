// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/database/models"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/transformer"
	"gorm.io/gorm"
)

type userService struct {
	userRepository        shared.UserRepository
	applicationRepository shared.ApplicationRepository
	cache                 shared.VulnerabilityCache
	defaultUserID         string
}

var _ shared.UserService = (*userService)(nil)

func NewUserService(userRepository shared.UserRepository, applicationRepository shared.ApplicationRepository, cache shared.VulnerabilityCache, cfg config.Config) *userService {
	return &userService{
		userRepository:        userRepository,
		applicationRepository: applicationRepository,
		cache:                 cache,
		defaultUserID:         cfg.DefaultUserID,
	}
}

func (s *userService) Create(ctx context.Context, id string) (dtos.UserResponse, error) {
	if err := shared.V.Struct(dtos.UserCreateRequest{ID: id}); err != nil {
		return dtos.UserResponse{}, err
	}

	user := models.User{ID: id, CreatedAt: time.Now().UTC().Truncate(time.Microsecond)}
	if err := s.userRepository.Create(s.userRepository.GetDB(nil).WithContext(ctx), &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.UserResponse{}, fmt.Errorf("%w: %s", shared.ErrUserAlreadyExists, id)
		}
		return dtos.UserResponse{}, storageFailure("could not create user", err)
	}
	slog.Info("user created", "userID", id)
	return transformer.UserModelToDTO(user, nil), nil
}

func (s *userService) Read(ctx context.Context, id string) (dtos.UserResponse, error) {
	db := s.userRepository.GetDB(nil).WithContext(ctx)
	user, err := s.userRepository.FindByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.UserResponse{}, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
		}
		return dtos.UserResponse{}, storageFailure("could not read user", err)
	}

	names, err := s.applicationRepository.ListNamesByUser(db, id)
	if err != nil {
		return dtos.UserResponse{}, storageFailure("could not list applications of user", err)
	}
	return transformer.UserModelToDTO(user, names), nil
}

// Delete hands all applications of the user over to the default user before deleting it.
// The default user itself cannot be deleted.
func (s *userService) Delete(ctx context.Context, id string) error {
	var reassigned []string
	err := s.userRepository.Transaction(func(tx shared.DB) error {
		tx = tx.WithContext(ctx)
		if _, err := s.userRepository.FindByID(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
			}
			return storageFailure("could not read user", err)
		}
		if id == s.defaultUserID {
			return shared.ErrDefaultUserProtected
		}
		if err := s.ensureDefaultUser(tx); err != nil {
			return err
		}

		names, err := s.applicationRepository.ListNamesByUser(tx, id)
		if err != nil {
			return storageFailure("could not list applications of user", err)
		}
		if _, err := s.applicationRepository.ReassignApplications(tx, id, s.defaultUserID); err != nil {
			return storageFailure("could not reassign applications", err)
		}
		if err := s.userRepository.Delete(tx, id); err != nil {
			return storageFailure("could not delete user", err)
		}
		reassigned = names
		return nil
	})
	if err != nil {
		return err
	}

	// the cached summaries still name the deleted user
	for _, name := range reassigned {
		if err := s.cache.DeleteSummary(ctx, cache.SummaryKey(name)); err != nil {
			slog.Warn("could not evict application summary", "name", name, "err", err)
		}
	}
	slog.Info("user deleted", "userID", id, "reassignedApplications", len(reassigned))
	return nil
}

func (s *userService) ensureDefaultUser(tx shared.DB) error {
	_, err := s.userRepository.FindByID(tx, s.defaultUserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storageFailure("could not read default user", err)
	}

	err = s.userRepository.Create(tx, &models.User{ID: s.defaultUserID, CreatedAt: time.Now().UTC().Truncate(time.Microsecond)})
	if err != nil && !database.IsDuplicateKeyError(err) {
		return storageFailure("could not create default user", err)
	}
	return nil
}

// EnsureDefaultUser creates the default user if it does not exist yet.
func (s *userService) EnsureDefaultUser(ctx context.Context) error {
	return s.ensureDefaultUser(s.userRepository.GetDB(nil).WithContext(ctx))
}
