// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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

package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/vulntracker/cache"
	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/database/repositories"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewUsersCommand() *cobra.Command {
	usersCmd := cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	usersCmd.AddCommand(newCreateUserCommand())
	usersCmd.AddCommand(newDeleteUserCommand())
	return &usersCmd
}

// userService wires the user service against the configured database and cache.
// The returned cleanup closes the cache connection.
func userService(cfg config.Config) (shared.UserService, func(), error) {
	db, err := shared.DatabaseFactory(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}

	store, err := cache.NewStore(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create cache store")
	}

	service := services.NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewApplicationRepository(db),
		cache.NewVulnerabilityCache(store, cfg.SummaryCacheTTL),
		cfg,
	)
	return service, func() { store.Close() }, nil
}

func newCreateUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <id>",
		Short: "Creates a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			service, cleanup, err := userService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := service.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			slog.Info("user created", "id", user.ID)
			fmt.Fprintln(cmd.OutOrStdout(), user.ID)
			return nil
		},
	}
}

func newDeleteUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Deletes a user and reassigns its applications to the default user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			service, cleanup, err := userService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			// the default user might not exist yet if the server never ran against this database
			if err := service.EnsureDefaultUser(cmd.Context()); err != nil {
				return err
			}
			if err := service.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			slog.Info("user deleted", "id", args[0])
			return nil
		},
	}
}
