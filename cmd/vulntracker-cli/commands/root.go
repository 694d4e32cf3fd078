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
	"os"
	"strings"

	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:          "vulntracker-cli",
	Short:        "Management cli",
	Long:         `The vulntracker cli manages the database of a vulntracker instance and scans manifests without persisting them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("db-driver", "", "Database driver (postgres or sqlite), overrides DB_DRIVER")
	rootCmd.PersistentFlags().String("sqlite-path", "", "Path of the sqlite database, overrides SQLITE_PATH")
	rootCmd.PersistentFlags().String("cache-backend", "", "Cache backend (redis or memory), overrides CACHE_BACKEND")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address, overrides REDIS_ADDR")
	rootCmd.PersistentFlags().String("osv-url", "", "OSV query endpoint, overrides OSV_URL")
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig reads the .env file and the environment. Flags which were set explicitly win over both.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	shared.LoadConfig() // nolint: errcheck

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		// --cache-backend maps to CACHE_BACKEND
		os.Setenv(strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), f.Value.String()) // nolint: errcheck
	})

	return config.Load()
}
