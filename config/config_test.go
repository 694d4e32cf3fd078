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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to the defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
		assert.Equal(t, "default@user.com", cfg.DefaultUserID)
		assert.Equal(t, "https://api.osv.dev/v1/query", cfg.OSVURL)
		assert.Equal(t, "PyPI", cfg.OSVEcosystem)
		assert.Equal(t, int64(500*1024), cfg.MaxManifestSize)
		assert.Equal(t, 15*time.Second, cfg.RedisDialTimeout)
		assert.Equal(t, 5, cfg.RedisPoolSize)
		assert.Equal(t, 20.0, cfg.AdvisoryRateLimit)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("SUMMARY_CACHE_TTL", "1m")
		t.Setenv("CACHE_BACKEND", "memory")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("RESOLVER_CONCURRENCY", "3")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, time.Minute, cfg.SummaryCacheTTL)
		assert.Equal(t, "memory", cfg.CacheBackend)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, 3, cfg.ResolverConcurrency)
	})

	t.Run("should reject unknown backends", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		_, err := Load()
		assert.Error(t, err)
	})
}
