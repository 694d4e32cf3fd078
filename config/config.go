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
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Filled at build time
var (
	Version   = "dev"
	Commit    = "unknown"
	Branch    = "unknown"
	BuildDate = "unknown"
)

type Config struct {
	Port int `mapstructure:"PORT"`

	DBDriver           string        `mapstructure:"DB_DRIVER"`
	SQLitePath         string        `mapstructure:"SQLITE_PATH"`
	PostgresHost       string        `mapstructure:"POSTGRES_HOST"`
	PostgresPort       string        `mapstructure:"POSTGRES_PORT"`
	PostgresUser       string        `mapstructure:"POSTGRES_USER"`
	PostgresPassword   string        `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB         string        `mapstructure:"POSTGRES_DB"`
	DBMaxOpenConns     int32         `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMinConns         int32         `mapstructure:"DB_MIN_CONNS"`
	DBConnMaxLifetime  time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBConnMaxIdleTime  time.Duration `mapstructure:"DB_CONN_MAX_IDLE_TIME"`
	DisableAutoMigrate bool          `mapstructure:"DISABLE_AUTOMIGRATE"`

	CacheBackend     string        `mapstructure:"CACHE_BACKEND"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	RedisPoolSize    int           `mapstructure:"REDIS_POOL_SIZE"`
	RedisDialTimeout time.Duration `mapstructure:"REDIS_DIAL_TIMEOUT"`
	MemoryCacheSize  int           `mapstructure:"MEMORY_CACHE_SIZE"`
	SummaryCacheTTL  time.Duration `mapstructure:"SUMMARY_CACHE_TTL"`

	OSVURL              string        `mapstructure:"OSV_URL"`
	OSVEcosystem        string        `mapstructure:"OSV_ECOSYSTEM"`
	AdvisoryTimeout     time.Duration `mapstructure:"ADVISORY_TIMEOUT"`
	AdvisoryMaxRetries  int           `mapstructure:"ADVISORY_MAX_RETRIES"`
	AdvisoryRateLimit   float64       `mapstructure:"ADVISORY_RATE_LIMIT"`
	ResolverConcurrency int           `mapstructure:"RESOLVER_CONCURRENCY"`

	DefaultUserID   string `mapstructure:"DEFAULT_USER_ID"`
	MaxManifestSize int64  `mapstructure:"MAX_MANIFEST_SIZE"`

	ErrorTrackingDSN string `mapstructure:"ERROR_TRACKING_DSN"`
	Environment      string `mapstructure:"ENVIRONMENT"`
	OTLPEndpoint     string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var defaults = map[string]any{
	"PORT": 8080,

	"DB_DRIVER":             "postgres",
	"SQLITE_PATH":           "vulnerability_tracker.db",
	"POSTGRES_HOST":         "localhost",
	"POSTGRES_PORT":         "5432",
	"POSTGRES_USER":         "",
	"POSTGRES_PASSWORD":     "",
	"POSTGRES_DB":           "vulntracker",
	"DB_MAX_OPEN_CONNS":     25,
	"DB_MIN_CONNS":          5,
	"DB_CONN_MAX_LIFETIME":  4 * time.Hour,
	"DB_CONN_MAX_IDLE_TIME": 15 * time.Minute,
	"DISABLE_AUTOMIGRATE":   false,

	"CACHE_BACKEND":      "redis",
	"REDIS_ADDR":         "localhost:6379",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"REDIS_POOL_SIZE":    5,
	"REDIS_DIAL_TIMEOUT": 15 * time.Second,
	"MEMORY_CACHE_SIZE":  10000,
	"SUMMARY_CACHE_TTL":  30 * time.Second,

	"OSV_URL":              "https://api.osv.dev/v1/query",
	"OSV_ECOSYSTEM":        "PyPI",
	"ADVISORY_TIMEOUT":     10 * time.Second,
	"ADVISORY_MAX_RETRIES": 2,
	"ADVISORY_RATE_LIMIT":  20.0,
	"RESOLVER_CONCURRENCY": 8,

	"DEFAULT_USER_ID":   "default@user.com",
	"MAX_MANIFEST_SIZE": 500 * 1024,

	"ERROR_TRACKING_DSN": "",
	"ENVIRONMENT":        "dev",

	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
}

// Load reads the configuration from the environment.
// Call shared.LoadConfig before to pick up a .env file.
func Load() (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("could not decode configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.DBDriver) {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch strings.ToLower(c.CacheBackend) {
	case "redis", "memory":
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.CacheBackend)
	}
	if c.AdvisoryTimeout <= 0 {
		return fmt.Errorf("ADVISORY_TIMEOUT must be positive")
	}
	if c.ResolverConcurrency <= 0 {
		return fmt.Errorf("RESOLVER_CONCURRENCY must be positive")
	}
	if c.DefaultUserID == "" {
		return fmt.Errorf("DEFAULT_USER_ID must not be empty")
	}
	return nil
}
