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

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/monitoring"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/pkg/errors"
)

const (
	advisoryKeyPrefix = "vuln:"
	summaryKeyPrefix  = "app_name:"
)

func AdvisoryKey(pkg, version string) string {
	return advisoryKeyPrefix + strings.ToLower(pkg) + ":" + version
}

func SummaryKey(applicationName string) string {
	return summaryKeyPrefix + applicationName
}

// VulnerabilityCache holds two keyspaces on one Store:
// advisory lists per package version (no expiry) and application summaries (sliding ttl).
type VulnerabilityCache struct {
	store      Store
	summaryTTL time.Duration
}

var _ shared.VulnerabilityCache = (*VulnerabilityCache)(nil)

func NewVulnerabilityCache(store Store, summaryTTL time.Duration) *VulnerabilityCache {
	if summaryTTL <= 0 {
		summaryTTL = 30 * time.Second
	}
	return &VulnerabilityCache{store: store, summaryTTL: summaryTTL}
}

func (c *VulnerabilityCache) unavailable(err error, op string) error {
	return errors.Wrap(errors.Wrap(shared.ErrCacheUnavailable, err.Error()), op)
}

func (c *VulnerabilityCache) GetAdvisories(ctx context.Context, pkg string, version string) ([]dtos.Advisory, bool) {
	key := AdvisoryKey(pkg, version)
	val, ok, err := c.store.Get(ctx, key)
	if err != nil {
		monitoring.CacheRequests.WithLabelValues(monitoring.CacheAdvisory, monitoring.CacheResultError).Inc()
		slog.Warn("could not read advisories from cache, treating as miss", "key", key, "err", c.unavailable(err, "get"))
		return nil, false
	}
	if !ok {
		monitoring.CacheRequests.WithLabelValues(monitoring.CacheAdvisory, monitoring.CacheResultMiss).Inc()
		return nil, false
	}

	advisories := []dtos.Advisory{}
	if err := json.Unmarshal([]byte(val), &advisories); err != nil {
		monitoring.CacheRequests.WithLabelValues(monitoring.CacheAdvisory, monitoring.CacheResultError).Inc()
		slog.Warn("cached advisories are not valid json, treating as miss", "key", key, "err", err)
		return nil, false
	}
	if advisories == nil {
		advisories = []dtos.Advisory{}
	}
	monitoring.CacheRequests.WithLabelValues(monitoring.CacheAdvisory, monitoring.CacheResultHit).Inc()
	return advisories, true
}

func (c *VulnerabilityCache) PutAdvisories(ctx context.Context, pkg string, version string, advisories []dtos.Advisory) {
	if advisories == nil {
		advisories = []dtos.Advisory{}
	}
	key := AdvisoryKey(pkg, version)
	b, err := json.Marshal(advisories)
	if err != nil {
		slog.Warn("could not encode advisories", "key", key, "err", err)
		return
	}
	if err := c.store.Set(ctx, key, string(b), 0); err != nil {
		slog.Warn("could not write advisories to cache", "key", key, "err", c.unavailable(err, "set"))
	}
}

func (c *VulnerabilityCache) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return c.summaryTTL
	}
	return ttl
}

func (c *VulnerabilityCache) GetSummary(ctx context.Context, key string, ttl time.Duration) (string, bool) {
	val, ok, err := c.store.Get(ctx, key)
	if err != nil {
		monitoring.CacheRequests.WithLabelValues(monitoring.CacheSummary, monitoring.CacheResultError).Inc()
		slog.Warn("could not read summary from cache, treating as miss", "key", key, "err", c.unavailable(err, "get"))
		return "", false
	}
	if !ok {
		monitoring.CacheRequests.WithLabelValues(monitoring.CacheSummary, monitoring.CacheResultMiss).Inc()
		return "", false
	}
	monitoring.CacheRequests.WithLabelValues(monitoring.CacheSummary, monitoring.CacheResultHit).Inc()

	if err := c.store.Expire(ctx, key, c.ttl(ttl)); err != nil {
		slog.Warn("could not extend summary ttl", "key", key, "err", c.unavailable(err, "expire"))
	}
	return val, true
}

func (c *VulnerabilityCache) SetSummary(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := c.store.Set(ctx, key, value, c.ttl(ttl)); err != nil {
		slog.Warn("could not write summary to cache", "key", key, "err", c.unavailable(err, "set"))
	}
}

func (c *VulnerabilityCache) DeleteSummary(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		return c.unavailable(err, "delete")
	}
	return nil
}
