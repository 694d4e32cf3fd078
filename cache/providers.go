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
	"log/slog"
	"time"

	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/shared"
	"go.uber.org/fx"
)

func newStoreWithLifecycle(lc fx.Lifecycle, cfg config.Config) (Store, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			// the caches degrade to misses, an unreachable backend must not prevent the start
			if err := store.Ping(ctx); err != nil {
				slog.Warn("cache backend not reachable", "backend", cfg.CacheBackend, "err", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func newVulnerabilityCacheFromConfig(store Store, cfg config.Config) *VulnerabilityCache {
	return NewVulnerabilityCache(store, cfg.SummaryCacheTTL)
}

var Module = fx.Module("cache",
	fx.Provide(newStoreWithLifecycle),
	fx.Provide(fx.Annotate(newVulnerabilityCacheFromConfig, fx.As(new(shared.VulnerabilityCache)))),
)
