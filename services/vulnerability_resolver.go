// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/vulntracker/config"
	"github.com/l3montree-dev/vulntracker/dtos"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/l3montree-dev/vulntracker/utils"
	"golang.org/x/sync/errgroup"
)

type vulnerabilityResolver struct {
	cache          shared.VulnerabilityCache
	advisoryClient shared.AdvisoryClient
	concurrency    int
}

var _ shared.VulnerabilityResolver = (*vulnerabilityResolver)(nil)

func NewVulnerabilityResolver(cache shared.VulnerabilityCache, advisoryClient shared.AdvisoryClient, cfg config.Config) *vulnerabilityResolver {
	concurrency := cfg.ResolverConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &vulnerabilityResolver{
		cache:          cache,
		advisoryClient: advisoryClient,
		concurrency:    concurrency,
	}
}

func (r *vulnerabilityResolver) lookup(ctx context.Context, pkg dtos.Package) ([]dtos.Advisory, error) {
	if advisories, ok := r.cache.GetAdvisories(ctx, pkg.Name, pkg.Version); ok {
		return advisories, nil
	}

	advisories, err := r.advisoryClient.Lookup(ctx, pkg.Name, pkg.Version)
	if err != nil {
		return nil, err
	}
	if advisories == nil {
		advisories = []dtos.Advisory{}
	}

	r.cache.PutAdvisories(ctx, pkg.Name, pkg.Version, advisories)
	return advisories, nil
}

// Resolve looks up the advisories of every package, cache first.
// The result keeps the order of packages. The first failing lookup cancels the remaining ones
// and fails the whole resolution, there are no partial results.
func (r *vulnerabilityResolver) Resolve(ctx context.Context, packages []dtos.Package) (dtos.Resolution, error) {
	resolved := make([]dtos.ResolvedDependency, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, pkg := range packages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			advisories, err := r.lookup(gctx, pkg)
			if err != nil {
				return err
			}
			resolved[i] = dtos.ResolvedDependency{Package: pkg, Advisories: advisories}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("could not resolve vulnerabilities", "dependencies", len(packages), "err", err)
		if !errors.Is(err, shared.ErrAdvisoryUnavailable) {
			err = fmt.Errorf("%w: %w", shared.ErrAdvisoryUnavailable, err)
		}
		return dtos.Resolution{}, err
	}

	advisories := utils.Flat(utils.Map(resolved, func(d dtos.ResolvedDependency) []dtos.Advisory { return d.Advisories }))
	return dtos.Resolution{Dependencies: resolved, Advisories: advisories}, nil
}
