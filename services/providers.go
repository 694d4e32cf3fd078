// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"github.com/l3montree-dev/vulntracker/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewVulnerabilityResolver, fx.As(new(shared.VulnerabilityResolver)))),
	fx.Provide(fx.Annotate(NewApplicationService, fx.As(new(shared.ApplicationService)))),
	fx.Provide(fx.Annotate(NewDependencyService, fx.As(new(shared.DependencyService)))),
	fx.Provide(fx.Annotate(NewUserService, fx.As(new(shared.UserService)))),
)
