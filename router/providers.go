package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewApplicationRouter),
	fx.Provide(NewDependencyRouter),
	fx.Provide(NewUserRouter),
)
