package vulndb

import (
	"github.com/l3montree-dev/vulntracker/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("vulndb",
	fx.Provide(OSVOptionsFromConfig),
	fx.Provide(fx.Annotate(NewOSVService, fx.As(new(shared.AdvisoryClient)))),
)
