package profile

import (
	"go.uber.org/fx"
)

// Module provides the profile service to the DI container.
var Module = fx.Module("profile",
	fx.Provide(
		NewService,
	),
)
