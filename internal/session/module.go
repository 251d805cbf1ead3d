package session

import (
	"go.uber.org/fx"
)

// Module provides the session service to the DI container.
var Module = fx.Module("session",
	fx.Provide(
		NewService,
	),
)
