package console

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/pubsub"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/client/platform"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/profile"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/session"
)

// Service (Console) Options
type ServiceOptions struct {
	fx.In // Input Params
	Logs  *slog.Logger

	Broker   pubsub.Provider
	Sessions *session.Service
	Profiles *profile.Service

	API *platform.Client
}

// Service orchestrates console operations:
// one instance per process, shared by every command.
type Service struct {
	opts ServiceOptions
}

func NewService(opts ServiceOptions) (*Service, error) {
	return &Service{
		opts: opts,
	}, nil
}

func (srv *Service) Options() ServiceOptions {
	return srv.opts
}

// Module provides the console service to the DI container.
var Module = fx.Module("console",
	fx.Provide(
		NewService,
	),
)
