package console

import (
	"context"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/suriyadlktech-jpg/Admin-Panel/cmd"
	"github.com/suriyadlktech-jpg/Admin-Panel/config"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/profile"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/session"
)

func NewApp(cfg *config.Config, populate ...any) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Provide(
			func() *config.Config { return cfg },
			cmd.ProvideLogger,
			cmd.ProvidePubSub,
			cmd.ProvideSessionStore,
			cmd.ProvideRESTClient,
			cmd.ProvidePlatformClient,
		),
		session.Module,
		profile.Module,
		console.Module,
		// a 401 anywhere force-expires the session owner
		fx.Invoke(func(api *rest.Client, sessions *session.Service) {
			api.OnUnauthorized(sessions.Expire)
		}),
		fx.Populate(populate...),
	)
}

// run boots the DI container and executes one console operation.
// The [opts] gate the operation up front, before exec runs:
// console.Authorize() demands a session, console.Permission(tag)
// additionally demands the capability granted.
func run(c *cli.Context, exec func(ctx context.Context, srv *console.Service) error, opts ...console.ContextFunc) error {

	cfg, err := config.LoadConfig(c.String("config_file"))
	if err != nil {
		return err
	}

	var srv *console.Service
	app := NewApp(cfg, &srv)

	if err = app.Start(c.Context); err != nil {
		return err
	}
	err = func() error {
		rpc, err := srv.GetContext(c.Context, opts...)
		if err != nil {
			return err
		}
		return exec(console.WithContext(c.Context, rpc), srv)
	}()

	if stop := app.Stop(context.Background()); stop != nil && err == nil {
		err = stop
	}
	return err
}

// configFlag is shared by every console command.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config_file",
		Aliases: []string{"c"},
		Usage:   "Configuration file path",
	}
}
