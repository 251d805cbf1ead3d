package console

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/nav"
)

func loginCMD() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and persist the session",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"u"},
				Usage:    "Sign-in identifier (e-mail)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Account password",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				sessions := srv.Options().Sessions
				err := sessions.Login(ctx, c.String("email"), c.String("password"))
				if err != nil {
					return err
				}

				data := sessions.Current()
				success(fmt.Sprintf("signed in as %s (%s)",
					data.Identity.UserName, data.Identity.Role,
				))
				fmt.Print(renderMenu(
					nav.ExpandFirst(nav.Filter(nav.Menu(), data)),
				))
				return nil
			})
		},
	}
}

func logoutCMD() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Discard the persisted session",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {
				if err := srv.Options().Sessions.Logout(ctx); err != nil {
					return err
				}
				success("signed out")
				return nil
			})
		},
	}
}

func whoamiCMD() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in admin identity",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				data := srv.Options().Sessions.Current()
				if data == nil {
					failure("not signed in")
					return nil
				}
				fmt.Print(kv([][2]string{
					{"user", data.Identity.UserName},
					{"email", data.Identity.Email},
					{"role", string(data.Identity.Role)},
					{"since", data.Date.Format("2006-01-02 15:04:05")},
					{"permissions", fmt.Sprintf("%d granted", len(data.Permissions))},
				}))
				return nil
			})
		},
	}
}
