package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/permissions"
)

func adminsCMD() *cli.Command {
	return &cli.Command{
		Name:  "admins",
		Usage: "Child administrator accounts",
		Subcommands: []*cli.Command{
			adminsListCMD(),
			adminsCreateCMD(),
			adminsPermissionsCMD(),
		},
	}
}

func adminsListCMD() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List child admin accounts",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.ChildAdmins(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, admin := range list.Data {
					rows = append(rows, []string{
						admin.Id, admin.UserName, admin.Email, string(admin.AdminType),
					})
				}
				fmt.Print(table([]string{"ID", "USER", "EMAIL", "TYPE"}, rows))
				return nil
			}, console.Authorize(), console.Permission("childAdminCreation"))
		},
	}
}

func adminsCreateCMD() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Register a child admin account",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "email",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				text, err := srv.Options().Sessions.CreateChildAdmin(ctx, model.RegisterAdmin{
					UserName:  c.String("username"),
					Email:     c.String("email"),
					Password:  c.String("password"),
					AdminType: model.RoleChildAdmin,
				})
				if err != nil {
					return err
				}
				success(text)
				return nil
			}, console.Authorize(), console.Permission("childAdminCreation"))
		},
	}
}

func adminsPermissionsCMD() *cli.Command {
	return &cli.Command{
		Name:      "permissions",
		Usage:     "Show or edit the permission grant of one child admin",
		ArgsUsage: "<childAdminId>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringSliceFlag{
				Name:  "grant",
				Usage: "Tag(s) to move into the granted list",
			},
			&cli.StringSliceFlag{
				Name:  "revoke",
				Usage: "Tag(s) to move out of the granted list",
			},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("childAdminId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				api := srv.Options().API
				record, err := api.ChildAdminPermissions(ctx, id)
				if err != nil {
					return err
				}

				editor := permissions.NewEditor(record)
				grant, revoke := c.StringSlice("grant"), c.StringSlice("revoke")

				if len(grant) == 0 && len(revoke) == 0 {
					// read-only
					account, err := api.ChildAdmin(ctx, id)
					if err != nil {
						return err
					}
					fmt.Print(title("Permissions " + id))
					fmt.Print(kv([][2]string{
						{"user", account.UserName},
						{"email", account.Email},
						{"granted", strings.Join(editor.Granted(), ", ")},
						{"ungranted", strings.Join(editor.Ungranted(), ", ")},
					}))
					return nil
				}

				editor.Select(grant...)
				editor.MoveToGranted()
				editor.Select(revoke...)
				editor.MoveToUngranted()

				err = api.UpdateChildAdminPermissions(ctx, id, editor.Record())
				if err != nil {
					return err
				}
				success(fmt.Sprintf("permissions saved ; %d granted", len(editor.Granted())))
				return nil
			}, console.Authorize(), console.Permission("childAdminCreation"))
		},
	}
}
