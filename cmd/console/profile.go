package console

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
)

// Profile attribute flags ; blank flags are not submitted.
var profileFields = []string{
	"displayName", "bio", "phoneNumber", "gender",
	"dateOfBirth", "maritalStatus", "maritalDate",
	"theme", "language", "timezone",
}

func profileCMD() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Admin profile record",
		Subcommands: []*cli.Command{
			profileShowCMD(),
			profileUpdateCMD(),
		},
	}
}

func profileShowCMD() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Fetch and display the signed-in admin profile",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				data, err := srv.Options().Profiles.Fetch(ctx)
				if err != nil {
					return err
				}
				if data == nil {
					failure("no profile record")
					return nil
				}
				fmt.Print(title("Admin Profile"))
				fmt.Print(kv([][2]string{
					{"userName", data.UserName},
					{"displayName", data.DisplayName},
					{"bio", data.Bio},
					{"phoneNumber", data.PhoneNumber},
					{"gender", data.Gender},
					{"dateOfBirth", data.DateOfBirth},
					{"maritalStatus", data.MaritalStatus},
					{"maritalDate", data.MaritalDate},
					{"theme", data.Theme},
					{"language", data.Language},
					{"timezone", data.Timezone},
					{"avatar", data.AvatarURL},
				}))
				return nil
			}, console.Authorize(), console.Permission("adminProfile"))
		},
	}
}

func profileUpdateCMD() *cli.Command {
	flags := []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "avatar",
			Usage: "Local avatar image file path",
		},
	}
	for _, field := range profileFields {
		flags = append(flags, &cli.StringFlag{
			Name:  field,
			Usage: "Profile attribute " + field,
		})
	}
	return &cli.Command{
		Name:  "update",
		Usage: "Update profile attributes and/or the avatar image",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				fields := make(map[string]string)
				for _, field := range profileFields {
					if vs := c.String(field); vs != "" {
						fields[field] = vs
					}
				}

				got := srv.Options().Profiles.Update(ctx, fields, c.String("avatar"))
				if !got.Success {
					failure(got.Message)
					return nil
				}
				success(got.Message)
				return nil
			}, console.Authorize(), console.Permission("adminProfile"))
		},
	}
}
