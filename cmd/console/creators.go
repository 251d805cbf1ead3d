package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
)

func creatorsCMD() *cli.Command {
	return &cli.Command{
		Name:  "creators",
		Usage: "List content-creator accounts",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.Creators(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, creator := range list.Data {
					rows = append(rows, []string{
						creator.Id, creator.UserName, creator.Email,
						strconv.Itoa(creator.Followers),
						strconv.Itoa(creator.FeedCount),
						boolMark(creator.IsBlocked),
					})
				}
				fmt.Print(table(
					[]string{"ID", "USER", "EMAIL", "FOLLOWERS", "FEEDS", "BLOCKED"}, rows,
				))
				return nil
			}, console.Authorize(), console.Permission("creatorProfile"))
		},
	}
}
