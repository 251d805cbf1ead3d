package console

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func reportsCMD() *cli.Command {
	return &cli.Command{
		Name:  "reports",
		Usage: "User complaints against feeds",
		Subcommands: []*cli.Command{
			reportsListCMD(),
			reportsActionCMD(),
		},
	}
}

func reportsListCMD() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List open reports",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.Reports(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, report := range list.Data {
					rows = append(rows, []string{
						report.Id, report.FeedId, report.ReportedBy,
						report.Reason, report.Status,
					})
				}
				fmt.Print(table(
					[]string{"ID", "FEED", "REPORTED BY", "REASON", "STATUS"}, rows,
				))
				return nil
			}, console.Authorize(), console.Permission("reports"))
		},
	}
}

func reportsActionCMD() *cli.Command {
	return &cli.Command{
		Name:      "action",
		Usage:     "Submit a moderation decision for one report",
		ArgsUsage: "<reportId>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "action",
				Usage:    "Decision verb, e.g.: dismiss, remove, warn",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "note",
				Usage: "Optional moderator note",
			},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("reportId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				err := srv.Options().API.UpdateReportAction(ctx, id, model.ReportAction{
					Action: c.String("action"),
					Note:   c.String("note"),
				})
				if err != nil {
					return err
				}
				success("report " + id + ": " + c.String("action"))
				return nil
			}, console.Authorize(), console.Permission("reports"))
		},
	}
}
