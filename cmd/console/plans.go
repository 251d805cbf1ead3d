package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func plansCMD() *cli.Command {
	return &cli.Command{
		Name:  "plans",
		Usage: "Subscription plans",
		Subcommands: []*cli.Command{
			plansListCMD(),
			plansCreateCMD(),
			plansUpdateCMD(),
			plansDeleteCMD(),
		},
	}
}

func plansListCMD() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List subscription plans",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.Plans(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, plan := range list.Data {
					rows = append(rows, []string{
						plan.Id, plan.Name,
						fmt.Sprintf("%.2f", plan.Price),
						strconv.Itoa(plan.DurationDays),
						plan.PlanType,
						boolMark(plan.IsActive),
					})
				}
				fmt.Print(table(
					[]string{"ID", "NAME", "PRICE", "DAYS", "TYPE", "ACTIVE"}, rows,
				))
				return nil
			}, console.Authorize(), console.Permission("subscriptionsInfo"))
		},
	}
}

func planFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "name"},
		&cli.Float64Flag{Name: "price"},
		&cli.IntFlag{Name: "days", Usage: "Plan duration in days"},
		&cli.StringFlag{Name: "type", Usage: "Plan type label"},
		&cli.StringFlag{Name: "description"},
		&cli.IntFlag{Name: "download-limit"},
		&cli.IntFlag{Name: "device-limit"},
		&cli.BoolFlag{Name: "ad-free"},
		&cli.BoolFlag{Name: "active", Value: true},
	}
}

func planFromFlags(c *cli.Context) model.Plan {
	return model.Plan{
		Name:         c.String("name"),
		Price:        c.Float64("price"),
		DurationDays: c.Int("days"),
		PlanType:     c.String("type"),
		Description:  c.String("description"),
		Limits: model.PlanLimits{
			DownloadLimit: c.Int("download-limit"),
			DeviceLimit:   c.Int("device-limit"),
			AdFree:        c.Bool("ad-free"),
		},
		IsActive: c.Bool("active"),
	}
}

func plansCreateCMD() *cli.Command {
	flags := planFlags()
	return &cli.Command{
		Name:  "create",
		Usage: "Create a subscription plan",
		Flags: flags,
		Action: func(c *cli.Context) error {
			if c.String("name") == "" {
				return cli.Exit("--name required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {
				if err := srv.Options().API.CreatePlan(ctx, planFromFlags(c)); err != nil {
					return err
				}
				success("plan created: " + c.String("name"))
				return nil
			}, console.Authorize(), console.Permission("subscriptionsInfo"))
		},
	}
}

func plansUpdateCMD() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a subscription plan",
		ArgsUsage: "<planId>",
		Flags:     planFlags(),
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("planId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {
				if err := srv.Options().API.UpdatePlan(ctx, id, planFromFlags(c)); err != nil {
					return err
				}
				success("plan updated: " + id)
				return nil
			}, console.Authorize(), console.Permission("subscriptionsInfo"))
		},
	}
}

func plansDeleteCMD() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a subscription plan",
		ArgsUsage: "<planId>",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("planId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {
				if err := srv.Options().API.DeletePlan(ctx, id); err != nil {
					return err
				}
				success("plan deleted: " + id)
				return nil
			}, console.Authorize(), console.Permission("subscriptionsInfo"))
		},
	}
}
