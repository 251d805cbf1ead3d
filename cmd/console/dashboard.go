package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func dashboardCMD() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Headline platform metrics",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "registrations",
				Usage: "Include the monthly user-registration series",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				api := srv.Options().API
				counts, err := api.Metrics(ctx)
				if err != nil {
					return err
				}
				fmt.Print(title("Dashboard"))
				fmt.Print(table(
					[]string{"USERS", "CREATORS", "FEEDS", "SUBSCRIPTIONS", "REPORTS"},
					[][]string{{
						strconv.Itoa(counts.Users),
						strconv.Itoa(counts.Creators),
						strconv.Itoa(counts.Feeds),
						strconv.Itoa(counts.Subscriptions),
						strconv.Itoa(counts.Reports),
					}},
				))

				ratio, err := api.SubscriptionRatio(ctx)
				if err != nil {
					return err
				}
				fmt.Println(styleMuted.Render(fmt.Sprintf(
					"subscribed: %d ; free: %d", ratio.Subscribed, ratio.Unsubscribed,
				)))

				if !c.Bool("registrations") {
					return nil
				}
				series, err := api.MonthlyRegistrations(ctx)
				if err != nil {
					return err
				}
				fmt.Print(title("Registrations"))
				for _, point := range series {
					fmt.Printf("%-10s %6d  %s\n",
						point.Month, point.Count,
						styleOK.Render(strings.Repeat("■", bar(point.Count, series))),
					)
				}
				return nil
			}, console.Authorize(), console.Permission("dashboard"))
		},
	}
}

// bar scales [count] against the series peak to at most 40 cells.
func bar(count int, series []*model.MonthlyRegistration) int {
	peak := 0
	for _, point := range series {
		if point.Count > peak {
			peak = point.Count
		}
	}
	if peak <= 0 || count <= 0 {
		return 0
	}
	return count * 40 / peak
}
