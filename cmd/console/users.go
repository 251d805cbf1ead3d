package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func usersCMD() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Platform user accounts",
		Subcommands: []*cli.Command{
			usersListCMD(),
			usersShowCMD(),
			usersBlockCMD(),
			usersAnalyticsCMD(),
			usersTreeCMD(),
			usersActivityCMD("feeds", "Feeds the user produced"),
			usersActivityCMD("liked", "Feeds the user liked"),
			usersActivityCMD("commented", "Feeds the user commented on"),
		},
	}
}

func usersListCMD() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List user accounts",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.Users(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, user := range list.Data {
					rows = append(rows, []string{
						user.Id, user.UserName, user.Email,
						boolMark(user.IsBlocked), boolMark(user.IsSubscribed),
					})
				}
				fmt.Print(table(
					[]string{"ID", "USER", "EMAIL", "BLOCKED", "SUBSCRIBED"}, rows,
				))
				fmt.Println(styleMuted.Render(
					strconv.Itoa(list.Total) + " user(s)",
				))
				return nil
			}, console.Authorize(), console.Permission("userDetail"))
		},
	}
}

func usersShowCMD() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "One account detail",
		ArgsUsage: "<userId>",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("userId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				user, err := srv.Options().API.User(ctx, id)
				if err != nil {
					return err
				}
				if user == nil {
					failure("no such user")
					return nil
				}
				fmt.Print(kv([][2]string{
					{"id", user.Id},
					{"user", user.UserName},
					{"email", user.Email},
					{"phone", user.PhoneNumber},
					{"blocked", boolMark(user.IsBlocked)},
					{"subscribed", boolMark(user.IsSubscribed)},
					{"created", user.CreatedAt},
				}))
				return nil
			}, console.Authorize(), console.Permission("userDetail"))
		},
	}
}

func usersBlockCMD() *cli.Command {
	return &cli.Command{
		Name:      "block",
		Usage:     "Toggle the account's blocked state",
		ArgsUsage: "<userId>",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("userId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {
				if err := srv.Options().API.BlockUser(ctx, id); err != nil {
					return err
				}
				success("block state toggled: " + id)
				return nil
			}, console.Authorize(), console.Permission("userDetail"))
		},
	}
}

func usersAnalyticsCMD() *cli.Command {
	return &cli.Command{
		Name:      "analytics",
		Usage:     "Per-user engagement counters",
		ArgsUsage: "<userId>",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("userId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				stats, err := srv.Options().API.UserAnalytics(ctx, id)
				if err != nil {
					return err
				}
				fmt.Print(title("User Analytics " + id))
				fmt.Print(table(
					[]string{"FEEDS", "FOLLOWING", "LIKED", "DISLIKED", "COMMENTED", "SHARED", "DOWNLOADED", "HIDDEN"},
					[][]string{{
						strconv.Itoa(stats.Feeds),
						strconv.Itoa(stats.Following),
						strconv.Itoa(stats.Liked),
						strconv.Itoa(stats.Disliked),
						strconv.Itoa(stats.Commented),
						strconv.Itoa(stats.Shared),
						strconv.Itoa(stats.Downloaded),
						strconv.Itoa(stats.Hidden),
					}},
				))
				return nil
			}, console.Authorize(), console.Permission("userAnalytics"))
		},
	}
}

func usersTreeCMD() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "Referral tree levels and earnings of one user",
		ArgsUsage: "<userId>",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("userId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				tree, err := srv.Options().API.ReferralTree(ctx, id)
				if err != nil {
					return err
				}
				fmt.Print(renderTree(tree))
				return nil
			}, console.Authorize(), console.Permission("userDetail"))
		},
	}
}

// renderTree prints the level ladder plus the two referral columns.
func renderTree(tree *model.ReferralTree) string {
	if tree == nil || tree.Level <= 0 {
		// level 0 ; the user has not started the referral program
		return styleMuted.Render("referral program not started") + "\n"
	}

	view := title(fmt.Sprintf("Referral Level %d / %d", tree.Level, model.ReferralMaxLevel))
	view += kv([][2]string{
		{"earned", fmt.Sprintf("%.2f", tree.TotalEarned)},
		{"withdrawn", fmt.Sprintf("%.2f", tree.TotalWithdrawn)},
		{"pending", fmt.Sprintf("%.2f", tree.PendingWithdrawable)},
	})

	rows := make([][]string, 0, max(len(tree.LeftUsers), len(tree.RightUsers)))
	for e := 0; e < max(len(tree.LeftUsers), len(tree.RightUsers)); e++ {
		var left, right string
		if e < len(tree.LeftUsers) {
			left = tree.LeftUsers[e].UserName
		}
		if e < len(tree.RightUsers) {
			right = tree.RightUsers[e].UserName
		}
		rows = append(rows, []string{left, right})
	}
	if len(rows) > 0 {
		view += table([]string{"LEFT", "RIGHT"}, rows)
	}
	return view
}

// usersActivityCMD covers the three feed-activity listings,
// which differ only in endpoint and envelope.
func usersActivityCMD(kind, usage string) *cli.Command {
	return &cli.Command{
		Name:      kind,
		Usage:     usage,
		ArgsUsage: "<userId>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "start", Usage: "Window start date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "end", Usage: "Window end date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "type", Usage: "Feed media type filter"},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return cli.Exit("userId argument required", 2)
			}
			return run(c, func(ctx context.Context, srv *console.Service) error {

				filter := &model.AnalyticsFilter{
					StartDate: c.String("start"),
					EndDate:   c.String("end"),
					Type:      c.String("type"),
				}

				api := srv.Options().API
				var (
					feeds []*model.Feed
					err   error
				)
				switch kind {
				case "liked":
					feeds, err = api.UserLiked(ctx, id, filter)
				case "commented":
					feeds, err = api.UserCommented(ctx, id, filter)
				default:
					feeds, err = api.UserFeeds(ctx, id, filter)
				}
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(feeds))
				for _, feed := range feeds {
					rows = append(rows, []string{
						feed.Id, feed.Title, feed.Category, feed.CreatedAt,
					})
				}
				fmt.Print(table([]string{"ID", "TITLE", "CATEGORY", "CREATED"}, rows))
				return nil
			}, console.Authorize(), console.Permission("userFeedReports"))
		},
	}
}
