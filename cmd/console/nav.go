package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/nav"
)

func navCMD() *cli.Command {
	return &cli.Command{
		Name:  "nav",
		Usage: "Show the navigation entries visible to the signed-in admin",
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
				items := nav.ExpandFirst(nav.Filter(nav.Menu(), data))
				if len(items) == 0 {
					fmt.Println(styleMuted.Render("no entries granted"))
					return nil
				}
				fmt.Print(renderMenu(items))
				return nil
			})
		},
	}
}

// renderMenu prints the tree ; collapsed groups list entry counts only.
func renderMenu(items []nav.Item) string {
	var view strings.Builder
	for _, item := range items {
		view.WriteString(styleTitle.Render(item.Title))
		if item.Command != "" {
			view.WriteString(styleMuted.Render("  " + item.Command))
		}
		view.WriteString("\n")
		if !item.Group() {
			continue
		}
		if !item.Expanded {
			view.WriteString(styleMuted.Render(
				fmt.Sprintf("  … %d entries", len(item.Items)),
			))
			view.WriteString("\n")
			continue
		}
		for _, sub := range item.Items {
			view.WriteString("  " + sub.Title)
			if sub.Command != "" {
				view.WriteString(styleMuted.Render("  " + sub.Command))
			}
			view.WriteString("\n")
		}
	}
	return view.String()
}
