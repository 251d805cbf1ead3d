package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/console"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func feedsCMD() *cli.Command {
	return &cli.Command{
		Name:  "feeds",
		Usage: "Platform content feeds",
		Subcommands: []*cli.Command{
			feedsListCMD(),
			feedsUploadCMD(),
		},
	}
}

func feedsListCMD() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List feed entries",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				list, err := srv.Options().API.Feeds(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, list.Total)
				for _, feed := range list.Data {
					rows = append(rows, []string{
						feed.Id, feed.Title, feed.Category, feed.Creator,
						strconv.Itoa(feed.Likes), strconv.Itoa(feed.Comments),
					})
				}
				fmt.Print(table(
					[]string{"ID", "TITLE", "CATEGORY", "CREATOR", "LIKES", "COMMENTS"}, rows,
				))
				return nil
			}, console.Authorize(), console.Permission("feedsInfo"))
		},
	}
}

func feedsUploadCMD() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Upload a feed media file",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "title",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "category",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Local media file path",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, srv *console.Service) error {

				err := srv.Options().API.UploadFeed(ctx, model.FeedUpload{
					Title:    c.String("title"),
					Category: c.String("category"),
					FilePath: c.String("file"),
				})
				if err != nil {
					return err
				}
				success("feed uploaded: " + c.String("title"))
				return nil
			}, console.Authorize(), console.Permission("feedsInfo"))
		},
	}
}

func categoriesCMD() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "Feed category catalogue",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List categories",
				Flags: []cli.Flag{configFlag()},
				Action: func(c *cli.Context) error {
					return run(c, func(ctx context.Context, srv *console.Service) error {

						list, err := srv.Options().API.Categories(ctx)
						if err != nil {
							return err
						}
						rows := make([][]string, 0, len(list))
						for _, category := range list {
							rows = append(rows, []string{category.Id, category.Name})
						}
						fmt.Print(table([]string{"ID", "NAME"}, rows))
						return nil
					}, console.Authorize(), console.Permission("feedsInfo"))
				},
			},
			{
				Name:      "add",
				Usage:     "Add a category",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{configFlag()},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("name argument required", 2)
					}
					return run(c, func(ctx context.Context, srv *console.Service) error {
						if err := srv.Options().API.AddCategory(ctx, name); err != nil {
							return err
						}
						success("category added: " + name)
						return nil
					}, console.Authorize(), console.Permission("feedsInfo"))
				},
			},
			{
				Name:      "update",
				Usage:     "Rename a category",
				ArgsUsage: "<categoryId> <name>",
				Flags:     []cli.Flag{configFlag()},
				Action: func(c *cli.Context) error {
					id, name := c.Args().Get(0), c.Args().Get(1)
					if id == "" || name == "" {
						return cli.Exit("categoryId and name arguments required", 2)
					}
					return run(c, func(ctx context.Context, srv *console.Service) error {
						if err := srv.Options().API.UpdateCategory(ctx, id, name); err != nil {
							return err
						}
						success("category updated: " + id)
						return nil
					}, console.Authorize(), console.Permission("feedsInfo"))
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				ArgsUsage: "<categoryId>",
				Flags:     []cli.Flag{configFlag()},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return cli.Exit("categoryId argument required", 2)
					}
					return run(c, func(ctx context.Context, srv *console.Service) error {
						if err := srv.Options().API.DeleteCategory(ctx, id); err != nil {
							return err
						}
						success("category deleted: " + id)
						return nil
					}, console.Authorize(), console.Permission("feedsInfo"))
				},
			},
		},
	}
}
