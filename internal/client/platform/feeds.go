package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Feeds lists all platform content entries.
func (c *Client) Feeds(ctx context.Context) (*model.Dataset[model.Feed], error) {
	var res struct {
		Feeds []*model.Feed `json:"feeds"`
	}
	if err := c.api.Get(ctx, epFeedList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.Feed]{
		Data:  res.Feeds,
		Total: len(res.Feeds),
	}, nil
}

// UploadFeed POSTs the media file plus its attributes as one multipart payload.
func (c *Client) UploadFeed(ctx context.Context, feed model.FeedUpload) error {
	fields := make(map[string]string, 2)
	if feed.Title != "" {
		fields["title"] = feed.Title
	}
	if feed.Category != "" {
		fields["category"] = feed.Category
	}
	return c.api.PostMultipart(ctx, epFeedUpload, rest.Form{
		Fields:    fields,
		FileField: "file",
		FilePath:  feed.FilePath,
	}, nil)
}

// Categories lists the feed catalogue split.
func (c *Client) Categories(ctx context.Context) ([]*model.Category, error) {
	var res struct {
		Categories []*model.Category `json:"categories"`
	}
	if err := c.api.Get(ctx, epCategoryList, nil, &res); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

// AddCategory creates a new feed category.
func (c *Client) AddCategory(ctx context.Context, name string) error {
	return c.api.Post(ctx, epCategoryAdd, map[string]string{
		"name": name,
	}, nil)
}

// UpdateCategory renames an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) error {
	return c.api.Put(ctx, epCategoryUpdate, map[string]string{
		"id":   id,
		"name": name,
	}, nil)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.api.Delete(ctx, epCategoryDelete+"/"+id, nil)
}
