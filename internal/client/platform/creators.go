package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Creators lists all content-producing accounts.
func (c *Client) Creators(ctx context.Context) (*model.Dataset[model.Creator], error) {
	var res struct {
		Creators []*model.Creator `json:"creators"`
	}
	if err := c.api.Get(ctx, epCreatorList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.Creator]{
		Data:  res.Creators,
		Total: len(res.Creators),
	}, nil
}
