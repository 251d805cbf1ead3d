package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Reports lists user complaints against feeds.
func (c *Client) Reports(ctx context.Context) (*model.Dataset[model.Report], error) {
	var res struct {
		Reports []*model.Report `json:"reports"`
	}
	if err := c.api.Get(ctx, epReportList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.Report]{
		Data:  res.Reports,
		Total: len(res.Reports),
	}, nil
}

// UpdateReportAction submits the moderation decision for one report.
func (c *Client) UpdateReportAction(ctx context.Context, id string, action model.ReportAction) error {
	return c.api.Put(ctx, epReportAction+"/"+id, action, nil)
}
