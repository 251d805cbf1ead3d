package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Plans lists the subscription plans.
func (c *Client) Plans(ctx context.Context) (*model.Dataset[model.Plan], error) {
	var res struct {
		Plans []*model.Plan `json:"plans"`
	}
	if err := c.api.Get(ctx, epPlanList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.Plan]{
		Data:  res.Plans,
		Total: len(res.Plans),
	}, nil
}

// CreatePlan registers a new subscription plan.
func (c *Client) CreatePlan(ctx context.Context, plan model.Plan) error {
	return c.api.Post(ctx, epPlanCreate, plan, nil)
}

// UpdatePlan replaces the attributes of an existing plan.
func (c *Client) UpdatePlan(ctx context.Context, id string, updates model.Plan) error {
	return c.api.Put(ctx, epPlanUpdate+"/"+id, updates, nil)
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.api.Delete(ctx, epPlanDelete+"/"+id, nil)
}
