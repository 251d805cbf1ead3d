package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Metrics fetches the headline dashboard counters.
// Cached briefly: the dashboard command renders several blocks per run.
func (c *Client) Metrics(ctx context.Context) (*model.DashboardMetrics, error) {

	token := c.token()
	if counts, found := c.metrics.Get(token); found {
		return counts, nil
	}

	counts := new(model.DashboardMetrics)
	if err := c.api.Get(ctx, epDashboardMetrics, nil, counts); err != nil {
		return nil, err
	}

	_ = c.metrics.Add(token, counts)
	return counts, nil
}

// MonthlyRegistrations fetches the user-registration chart series.
func (c *Client) MonthlyRegistrations(ctx context.Context) ([]*model.MonthlyRegistration, error) {
	var res struct {
		Registrations []*model.MonthlyRegistration `json:"registrations"`
	}
	if err := c.api.Get(ctx, epDashboardRegistrations, nil, &res); err != nil {
		return nil, err
	}
	return res.Registrations, nil
}

// SubscriptionRatio fetches the subscribed vs free user split.
func (c *Client) SubscriptionRatio(ctx context.Context) (*model.SubscriptionRatio, error) {
	ratio := new(model.SubscriptionRatio)
	if err := c.api.Get(ctx, epDashboardSubscription, nil, ratio); err != nil {
		return nil, err
	}
	return ratio, nil
}
