package platform

import (
	"context"
	"net/url"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Users lists all platform user accounts.
func (c *Client) Users(ctx context.Context) (*model.Dataset[model.User], error) {
	var res struct {
		Users []*model.User `json:"users"`
	}
	if err := c.api.Get(ctx, epUserList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.User]{
		Data:  res.Users,
		Total: len(res.Users),
	}, nil
}

// User fetches one account detail.
func (c *Client) User(ctx context.Context, id string) (*model.User, error) {
	var res struct {
		User *model.User `json:"user"`
	}
	err := c.api.Get(ctx, epUserDetail+"/"+id, nil, &res)
	if err != nil {
		return nil, err
	}
	return res.User, nil
}

// BlockUser toggles the account's blocked state.
func (c *Client) BlockUser(ctx context.Context, id string) error {
	return c.api.Patch(ctx, epUserBlock+"/"+id, struct{}{}, nil)
}

// UserAnalytics fetches server-computed engagement counters.
func (c *Client) UserAnalytics(ctx context.Context, id string) (*model.UserAnalytics, error) {
	stats := new(model.UserAnalytics)
	err := c.api.Get(ctx, epUserAnalytics+"/"+id, nil, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ReferralTree fetches the two-column referral level rendering data.
func (c *Client) ReferralTree(ctx context.Context, id string) (*model.ReferralTree, error) {
	tree := new(model.ReferralTree)
	err := c.api.Get(ctx, epUserTreeLevel+"/"+id, nil, tree)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// ?startDate=&endDate=&type= ; omitted when blank
func analyticsQuery(filter *model.AnalyticsFilter) url.Values {
	if filter == nil {
		return nil
	}
	query := make(url.Values, 3)
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

// UserFeeds lists the feeds a user produced, within the optional window.
func (c *Client) UserFeeds(ctx context.Context, id string, filter *model.AnalyticsFilter) ([]*model.Feed, error) {
	var res struct {
		Feeds []*model.Feed `json:"feeds"`
	}
	err := c.api.Get(ctx, epUserFeeds+"/"+id, analyticsQuery(filter), &res)
	if err != nil {
		return nil, err
	}
	return res.Feeds, nil
}

// UserLiked lists the feeds a user liked, within the optional window.
func (c *Client) UserLiked(ctx context.Context, id string, filter *model.AnalyticsFilter) ([]*model.Feed, error) {
	var res struct {
		Feeds []*model.Feed `json:"likedFeeds"`
	}
	err := c.api.Get(ctx, epUserLiked+"/"+id, analyticsQuery(filter), &res)
	if err != nil {
		return nil, err
	}
	return res.Feeds, nil
}

// UserCommented lists the feeds a user commented on, within the optional window.
func (c *Client) UserCommented(ctx context.Context, id string, filter *model.AnalyticsFilter) ([]*model.Feed, error) {
	var res struct {
		Feeds []*model.Feed `json:"commentedFeeds"`
	}
	err := c.api.Get(ctx, epUserCommented+"/"+id, analyticsQuery(filter), &res)
	if err != nil {
		return nil, err
	}
	return res.Feeds, nil
}
