package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Profile of the signed-in admin ; exactly one live per active session.
// Cached per bearer token: the cache entry dies with the session.
func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {

	token := c.token()

	// from cache ..
	if profile, found := c.profiles.Get(token); found {
		return profile, nil
	}

	var res struct {
		Profile *model.Profile `json:"profile"`
	}
	if err := c.api.Get(ctx, epProfileGet, nil, &res); err != nil {
		return nil, err
	}

	if res.Profile != nil {
		_ = c.profiles.Add(token, res.Profile)
	}

	return res.Profile, nil
}

// UpdateProfile PUTs the defined, non-empty [fields] plus
// an optional avatar file as one multipart payload.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]string, avatarPath string) error {

	err := c.api.PutMultipart(ctx, epProfileUpdate, rest.Form{
		Fields:    fields,
		FileField: "file",
		FilePath:  avatarPath,
	}, nil)

	if err != nil {
		return err
	}

	// stale now ; next Profile() re-fetches
	c.profiles.Remove(c.token())
	return nil
}
