package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// ChildAdmins lists the restricted accounts under the current admin.
func (c *Client) ChildAdmins(ctx context.Context) (*model.Dataset[model.ChildAdmin], error) {
	var res struct {
		Admins []*model.ChildAdmin `json:"admins"`
	}
	if err := c.api.Get(ctx, epChildAdminList, nil, &res); err != nil {
		return nil, err
	}
	return &model.Dataset[model.ChildAdmin]{
		Data:  res.Admins,
		Total: len(res.Admins),
	}, nil
}

// ChildAdmin resolves exactly ONE restricted account by [id].
// The remote API exposes no single-record endpoint ;
// the listing is narrowed client-side.
func (c *Client) ChildAdmin(ctx context.Context, id string) (*model.ChildAdmin, error) {
	list, err := c.ChildAdmins(ctx)
	if err == nil && list != nil {
		match := make([]*model.ChildAdmin, 0, 1)
		for _, row := range list.Data {
			if row != nil && row.Id == id {
				match = append(match, row)
			}
		}
		list = &model.Dataset[model.ChildAdmin]{
			Data:  match,
			Total: len(match),
		}
	}
	row, err := model.Get(list, err)
	if err == nil && row == nil {
		err = model.ErrNoRecordsFound
	}
	return row, err
}

// ChildAdminPermissions fetches the granted/ungranted split of one account.
func (c *Client) ChildAdminPermissions(ctx context.Context, id string) (*model.ChildAdminPermissions, error) {
	var res struct {
		ChildAdmin *model.ChildAdminPermissions `json:"childAdmin"`
	}
	err := c.api.Get(ctx, epChildAdminPermissions+"/"+id, nil, &res)
	if err != nil {
		return nil, err
	}
	return res.ChildAdmin, nil
}

// UpdateChildAdminPermissions submits the replacement grant set.
// The ungranted complement is implied server-side.
func (c *Client) UpdateChildAdminPermissions(ctx context.Context, id string, grant model.ChildAdminPermissions) error {
	return c.api.Put(ctx, epChildAdminPermissions+"/"+id, map[string]any{
		"grantedPermissions": grant.Granted,
		"menuPermissions":    grant.Menu,
		"customPermissions":  grant.Custom,
	}, nil)
}
