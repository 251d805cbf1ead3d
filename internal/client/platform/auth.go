package platform

import (
	"context"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// LoginGrant ; successful sign-in response.
type LoginGrant struct {
	// [access_token] string ; REQUIRED
	Token string `json:"token"`
	// Authenticated admin account
	Admin struct {
		UserName string     `json:"userName"`
		Email    string     `json:"email"`
		Role     model.Role `json:"role"`
	} `json:"admin"`
	// Permission tags granted ; empty for role=Admin
	GrantedPermissions model.PermissionSet `json:"grantedPermissions"`
}

// Login exchanges credentials for a session grant.
// Credential-free: a rejected password surfaces the server's
// message and never disturbs the current session.
func (c *Client) Login(ctx context.Context, identifier, password string) (*LoginGrant, error) {
	grant := new(LoginGrant)
	err := c.api.Post(rest.Anonymous(ctx), epAdminLogin, map[string]string{
		"identifier": identifier,
		"password":   password,
	}, grant)
	if err != nil {
		return nil, err
	}
	return grant, nil
}

// step success is signaled by a returned human-readable message string,
// NOT a status code ; the caller displays it and advances on non-empty
type messageResponse struct {
	Message string `json:"message"`
}

// SendOtp starts the password-recovery flow.
func (c *Client) SendOtp(ctx context.Context, email string) (message string, err error) {
	res := new(messageResponse)
	err = c.api.Post(rest.Anonymous(ctx), epAdminSendOtp, map[string]string{
		"email": email,
	}, res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// VerifyOtp confirms the one-time code of the recovery flow.
func (c *Client) VerifyOtp(ctx context.Context, otp string) (message string, err error) {
	res := new(messageResponse)
	err = c.api.Post(rest.Anonymous(ctx), epAdminVerifyOtp, map[string]string{
		"otp": otp,
	}, res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// ResetPassword completes the recovery flow.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) (message string, err error) {
	res := new(messageResponse)
	err = c.api.Post(rest.Anonymous(ctx), epAdminResetPassword, map[string]string{
		"email":       email,
		"newPassword": newPassword,
	}, res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// Register creates a (child) administrator account.
// Requires the caller's [bearer] authorization.
func (c *Client) Register(ctx context.Context, account model.RegisterAdmin) (message string, err error) {
	res := new(messageResponse)
	err = c.api.Post(ctx, epAdminRegister, account, res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
