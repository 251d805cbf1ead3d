package session

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/log/slogx"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/pubsub"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/x/logx"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/client/platform"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store"
)

// ServiceOptions from DI container
type ServiceOptions struct {
	fx.In

	Logs   *slog.Logger
	Store  store.SessionStore
	API    *platform.Client
	Broker pubsub.Provider
}

// Service owns the signed-in admin state.
// It is the only writer of the session store ;
// everything else observes through Current or the broker.
type Service struct {
	opts ServiceOptions
	logs *slog.Logger

	mu      sync.Mutex
	session *model.Session
	// last auth operation failure ; cleared on success
	lastErr error
}

func NewService(opts ServiceOptions) (*Service, error) {
	srv := &Service{
		opts: opts,
		logs: logx.ModuleLogger("session", opts.Logs),
	}
	// hydrate ; absent or malformed state starts signed out
	data, err := opts.Store.Load()
	if err != nil {
		return nil, err
	}
	if data != nil {
		srv.session = data
		srv.logs.Debug("session restored",
			slog.String("user", data.Identity.UserName),
			slog.String("role", string(data.Identity.Role)),
			slogx.Token("token", data.Token),
		)
	}
	return srv, nil
}

// Current session snapshot ; nil when signed out.
func (srv *Service) Current() *model.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.session
}

// Token of the current session ; empty when signed out.
// Implements [rest.TokenSource].
func (srv *Service) Token() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.session == nil {
		return ""
	}
	return srv.session.Token
}

// Err returns the failure of the last auth operation, if any.
func (srv *Service) Err() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.lastErr
}

// Login authenticates against the platform and persists the grant.
// On failure the previous session state is left untouched.
func (srv *Service) Login(ctx context.Context, identifier, password string) error {
	grant, err := srv.opts.API.Login(ctx, identifier, password)
	if err != nil {
		srv.fail(err)
		return err
	}
	data := &model.Session{
		Identity: model.Identity{
			UserName: grant.Admin.UserName,
			Email:    grant.Admin.Email,
			Role:     grant.Admin.Role,
		},
		Token:       grant.Token,
		Permissions: grant.GrantedPermissions,
		Date:        model.LocalTime.Now(),
	}
	if err = data.Verify(); err != nil {
		srv.fail(err)
		return err
	}
	if err = srv.opts.Store.Save(data); err != nil {
		srv.fail(err)
		return err
	}

	srv.mu.Lock()
	srv.session = data
	srv.lastErr = nil
	srv.mu.Unlock()

	srv.logs.Info("signed in",
		slog.String("user", data.Identity.UserName),
		slog.String("role", string(data.Identity.Role)),
		slogx.Token("token", data.Token),
	)
	srv.notify(EventLogin, data)
	return nil
}

// Logout discards the session unconditionally ; idempotent.
func (srv *Service) Logout(ctx context.Context) error {
	srv.mu.Lock()
	had := srv.session != nil
	srv.session = nil
	srv.lastErr = nil
	srv.mu.Unlock()

	if err := srv.opts.Store.Clear(); err != nil {
		return err
	}
	if had {
		srv.logs.Info("signed out")
	}
	srv.notify(EventLogout, nil)
	return nil
}

// Expire drops the session after the platform rejected its token.
// Wired as the transport's unauthorized hook.
func (srv *Service) Expire() {
	srv.mu.Lock()
	had := srv.session != nil
	srv.session = nil
	srv.mu.Unlock()

	_ = srv.opts.Store.Clear()
	if had {
		srv.logs.Warn("session expired ; sign in again")
		srv.notify(EventExpired, nil)
	}
}

// SendOtp starts account recovery for the given e-mail.
func (srv *Service) SendOtp(ctx context.Context, email string) (string, error) {
	text, err := srv.opts.API.SendOtp(ctx, email)
	if err != nil {
		srv.fail(err)
		return "", err
	}
	return text, nil
}

// VerifyOtp confirms the recovery code sent to the e-mail.
func (srv *Service) VerifyOtp(ctx context.Context, otp string) (string, error) {
	text, err := srv.opts.API.VerifyOtp(ctx, otp)
	if err != nil {
		srv.fail(err)
		return "", err
	}
	return text, nil
}

// ResetPassword concludes recovery with a new password.
func (srv *Service) ResetPassword(ctx context.Context, email, password string) (string, error) {
	text, err := srv.opts.API.ResetPassword(ctx, email, password)
	if err != nil {
		srv.fail(err)
		return "", err
	}
	return text, nil
}

// CreateChildAdmin registers a restricted admin account.
// The payload must declare the Child_Admin type ;
// anything else is rejected before any network round trip.
func (srv *Service) CreateChildAdmin(ctx context.Context, req model.RegisterAdmin) (string, error) {
	if req.UserName == "" {
		err := errors.BadRequest(
			errors.Id("console.admin.username.required"),
			errors.Message("createChildAdmin( username: ! ) ; required"),
		)
		srv.fail(err)
		return "", err
	}
	if req.AdminType != model.RoleChildAdmin {
		err := errors.Forbidden(
			errors.Id("console.admin.type.invalid"),
			errors.Message("Only main admin can create child admins"),
		)
		srv.fail(err)
		return "", err
	}
	text, err := srv.opts.API.Register(ctx, req)
	if err != nil {
		srv.fail(err)
		return "", err
	}
	srv.logs.Info("child admin registered", slog.String("user", req.UserName))
	return text, nil
}

func (srv *Service) fail(err error) {
	srv.mu.Lock()
	srv.lastErr = err
	srv.mu.Unlock()
}

func (srv *Service) notify(kind string, data *model.Session) {
	event := Event{Type: kind}
	if data != nil {
		event.Role = data.Identity.Role
		event.Permissions = data.Permissions.Clone()
	}
	if err := srv.opts.Broker.Publish(pubsub.TopicSessionUpdated, event); err != nil {
		srv.logs.Warn("session event", slog.Any("error", err))
	}
}
