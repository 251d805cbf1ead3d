package profile

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/pubsub"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/x/logx"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/client/platform"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/session"
)

// ServiceOptions from DI container
type ServiceOptions struct {
	fx.In

	Logs    *slog.Logger
	Session *session.Service
	API     *platform.Client
	Broker  pubsub.Provider
}

// Service keeps the signed-in admin's profile record.
//
// The credential always comes from the session service ;
// a missing session fails fast, before any network round trip.
type Service struct {
	opts ServiceOptions
	logs *slog.Logger

	mu      sync.Mutex
	profile *model.Profile
}

// UpdateResult ; outcome of a profile update attempt.
// Update never returns an error: failures surface here as text.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewService(opts ServiceOptions) *Service {
	srv := &Service{
		opts: opts,
		logs: logx.ModuleLogger("profile", opts.Logs),
	}
	go srv.watch()
	return srv
}

// watch drops the cached record when the session goes away.
func (srv *Service) watch() {
	events, err := srv.opts.Broker.Subscribe(
		context.Background(), pubsub.TopicSessionUpdated,
	)
	if err != nil {
		srv.logs.Warn("session watch", slog.Any("error", err))
		return
	}
	for notice := range events {
		event, err := pubsub.Unmarshal[session.Event](notice)
		notice.Ack()
		if err != nil {
			continue
		}
		switch event.Type {
		case session.EventLogout, session.EventExpired:
			srv.mu.Lock()
			srv.profile = nil
			srv.mu.Unlock()
		}
	}
}

// Current profile snapshot ; nil until fetched.
func (srv *Service) Current() *model.Profile {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.profile
}

// Fetch the profile of the signed-in admin.
func (srv *Service) Fetch(ctx context.Context) (*model.Profile, error) {
	if srv.opts.Session.Token() == "" {
		return nil, errors.SessionExpired()
	}
	data, err := srv.opts.API.Profile(ctx)
	if err != nil {
		return nil, err
	}
	srv.mu.Lock()
	srv.profile = data
	srv.mu.Unlock()

	srv.publish()
	return data, nil
}

// Update PUTs the defined [fields] plus an optional avatar file.
// On success the record is re-fetched so observers see fresh state ;
// on failure the stale record stays as-is and Message carries the cause.
func (srv *Service) Update(ctx context.Context, fields map[string]string, avatarPath string) UpdateResult {
	if srv.opts.Session.Token() == "" {
		return UpdateResult{
			Message: errors.SessionExpired().Message,
		}
	}
	err := srv.opts.API.UpdateProfile(ctx, fields, avatarPath)
	if err != nil {
		text := "Update failed"
		if re, ok := errors.FromError(err); ok && re != nil && re.Message != "" {
			text = re.Message
		}
		srv.logs.Warn("profile update", slog.Any("error", err))
		return UpdateResult{
			Message: text,
		}
	}
	// re-fetch ; failure here does not undo the successful write
	if _, err = srv.Fetch(ctx); err != nil {
		srv.logs.Warn("profile refresh", slog.Any("error", err))
	}
	return UpdateResult{
		Success: true,
		Message: "Profile updated successfully",
	}
}

func (srv *Service) publish() {
	if err := srv.opts.Broker.Publish(pubsub.TopicProfileUpdated, srv.Current()); err != nil {
		srv.logs.Warn("profile event", slog.Any("error", err))
	}
}
