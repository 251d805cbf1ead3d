package console

import (
	"cmp"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Operation Context
type Context struct {
	// Operation ID
	Id string
	// Operation Date
	Date time.Time
	// Logger for this Context
	Logger *slog.Logger
	// Operation Context boundary
	Context context.Context
	// Console Service
	Service *Service

	// Session snapshot taken when the operation began ;
	// nil when the operation runs signed out
	Session *model.Session

	// Status
	Error error
}

// Context Option
type ContextFunc func(rpc *Context) error

type contextKey struct{}

func FromContext(ctx context.Context) (rpc *Context, ok bool) {
	rpc, _ = ctx.Value(contextKey{}).(*Context)
	return rpc, (rpc != nil)
}

func WithContext(ctx context.Context, rpc *Context) context.Context {
	if rpc != nil {
		ctx = context.WithValue(ctx, contextKey{}, rpc)
		rpc.Context = ctx // [re]bind !
	}
	return ctx
}

func NewContext(ctx context.Context, opts ...ContextFunc) (rpc *Context, err error) {

	rpc = &Context{
		Id:      uuid.NewString(),
		Date:    model.LocalTime.Now(),
		Context: ctx,
	}
	return rpc, rpc.Init(opts...)
}

func (ctx *Context) Init(opts ...ContextFunc) error {

	err := ctx.Error
	if err != nil {
		return err
	}

	for _, option := range opts {
		// setup
		err = option(ctx)
		if err != nil {
			// temporary
			return err
		}
		if ctx.Error != nil {
			// critical
			return ctx.Error
		}
	}
	// OK
	return nil
}

func GetContext(ctx context.Context, opts ...ContextFunc) (rpc *Context, err error) {
	if rpc, _ = FromContext(ctx); rpc == nil {
		rpc, _ = NewContext(ctx)
	}
	return rpc, rpc.Init(opts...)
}

func (srv *Service) GetContext(ctx context.Context, opts ...ContextFunc) (rpc *Context, err error) {
	rpc, err = GetContext(ctx, func(rpc *Context) error {
		// init
		if rpc.Service == nil {
			rpc.Service = srv
			rpc.Logger = cmp.Or(rpc.Logger, srv.opts.Logs)
			rpc.Session = srv.opts.Sessions.Current()
		}
		// [re]check
		if rpc.Service != srv {
			return errors.Errorf("console: ambiguous [service] authorization")
		}
		// ok
		return nil
	})

	if err == nil && len(opts) > 0 {
		err = rpc.Init(opts...)
	}

	return rpc, err
}

// Authorize requires a signed-in session on the operation.
func Authorize() ContextFunc {
	return func(rpc *Context) error {
		if err := rpc.Session.Verify(); err != nil {
			rpc.Error = errors.SessionExpired()
			return rpc.Error
		}
		return nil
	}
}

// Permission requires the capability [tag] granted to the operation's session.
// Admin role passes unconditionally.
func Permission(tag string) ContextFunc {
	return func(rpc *Context) error {
		if !rpc.Session.HasPermission(tag) {
			rpc.Error = errors.Forbidden(
				errors.Id("console.permission.denied"),
				errors.Message("console: permission [%s] not granted", tag),
			)
			return rpc.Error
		}
		return nil
	}
}
