package cmd

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	sfmt "github.com/samber/slog-formatter"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"go.uber.org/fx"

	"github.com/suriyadlktech-jpg/Admin-Panel/config"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/pubsub"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/client/platform"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store/file"
)

func ProvideLogger(cfg *config.Config, lc fx.Lifecycle) (*slog.Logger, error) {
	logSettings := cfg.Log

	if !logSettings.Console && logSettings.File == "" {
		logSettings.Console = true
	}

	level := parseLevel(logSettings.Level)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handlers []slog.Handler

	if logSettings.Console {
		var h slog.Handler
		if logSettings.JSON {
			h = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			h = console(os.Stderr, level, logSettings.NoColor)
		}
		handlers = append(handlers, h)
	}

	// File Handler
	if logSettings.File != "" {
		f, err := os.OpenFile(logSettings.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return f.Close()
			},
		})

		var h slog.Handler
		if logSettings.JSON {
			h = slog.NewJSONHandler(f, opts)
		} else {
			h = slog.NewTextHandler(f, opts)
		}
		handlers = append(handlers, h)
	}

	var finalHandler slog.Handler
	if len(handlers) == 0 {
		finalHandler = slog.NewTextHandler(os.Stderr, opts)
	} else if len(handlers) == 1 {
		finalHandler = handlers[0]
	} else {
		finalHandler = MultiHandler(handlers...)
	}

	logger := slog.New(finalHandler)
	slog.SetDefault(logger)

	return logger, nil
}

func parseLevel(input string) (level slog.Level) {
	err := level.UnmarshalText([]byte(input))
	if err != nil {
		// default: info
		level = slog.LevelInfo
	}
	return // level
}

func console(output *os.File, verbose slog.Level, noColor bool) slog.Handler {
	colorize := !noColor
	if vs := os.Getenv("ADMIN_LOG_COLOR"); vs != "" {
		colorize, _ = strconv.ParseBool(vs)
	}
	if colorize {
		colorize = isatty.IsTerminal(
			output.Fd(),
		)
	}
	return sfmt.NewFormatterHandler(
		sfmt.ErrorFormatter("err"),
		sfmt.ErrorFormatter("error"),
	)(
		tint.NewHandler(output, &tint.Options{
			AddSource:  false,
			Level:      verbose.Level(),
			TimeFormat: "Jan 02 15:04:05.000", // time.StampMilli,
			NoColor:    !colorize,
		}),
	)
}

type multiHandler struct {
	handlers []slog.Handler
}

func MultiHandler(handlers ...slog.Handler) slog.Handler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, r.Level) {
			_ = hh.Handle(ctx, r)
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		newHandlers[i] = hh.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		newHandlers[i] = hh.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

func ProvidePubSub(l *slog.Logger, lc fx.Lifecycle) (pubsub.Provider, error) {
	provider := pubsub.NewProvider(l)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})
	return provider, nil
}

func ProvideSessionStore(cfg *config.Config, l *slog.Logger) store.SessionStore {
	return file.NewSessionStore(l, cfg.Session.File)
}

// ProvideRESTClient builds the ONE request client of the console.
// The credential source reads the persisted session record, so a token
// saved by a previous run authorizes this one without re-login.
// The 401 hook is bound later, once the session owner exists.
func ProvideRESTClient(cfg *config.Config, l *slog.Logger, data store.SessionStore) (*rest.Client, error) {
	creds := rest.TokenSourceFunc(func() string {
		record, err := data.Load()
		if err != nil || record == nil {
			return ""
		}
		return record.Token
	})
	return rest.NewClient(cfg.API.BaseURL,
		rest.WithTimeout(cfg.API.Timeout),
		rest.WithCredentials(creds),
		rest.WithLogger(l),
		rest.WithUserAgent(ServiceName+"/"+version),
	)
}

func ProvidePlatformClient(l *slog.Logger, api *rest.Client, data store.SessionStore) *platform.Client {
	creds := rest.TokenSourceFunc(func() string {
		record, err := data.Load()
		if err != nil || record == nil {
			return ""
		}
		return record.Token
	})
	return platform.NewClient(l, api, creds)
}
