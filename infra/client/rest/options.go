package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// TokenSource yields the current [bearer] credential ; blank if signed out.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc implements TokenSource interface
type TokenSourceFunc func() string

func (fn TokenSourceFunc) Token() string {
	if fn != nil {
		return fn()
	}
	return ""
}

// Service REST Client Options
type Options struct {
	// Fixed base address, e.g.: http://localhost:5000/api
	BaseURL string
	// Per-request timeout ; 0 relies on transport defaults
	Timeout time.Duration
	// Bearer credential source ; optional
	Credentials TokenSource
	// Invoked once per 401 response, before the canonical
	// session-expired error is returned to the caller
	OnUnauthorized func()
	// Underlying transport ; optional
	Transport http.RoundTripper
	// User-Agent header value
	UserAgent string

	Logger *slog.Logger
}

type Option func(opts *Options)

func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		if timeout > 0 {
			opts.Timeout = timeout
		}
	}
}

func WithCredentials(src TokenSource) Option {
	return func(opts *Options) {
		opts.Credentials = src
	}
}

func WithUnauthorized(hook func()) Option {
	return func(opts *Options) {
		opts.OnUnauthorized = hook
	}
}

func WithTransport(next http.RoundTripper) Option {
	return func(opts *Options) {
		opts.Transport = next
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

func WithUserAgent(agent string) Option {
	return func(opts *Options) {
		if agent != "" {
			opts.UserAgent = agent
		}
	}
}
