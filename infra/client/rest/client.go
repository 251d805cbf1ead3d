package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/x/logx"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
)

// well-known headers
const (
	hAuthorization = "Authorization"
	hContentType   = "Content-Type"
	hUserAgent     = "User-Agent"

	mediaJSON = "application/json"
)

// Client ; the ONE configured request client of the console.
//
// Attaches the [bearer] credential to every outgoing request and
// centralizes failure decoding: feature code never threads the token.
type Client struct {
	logger *slog.Logger
	base   *url.URL
	client *http.Client
	expire func() // 401 hook ; uniform session-expiry rule
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {

	setup := Options{
		UserAgent: "admin-console",
		Logger:    slog.Default(),
	}
	for _, option := range opts {
		option(&setup)
	}

	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rest: parse base address: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("rest: unsupported base address %q", baseURL)
	}

	next := setup.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	return &Client{
		logger: setup.Logger,
		base:   base,
		expire: setup.OnUnauthorized,
		client: &http.Client{
			Timeout: setup.Timeout,
			Transport: &authTransport{
				next:  next,
				creds: setup.Credentials,
				agent: setup.UserAgent,
			},
		},
	}, nil
}

// OnUnauthorized (re)binds the 401 hook.
// The session owner is built on top of this client,
// so its forced-logout callback arrives after construction.
func (c *Client) OnUnauthorized(hook func()) {
	c.expire = hook
}

type anonymousKey struct{}

// Anonymous marks the request credential-free: no [bearer] attached,
// and a 401 keeps the server's own error instead of the uniform
// session-expiry rule. Sign-in and account-recovery calls use it ;
// a rejected password there must NOT discard the current session.
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func anonymous(ctx context.Context) bool {
	on, _ := ctx.Value(anonymousKey{}).(bool)
	return on
}

// authTransport ; request interceptor.
// Reads a token from the credential source and attaches it
// as an [Authorization: Bearer <token>] header when present.
type authTransport struct {
	next  http.RoundTripper
	creds TokenSource
	agent string
}

var _ http.RoundTripper = (*authTransport)(nil)

func (c *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get(hUserAgent) == "" {
		req.Header.Set(hUserAgent, c.agent)
	}
	if c.creds != nil && !anonymous(req.Context()) && req.Header.Get(hAuthorization) == "" {
		if token := c.creds.Token(); token != "" {
			req.Header.Set(hAuthorization, "Bearer "+token)
		}
	}
	return c.next.RoundTrip(req)
}

// resolve [path?query] against the fixed base address.
func (c *Client) resolve(path string, query url.Values) string {
	ref := *c.base
	ref.Path = strings.TrimSuffix(ref.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	return ref.String()
}

// Do sends [in] as JSON and decodes a 2xx body into [out], when given.
//
// Failures are returned as *errors.Error decoded from the response body.
// A 401 triggers the configured expiry hook and yields the ONE canonical
// session-expired error, for all call sites identically ; requests marked
// [Anonymous] are exempt and keep the server's own error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set(hContentType, mediaJSON)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {

	res, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("api: request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized && !anonymous(req.Context()) {
		// expired -or- invalid token ; uniformly force logout
		if hook := c.expire; hook != nil {
			hook()
		}
		c.logger.Warn("api: unauthorized ; session expired",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
		return errors.SessionExpired()
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err := errors.FromResponse(res.StatusCode, string(data))
		c.logger.Warn("api: request rejected",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("status", err.Status),
			slog.Int("code", res.StatusCode),
		)
		return err
	}

	if logx.Debug("rest", "api") {
		c.logger.Debug("api: response",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("code", res.StatusCode),
			slog.String("body", string(data)),
		)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}
