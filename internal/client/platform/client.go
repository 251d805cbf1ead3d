package platform

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Platform admin API (Service) Client
type Client struct {
	api    *rest.Client
	logger *slog.Logger
	creds  rest.TokenSource
	// GET /get/admin/profile ; keyed by bearer token
	profiles simplelru.LRUCache[string, *model.Profile]
	// dashboard counters ; short-lived
	metrics simplelru.LRUCache[string, *model.DashboardMetrics]
}

func NewClient(logger *slog.Logger, api *rest.Client, creds rest.TokenSource) *Client {
	return &Client{
		api:      api,
		logger:   logger,
		creds:    creds,
		profiles: expirable.NewLRU[string, *model.Profile](0, nil, time.Minute),
		metrics:  expirable.NewLRU[string, *model.DashboardMetrics](0, nil, 30*time.Second),
	}
}

// token of the current session ; cache key
func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}
