package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Well-known topics of the console event bus.
const (
	// Session state changed: login, logout, token invalidated
	TopicSessionUpdated = "session.updated"
	// Profile record (re)fetched -or- updated
	TopicProfileUpdated = "profile.updated"
)

// Provider ; in-process pub/sub of console state changes.
//
// Navigation and profile state recompute whenever role/permissions
// change by subscribing here, instead of polling the session slot.
type Provider interface {
	Publish(topic string, event any) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

type provider struct {
	bus *gochannel.GoChannel
}

func NewProvider(logger *slog.Logger) Provider {
	return &provider{
		bus: gochannel.NewGoChannel(
			gochannel.Config{
				// subscribers joining after a publish still observe the
				// earlier state transitions
				Persistent: true,
			},
			watermill.NewSlogLogger(logger),
		),
	}
}

func (c *provider) Publish(topic string, event any) error {
	msg, err := Marshal(event)
	if err != nil {
		return err
	}
	return c.bus.Publish(topic, msg)
}

func (c *provider) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return c.bus.Subscribe(ctx, topic)
}

func (c *provider) Close() error {
	return c.bus.Close()
}
