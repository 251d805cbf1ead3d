package pubsub

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Marshal [event] payload as a JSON message.
func Marshal(event any) (*message.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return message.NewMessage(watermill.NewUUID(), data), nil
}

// Unmarshal decodes the JSON [recv] payload into *[T].
func Unmarshal[T any](recv *message.Message) (*T, error) {
	event := new(T)
	if err := json.Unmarshal(recv.Payload, event); err != nil {
		return nil, err
	}
	return event, nil
}
