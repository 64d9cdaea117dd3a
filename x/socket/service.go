package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/soda-altruism/portal/core"
)

// Service relays catalog events from redis
type Service interface {
	Stream(ctx context.Context, filter func() Filter, send func(core.CatalogEvent) error) error
}

type service struct {
	rdb *redis.Client
}

// NewService creates a new socket service
func NewService(rdb *redis.Client) Service {
	return &service{rdb}
}

// Stream calls send for every matching event until ctx is done or send fails
func (s *service) Stream(ctx context.Context, filter func() Filter, send func(core.CatalogEvent) error) error {
	pubsub := s.rdb.Subscribe(ctx, core.CatalogEventChannel)
	defer pubsub.Close()

	_, err := pubsub.Receive(ctx)
	if err != nil {
		return err
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var event core.CatalogEvent
			err := json.Unmarshal([]byte(msg.Payload), &event)
			if err != nil {
				slog.WarnContext(ctx, fmt.Sprintf("malformed catalog event: %v", err))
				continue
			}

			if !filter().Match(event) {
				continue
			}

			err = send(event)
			if err != nil {
				return err
			}
		}
	}
}
