// Package stream delivers live booking and venue events over Redis pub/sub.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"groundio/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

var ErrSubscriptionClosed = errors.New("feed subscription closed")

type Feed struct {
	client *redis.Client
}

func NewFeed(client *redis.Client) *Feed {
	return &Feed{client: client}
}

func (f *Feed) Publish(ctx context.Context, topic string, ev shared.LiveEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode live event: %w", err)
	}
	if err := f.client.Publish(ctx, topic, data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe waits for the subscription to be confirmed so no event published
// after it returns is missed.
func (f *Feed) Subscribe(ctx context.Context, topics ...string) (shared.LiveSubscription, error) {
	ps := f.client.Subscribe(ctx, topics...)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %v: %w", topics, err)
	}
	return &Subscription{ps: ps}, nil
}

type Subscription struct {
	ps   *redis.PubSub
	once sync.Once
}

// Next blocks until an event arrives, ctx ends, or the subscription is closed.
// Undecodable payloads are skipped.
func (s *Subscription) Next(ctx context.Context) (shared.LiveEvent, error) {
	for {
		msg, err := s.ps.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, redis.ErrClosed) {
				return shared.LiveEvent{}, ErrSubscriptionClosed
			}
			return shared.LiveEvent{}, err
		}

		var ev shared.LiveEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			slog.WarnContext(ctx, "dropping undecodable live event", "channel", msg.Channel, "error", err.Error())
			continue
		}
		return ev, nil
	}
}

func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.ps.Close()
	})
	return err
}
