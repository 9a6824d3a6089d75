package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gig-market/utils"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notifications:"

// Bridge fans notifications out through Redis Pub/Sub so that in a
// multi-instance deployment every process delivers to its own local
// sessions. It satisfies the same Notifier contract as the Hub: emits are
// published to Redis, and the Run loop feeds received messages into the
// local hub.
type Bridge struct {
	client *redis.Client
	hub    *Hub
}

// NewBridge connects to Redis and wraps the local hub
func NewBridge(addr, password string, db int, hub *Hub) (*Bridge, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Bridge{client: client, hub: hub}, nil
}

// EmitToUser publishes the event to the user's notification channel.
// Every subscribed instance, this one included, delivers it locally.
func (b *Bridge) EmitToUser(userID, event string, payload any) error {
	data, err := MarshalEnvelope(event, payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.client.Publish(ctx, channelPrefix+userID, data).Err(); err != nil {
		return fmt.Errorf("publish notification for user %s: %w", userID, err)
	}
	return nil
}

// Run subscribes to all notification channels and forwards messages to the
// local hub until the context is cancelled. This is a blocking operation -
// run in a goroutine.
func (b *Bridge) Run(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			userID := strings.TrimPrefix(msg.Channel, channelPrefix)
			if userID == "" || userID == msg.Channel {
				utils.Warn("notification on unexpected channel", map[string]any{"channel": msg.Channel})
				continue
			}
			b.hub.Broadcast(userID, []byte(msg.Payload))
		}
	}
}

// Close closes the Redis connection
func (b *Bridge) Close() error {
	return b.client.Close()
}
