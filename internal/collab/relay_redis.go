package collab

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

// RedisRelay is a [Relay] over one Redis Pub/Sub channel.
type RedisRelay struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewRedisRelay returns a relay publishing to channel.
func NewRedisRelay(client *redis.Client, channel string, logger *logger.Logger) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (r *RedisRelay) Publish(ctx context.Context, env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe blocks until ctx is done. Malformed payloads are logged and
// skipped.
func (r *RedisRelay) Subscribe(ctx context.Context, handle func(Envelope)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	// wait for the subscription to be confirmed so no publish is missed
	// after Subscribe is known to be running
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var env Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				r.logger.Warn().Err(err).
					Str("func", "RedisRelay.Subscribe").
					Msg("skipping malformed relay payload")
				continue
			}
			handle(env)
		}
	}
}
