package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var _ model.Notifier = (*RedisNotifier)(nil)

// publisher is the part of the redis client the notifier uses.
type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes notifications as JSON to a channel read by the mail service.
type RedisNotifier struct {
	client  publisher
	channel string
}

// NewRedisClient creates a redis client for the given address.
func NewRedisClient(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisNotifier(client publisher, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

func (n *RedisNotifier) Send(ctx context.Context, msg model.Notification) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
