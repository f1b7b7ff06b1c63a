package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

// MarkNotified records that the notification for eventID went out. It
// returns false when the mark already existed, so redelivered events are
// skipped.
func (c *RedisCache) MarkNotified(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, notifiedKey(eventID), "sent", ttl).Result()
}

// UnmarkNotified drops the mark so a failed send can be retried.
func (c *RedisCache) UnmarkNotified(ctx context.Context, eventID string) error {
	return c.client.Del(ctx, notifiedKey(eventID)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func notifiedKey(eventID string) string {
	return fmt.Sprintf("notified:event:%s", eventID)
}
