package geocode_cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:reverse:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Key координаты округляются до 6 знаков (~0.1 м).
func Key(latitude, longitude float64) string {
	return fmt.Sprintf("%s%.6f,%.6f", keyPrefix, latitude, longitude)
}

func (c *Cache) Get(ctx context.Context, latitude, longitude float64) (string, bool, error) {
	address, err := c.client.Get(ctx, Key(latitude, longitude)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("geocode cache get: %w", err)
	}
	return address, true, nil
}

func (c *Cache) Set(ctx context.Context, latitude, longitude float64, address string) error {
	err := c.client.Set(ctx, Key(latitude, longitude), address, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("geocode cache set: %w", err)
	}
	return nil
}
