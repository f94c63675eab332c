package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	metadataKey = "metadata:summary"
	metadataTTL = 5 * time.Minute
)

// MetadataCache stores the assembled metadata payload in Redis so the
// metadata endpoint does not hit Mongo on every request.
type MetadataCache struct {
	client *redis.Client
}

// NewMetadataCache creates a MetadataCache wrapping the given Redis client.
func NewMetadataCache(client *redis.Client) *MetadataCache {
	return &MetadataCache{client: client}
}

// Get returns the cached payload, or (nil, nil) on a miss.
func (c *MetadataCache) Get(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, metadataKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("metadata cache get: %w", err)
	}
	return payload, nil
}

// Set stores the payload (expires after metadataTTL).
func (c *MetadataCache) Set(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, metadataKey, payload, metadataTTL).Err()
}
