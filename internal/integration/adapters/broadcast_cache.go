// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kas-sigmafam/backend/internal/application/adapter"
)

// versionKey tracks the current cache generation. Invalidation bumps it, which
// orphans every key of the previous generation; orphans age out via TTL.
const versionKey = "broadcast:version"

// redisBroadcastCache implements adapter.BroadcastCache on Redis.
type redisBroadcastCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBroadcastCache creates a Redis-backed broadcast cache with the
// given entry TTL.
func NewRedisBroadcastCache(client *redis.Client, ttl time.Duration) adapter.BroadcastCache {
	return &redisBroadcastCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the period, or nil on a miss.
func (c *redisBroadcastCache) Get(ctx context.Context, year, month int) ([]byte, error) {
	key, err := c.periodKey(ctx, year, month)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload for the period under the current generation.
func (c *redisBroadcastCache) Set(ctx context.Context, year, month int, payload []byte) error {
	key, err := c.periodKey(ctx, year, month)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Invalidate drops all cached periods by advancing the generation counter.
func (c *redisBroadcastCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

// periodKey builds the generation-scoped key for a period.
func (c *redisBroadcastCache) periodKey(ctx context.Context, year, month int) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("broadcast:v%d:%d-%02d", version, year, month), nil
}

// noopBroadcastCache is the fallback when Redis is not configured; every Get
// is a miss and the broadcast is rendered fresh per request.
type noopBroadcastCache struct{}

// NewNoopBroadcastCache creates a cache that stores nothing.
func NewNoopBroadcastCache() adapter.BroadcastCache {
	return noopBroadcastCache{}
}

func (noopBroadcastCache) Get(ctx context.Context, year, month int) ([]byte, error) {
	return nil, nil
}

func (noopBroadcastCache) Set(ctx context.Context, year, month int, payload []byte) error {
	return nil
}

func (noopBroadcastCache) Invalidate(ctx context.Context) error {
	return nil
}
