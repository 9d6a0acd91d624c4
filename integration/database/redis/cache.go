package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/revocation"
)

// Cache adapts a Redis client to the revocation.Cache contract. Writes use
// an absolute expiration (SET ... EXAT), so the entry's lifetime matches the
// revoked token's expiry exactly instead of a relative TTL recomputed on the
// application side.
type Cache struct {
	client *redis.Client
}

// Compile-time check that Cache satisfies the blacklist contract.
var _ revocation.Cache = (*Cache)(nil)

// NewCache creates a revocation cache over the given client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Set stores value under key until expiresAt. The write is a blind per-key
// upsert; Redis guarantees its atomicity.
func (c *Cache) Set(ctx context.Context, key, value string, expiresAt time.Time) error {
	return c.client.SetArgs(ctx, key, value, redis.SetArgs{ExpireAt: expiresAt}).Err()
}

// Get returns the value for key. A missing or already-evicted key is a miss,
// not an error.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
