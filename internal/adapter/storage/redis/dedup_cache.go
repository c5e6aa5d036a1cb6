package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupCache implements ports.DedupCache over Redis. It is the fast-path
// hint in front of the postgres inbound ledger; a cache error or expired
// key only costs a ledger round trip, never correctness. Keys are written
// only for ids the ledger has committed, so a hit never hides an event
// the ledger failed to record.
type DedupCache struct {
	client *goredis.Client
	prefix string
}

// NewDedupCache creates a new Redis-backed dedup cache.
func NewDedupCache(client *goredis.Client) *DedupCache {
	return &DedupCache{
		client: client,
		prefix: "inbound:seen:",
	}
}

// Seen reports whether the provider event id has been marked.
func (c *DedupCache) Seen(ctx context.Context, providerEventID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+providerEventID).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records a provider event id for the dedup window. Overwriting
// an existing key is harmless; it only refreshes the TTL.
func (c *DedupCache) MarkSeen(ctx context.Context, providerEventID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+providerEventID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis dedup mark: %w", err)
	}
	return nil
}
