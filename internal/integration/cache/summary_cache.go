// Package cache provides Redis-backed caching for aggregated read models.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smartspend/backend/internal/application/adapter"
)

const summaryKeyPrefix = "dashboard:summary:"

// RedisSummaryCache implements the adapter.SummaryCache interface using Redis.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: client,
	}
}

// Get returns the cached summary payload for a user, or nil on miss.
func (c *RedisSummaryCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}
	return payload, nil
}

// Set stores the summary payload for a user with the given TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, summaryKey(userID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary for a user.
func (c *RedisSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, summaryKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached summary: %w", err)
	}
	return nil
}

func summaryKey(userID uuid.UUID) string {
	return summaryKeyPrefix + userID.String()
}

// Ensure implementation satisfies the interface.
var _ adapter.SummaryCache = (*RedisSummaryCache)(nil)
