// Package cache provides an optional Redis-backed cache for query
// responses. Entries hold the marshalled JSON response body, so a hit can be
// written straight back to the client. Concurrent misses for the same key
// are collapsed with singleflight.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/searchlite/searchlite/pkg/config"
	pkgredis "github.com/searchlite/searchlite/pkg/redis"
)

const keyPrefix = "query:"

// QueryCache caches JSON query responses in Redis with a fixed TTL.
type QueryCache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a QueryCache on top of an established Redis client.
func New(client *pkgredis.Client, cfg config.RedisConfig) *QueryCache {
	return &QueryCache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "query-cache"),
	}
}

// Get returns the cached response body for (kind, term, limit), if present.
func (c *QueryCache) Get(ctx context.Context, kind, term string, limit int) ([]byte, bool) {
	key := buildKey(kind, term, limit)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	c.logger.Debug("cache hit", "kind", kind, "term", term)
	return []byte(data), true
}

// Set stores a response body for (kind, term, limit).
func (c *QueryCache) Set(ctx context.Context, kind, term string, limit int, body []byte) {
	key := buildKey(kind, term, limit)
	if err := c.client.Set(ctx, key, body, c.cfg.CacheTTL); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// GetOrCompute returns the cached body, or runs computeFn, marshals its
// result, stores it, and returns it. The bool result reports a cache hit.
func (c *QueryCache) GetOrCompute(
	ctx context.Context,
	kind, term string,
	limit int,
	computeFn func() (any, error),
) ([]byte, bool, error) {
	if body, ok := c.Get(ctx, kind, term, limit); ok {
		return body, true, nil
	}
	key := buildKey(kind, term, limit)
	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		if body, ok := c.Get(ctx, kind, term, limit); ok {
			return body, nil
		}
		result, err := computeFn()
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("marshaling cached response: %w", err)
		}
		c.Set(ctx, kind, term, limit, body)
		return body, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]byte), false, nil
}

// Invalidate removes every cached query response. Called after each document
// add, since any prior answer may have changed.
func (c *QueryCache) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}
	c.logger.Debug("cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the hit and miss counters.
func (c *QueryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func buildKey(kind, term string, limit int) string {
	raw := fmt.Sprintf("%s:%s:limit=%d", kind, strings.ToLower(term), limit)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s%x", keyPrefix, sum[:16])
}
