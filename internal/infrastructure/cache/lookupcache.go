// Package cache provides Redis-backed caching for reference data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sanad/internal/domain/lookup"
)

// ErrCacheMiss indicates the requested query has no cached entry.
var ErrCacheMiss = errors.New("lookup cache miss")

// LookupCache stores lookup result sets in Redis so repeated dropdown
// requests skip the database.
type LookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLookupCache(client *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *LookupCache) Get(ctx context.Context, q lookup.Query) ([]lookup.Entry, error) {
	data, err := c.client.Get(ctx, q.CacheKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read lookup cache: %w", err)
	}

	var entries []lookup.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached lookup entries: %w", err)
	}

	return entries, nil
}

func (c *LookupCache) Set(ctx context.Context, q lookup.Query, entries []lookup.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal lookup entries: %w", err)
	}

	if err := c.client.Set(ctx, q.CacheKey(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write lookup cache: %w", err)
	}

	return nil
}

// Invalidate drops every cached result set for the given stored
// procedure name across languages and parameters.
func (c *LookupCache) Invalidate(ctx context.Context, spName string) error {
	pattern := fmt.Sprintf("lookup:%s:*", spName)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan lookup cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate lookup cache: %w", err)
	}

	return nil
}
