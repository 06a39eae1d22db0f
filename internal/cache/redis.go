// Package cache memoizes solve results so identical requests don't pay
// for a fresh SAT solve. Two backings are provided: Redis for
// internal/api's multi-process deployment, and SQLite for cmd/xword's
// single-process use, where standing up Redis would be overkill.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis caches solve results behind a Redis server, grounded on the
// teacher's session/presence use of github.com/redis/go-redis/v9.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// OpenRedis connects to redisURL and verifies connectivity.
func OpenRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parsing redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cache: pinging redis: %w", err)
	}
	return &Redis{client: client, ttl: time.Hour}, nil
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Key derives a cache key from the grid pattern, the candidate word
// list, and how many solutions were requested.
func Key(pattern string, words []string, count int) string {
	h := sha256.New()
	h.Write([]byte(pattern))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(words, "\n")))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", count)
	return "solve:" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached solutions for key, or (nil, false) on a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]string, bool) {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var solutions []string
	if err := json.Unmarshal([]byte(raw), &solutions); err != nil {
		return nil, false
	}
	return solutions, true
}

// Set stores solutions under key, expiring after the cache's TTL.
func (r *Redis) Set(ctx context.Context, key string, solutions []string) error {
	raw, err := json.Marshal(solutions)
	if err != nil {
		return fmt.Errorf("cache: marshaling solutions: %w", err)
	}
	return r.client.Set(ctx, key, raw, r.ttl).Err()
}
