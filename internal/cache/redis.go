// Package cache is a read-through cache for seat listings, keyed by show.
// It lives in the HTTP layer: the reservation core never reads or writes
// it, and mutating handlers invalidate after each successful operation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis. Callers should treat a connection failure as a
// signal to run without caching, not as fatal.
func New(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Client{rdb: rdb, ttl: ttl}, nil
}

func seatsKey(showID string) string {
	return "seats:" + showID
}

// GetSeatsRaw returns the cached seat listing as raw JSON, avoiding a
// decode/encode round trip on cache hits.
func (c *Client) GetSeatsRaw(ctx context.Context, showID string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, seatsKey(showID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cache miss for show %s", showID)
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return data, nil
}

// SetSeats stores a seat listing with the configured TTL. Failures are
// swallowed: the cache is advisory.
func (c *Client) SetSeats(ctx context.Context, showID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, seatsKey(showID), data, c.ttl)
}

// InvalidateSeats drops the listing for one show.
func (c *Client) InvalidateSeats(ctx context.Context, showID string) {
	c.rdb.Del(ctx, seatsKey(showID))
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
