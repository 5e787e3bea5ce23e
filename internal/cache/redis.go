// Package cache wraps the Redis client used to memoize backend payloads.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent. Callers treat it like any other
// miss and go to the backend.
var ErrMiss = errors.New("cache: miss")

type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies the connection. Callers that run
// without Redis simply pass a nil *Client around; every method tolerates it.
func NewClient(addr string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb}, nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, ErrMiss
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
