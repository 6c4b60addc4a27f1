// Package cache is a redis-backed view cache. Keys name logical views
// (admin services listing, public catalog, ...); mutating actions invalidate
// the views that depend on the changed entity. Redis being down must never
// break an action, so every operation fails safe.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	ViewAdminServices  = "view:admin:services"
	ViewAdminStylists  = "view:admin:stylists"
	ViewAdminOfferings = "view:admin:offerings"
	ViewPublicServices = "view:public:services"
	ViewPublicStylists = "view:public:stylists"
)

const DefaultTTL = 5 * time.Minute

type Client struct {
	rdb *redis.Client
}

func New(addr, password string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get returns the cached view or nil on miss; redis errors read as a miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}
	return b, nil
}

func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, key, value, ttl)
}

// Invalidate drops the named views so the next read recomputes them.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
