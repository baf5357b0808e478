package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetSession stores a session record mapping session id to account id.
// Revocation is server-side: a deleted record makes the bearer token
// useless even before it expires.
func (c *Client) SetSession(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionKey(sessionID), accountID, ttl).Err()
}

// GetSession resolves a session id to an account id. Returns ("", nil)
// when the session does not exist or was revoked.
func (c *Client) GetSession(ctx context.Context, sessionID string) (string, error) {
	accountID, err := c.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session failed: %w", err)
	}
	return accountID, nil
}

// DeleteSession revokes a session record
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

// AcquireOrderLock takes a short-lived lock for one order so a duplicate
// in-flight Complete/Cancel submission is rejected before touching the
// database.
func (c *Client) AcquireOrderLock(ctx context.Context, orderID string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, orderLockKey(orderID), "1", ttl).Result()
}

// ReleaseOrderLock releases an order lock
func (c *Client) ReleaseOrderLock(ctx context.Context, orderID string) error {
	return c.rdb.Del(ctx, orderLockKey(orderID)).Err()
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func orderLockKey(orderID string) string {
	return fmt.Sprintf("lock:order:%s", orderID)
}
