// Package redis persists terminal transaction results so they outlive the
// in-memory monitor and can be looked up from another process.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn      *redis.Client
	statusTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to addr and checks the connection with PING. Stored
// statuses expire after statusTTL; zero keeps them forever.
func NewClient(ctx context.Context, addr, username, password string, db int, statusTTL time.Duration) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn:      conn,
		statusTTL: statusTTL,
	}, nil
}
