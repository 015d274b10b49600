package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txmonitor"

	"github.com/redis/go-redis/v9"
)

// ErrStatusNotFound is returned when no terminal status is stored for a hash.
var ErrStatusNotFound = errors.New("transaction status not found")

// statusKeyPrefix is the namespace of every key written by the status store.
const statusKeyPrefix = "txmonitor"

var _ txmonitor.StatusStore = (*client)(nil)

// statusKey returns "txmonitor:status:<hash>" with the hash lowercased.
func statusKey(hash string) string {
	return fmt.Sprintf("%s:status:%s", statusKeyPrefix, strings.ToLower(hash))
}

// SaveStatus stores result as JSON under its hash.
func (c *client) SaveStatus(ctx context.Context, result transaction.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, statusKey(result.Hash), data, c.statusTTL).Err()
}

// LoadStatus returns the stored result of hash, or ErrStatusNotFound.
func (c *client) LoadStatus(ctx context.Context, hash string) (transaction.Result, error) {
	data, err := c.conn.Get(ctx, statusKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ErrStatusNotFound
		}
		return transaction.Result{}, err
	}

	var result transaction.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return transaction.Result{}, fmt.Errorf("decode status of %s: %w", hash, err)
	}
	return result, nil
}
