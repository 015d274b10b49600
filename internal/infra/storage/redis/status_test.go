package redis

import (
	"testing"
	"time"

	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txmonitor"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client backed by an in-process Redis.
func newTestClient(t *testing.T, ttl time.Duration) (*client, *miniredis.Miniredis) {
	server := miniredis.RunT(t)

	c, err := NewClient(t.Context(), server.Addr(), "", "", 0, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, server
}

func confirmed(hash string) transaction.Result {
	block := uint64(10)
	return transaction.Result{
		Hash:        hash,
		Status:      transaction.StatusConfirmed,
		BlockNumber: &block,
		GasUsed:     "21000",
	}
}

func TestStatusKey(t *testing.T) {
	assert.Equal(t, "txmonitor:status:0xabc", statusKey("0xABC"))
}

func TestNewClient(t *testing.T) {
	t.Run("fails when the server is unreachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		_, err := NewClient(t.Context(), addr, "", "", 0, time.Minute)
		assert.Error(t, err)
	})
}

func TestClient_SaveStatus(t *testing.T) {
	t.Run("stores the result as json under its hash", func(t *testing.T) {
		// Arrange
		c, server := newTestClient(t, time.Minute)
		result := confirmed("0xABC")

		// Act
		err := c.SaveStatus(t.Context(), result)

		// Assert
		require.NoError(t, err)
		stored, err := server.Get("txmonitor:status:0xabc")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hash":"0xABC","status":"confirmed","blockNumber":10,"gasUsed":"21000"}`, stored)
	})

	t.Run("applies the configured ttl", func(t *testing.T) {
		c, server := newTestClient(t, 90*time.Second)

		require.NoError(t, c.SaveStatus(t.Context(), confirmed("0xabc")))

		assert.Equal(t, 90*time.Second, server.TTL(statusKey("0xabc")))
	})

	t.Run("zero ttl keeps the status forever", func(t *testing.T) {
		c, server := newTestClient(t, 0)

		require.NoError(t, c.SaveStatus(t.Context(), confirmed("0xabc")))

		assert.Zero(t, server.TTL(statusKey("0xabc")))
		server.FastForward(365 * 24 * time.Hour)
		assert.True(t, server.Exists(statusKey("0xabc")))
	})

	t.Run("a later result replaces the earlier one", func(t *testing.T) {
		c, _ := newTestClient(t, time.Minute)

		require.NoError(t, c.SaveStatus(t.Context(), transaction.Failed("0xabc", assert.AnError)))
		require.NoError(t, c.SaveStatus(t.Context(), confirmed("0xabc")))

		got, err := c.LoadStatus(t.Context(), "0xabc")
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusConfirmed, got.Status)
	})
}

func TestClient_LoadStatus(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		c, _ := newTestClient(t, time.Minute)
		result := confirmed("0xabc")
		require.NoError(t, c.SaveStatus(t.Context(), result))

		got, err := c.LoadStatus(t.Context(), "0xABC")

		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("unknown hash", func(t *testing.T) {
		c, _ := newTestClient(t, time.Minute)

		_, err := c.LoadStatus(t.Context(), "0xmissing")
		assert.ErrorIs(t, err, ErrStatusNotFound)
	})

	t.Run("expired status is not found", func(t *testing.T) {
		c, server := newTestClient(t, time.Minute)
		require.NoError(t, c.SaveStatus(t.Context(), confirmed("0xabc")))

		server.FastForward(time.Minute + time.Second)

		_, err := c.LoadStatus(t.Context(), "0xabc")
		assert.ErrorIs(t, err, ErrStatusNotFound)
	})

	t.Run("corrupt payload is a decode error", func(t *testing.T) {
		c, server := newTestClient(t, time.Minute)
		require.NoError(t, server.Set(statusKey("0xabc"), "not json"))

		_, err := c.LoadStatus(t.Context(), "0xabc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStatusNotFound)
		assert.ErrorContains(t, err, "decode status of 0xabc")
	})

	t.Run("server errors are returned as is", func(t *testing.T) {
		c, server := newTestClient(t, time.Minute)
		server.SetError("ERR injected failure")

		_, err := c.LoadStatus(t.Context(), "0xabc")
		assert.ErrorContains(t, err, "injected failure")
		assert.NotErrorIs(t, err, ErrStatusNotFound)
	})
}

func TestClient_AsMonitorStatusStore(t *testing.T) {
	c, _ := newTestClient(t, time.Minute)

	monitor := txmonitor.New(
		txmonitor.WithObserver(txmonitor.SimulatedObserver{Delay: time.Millisecond}),
		txmonitor.WithStatusStore(c),
	)
	t.Cleanup(monitor.Close)

	result, err := monitor.MonitorTransaction(t.Context(), "0xAbC")
	require.NoError(t, err)
	require.Equal(t, transaction.StatusConfirmed, result.Status)

	require.EventuallyWithT(t, func(collect *assert.CollectT) {
		stored, err := c.LoadStatus(t.Context(), "0xabc")
		if assert.NoError(collect, err) {
			assert.Equal(collect, transaction.StatusConfirmed, stored.Status)
		}
	}, time.Second, 5*time.Millisecond)
}
