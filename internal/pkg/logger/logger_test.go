package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	logger = zap.NewNop().Sugar()
	initOnce = sync.Once{}
}

// entries decodes every JSON line written to buf.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}

	return out
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			require.NoError(t, Init(WithLevel(level)))
			assert.NotNil(t, logger)
		}
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("invalid"))
		assert.Error(t, err)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		require.NoError(t, Init(WithLevel("debug")))
		first := logger

		require.NoError(t, Init(WithLevel("error")))
		assert.Same(t, first, logger, "Init() should only initialize once")
	})

	t.Run("level filters entries", func(t *testing.T) {
		resetLogger()
		var buf bytes.Buffer
		require.NoError(t, Init(WithLevel("warn"), WithOutput(&buf)))

		Info(t.Context(), "dropped")
		Warn(t.Context(), "kept", "key", "value")

		logged := entries(t, &buf)
		require.Len(t, logged, 1)
		assert.Equal(t, "kept", logged[0]["msg"])
		assert.Equal(t, "value", logged[0]["key"])
	})
}

func TestDerive(t *testing.T) {
	resetLogger()
	var buf bytes.Buffer
	require.NoError(t, Init(WithLevel("debug"), WithOutput(&buf)))

	t.Run("derived fields are attached to every entry", func(t *testing.T) {
		buf.Reset()
		ctx := Derive(t.Context(), "batch.id", "b-1")

		Info(ctx, "first")
		Error(ctx, "second", "error", "boom")

		logged := entries(t, &buf)
		require.Len(t, logged, 2)
		for _, entry := range logged {
			assert.Equal(t, "b-1", entry["batch.id"])
		}
		assert.Equal(t, "boom", logged[1]["error"])
	})

	t.Run("derivations stack", func(t *testing.T) {
		buf.Reset()
		ctx := Derive(Derive(t.Context(), "a", 1), "b", 2)

		Debug(ctx, "stacked")

		logged := entries(t, &buf)
		require.Len(t, logged, 1)
		assert.EqualValues(t, 1, logged[0]["a"])
		assert.EqualValues(t, 2, logged[0]["b"])
	})

	t.Run("plain context uses the global logger", func(t *testing.T) {
		buf.Reset()

		Info(t.Context(), "plain")

		logged := entries(t, &buf)
		require.Len(t, logged, 1)
		assert.NotContains(t, logged[0], "batch.id")
	})
}

func TestTraceFields(t *testing.T) {
	resetLogger()
	var buf bytes.Buffer
	require.NoError(t, Init(WithLevel("info"), WithOutput(&buf)))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(t.Context(), sc)

	Info(ctx, "traced")

	logged := entries(t, &buf)
	require.Len(t, logged, 1)
	assert.Equal(t, traceID.String(), logged[0]["trace_id"])
	assert.Equal(t, spanID.String(), logged[0]["span_id"])
}

func TestLogBeforeInit(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Info(t.Context(), "not initialized yet")
		_ = Sync()
	})
}
