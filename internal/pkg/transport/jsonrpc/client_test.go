package jsonrpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}
		assert.NoError(t, resp.Err())
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		resp := response{
			JsonRPC: "2.0",
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}{
				Code:    -32000,
				Message: "nonce too low",
			},
		}

		err := resp.Err()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", -32000))
		assert.Contains(t, err.Error(), "nonce too low")
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a well formed request and returns the result", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  "0x3b9aca00",
				"id":      received["id"],
			})
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		result, err := c.Fetch(t.Context(), "eth_getTransactionCount", "0x0000000000000000000000000000000000000001", "pending")
		require.NoError(t, err)
		assert.JSONEq(t, `"0x3b9aca00"`, string(result))

		assert.Equal(t, "2.0", received["jsonrpc"])
		assert.Equal(t, "eth_getTransactionCount", received["method"])
		assert.NotEmpty(t, received["id"])
		assert.Equal(t, []any{"0x0000000000000000000000000000000000000001", "pending"}, received["params"])
	})

	t.Run("sends an empty params array when none are given", func(t *testing.T) {
		var received map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": "0x1", "id": "1"})
		}))
		defer server.Close()

		_, err := NewClient(nil, server.URL).Fetch(t.Context(), "eth_gasPrice")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(received["params"]))
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32601, "message": "method not found"},
				"id":      "1",
			})
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "nonexistent_method")
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer server.Close()

		result, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "bad_json")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("http error status without JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewClient(server.Client(), server.URL).Fetch(t.Context(), "eth_chainId")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("network error when server is down", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		result, err := NewClient(http.DefaultClient, server.URL).Fetch(t.Context(), "network_failure")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCall(t *testing.T) {
	t.Run("decodes the result into the target", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  map[string]any{"status": "0x1", "blockNumber": "0x10"},
				"id":      "1",
			})
		}))
		defer server.Close()

		var out struct {
			Status      string `json:"status"`
			BlockNumber string `json:"blockNumber"`
		}
		err := Call(t.Context(), NewClient(server.Client(), server.URL), &out, "eth_getTransactionReceipt", "0xabc")
		require.NoError(t, err)
		assert.Equal(t, "0x1", out.Status)
		assert.Equal(t, "0x10", out.BlockNumber)
	})

	t.Run("reports decoding failures with the method name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": 42, "id": "1"})
		}))
		defer server.Close()

		var out string
		err := Call(t.Context(), NewClient(server.Client(), server.URL), &out, "eth_gasPrice")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "eth_gasPrice")
	})
}
