// Package ethereum talks to Ethereum-compatible nodes over JSON-RPC. It
// provides the live gas price and nonce source used by the transaction
// builder, raw transaction broadcast for key-backed wallets and receipt based
// confirmation for the monitor.
package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/txflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txflow/internal/pkg/types"
	"github.com/gabapcia/txflow/internal/txbuilder"
)

// ReceiptResponse is the subset of eth_getTransactionReceipt the monitor needs.
type ReceiptResponse struct {
	TransactionHash string    `json:"transactionHash"`
	BlockNumber     types.Hex `json:"blockNumber"`
	GasUsed         types.Hex `json:"gasUsed"`
	Status          types.Hex `json:"status"`
}

// client queries an Ethereum node through a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var _ txbuilder.ChainState = (*client)(nil)

// NewClient creates a client sending requests through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func (c *client) fetchQuantity(ctx context.Context, method string, params ...any) (*big.Int, error) {
	var quantity types.Hex
	if err := jsonrpc.Call(ctx, c.conn, &quantity, method, params...); err != nil {
		return nil, err
	}

	n, err := quantity.Big()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return n, nil
}

// GasPrice returns the node's suggested legacy gas price in wei.
func (c *client) GasPrice(ctx context.Context) (*big.Int, error) {
	return c.fetchQuantity(ctx, "eth_gasPrice")
}

// Nonce returns the next nonce of address, counting transactions still in the pool.
func (c *client) Nonce(ctx context.Context, address string) (uint64, error) {
	n, err := c.fetchQuantity(ctx, "eth_getTransactionCount", address, "pending")
	if err != nil {
		return 0, err
	}

	if !n.IsUint64() {
		return 0, fmt.Errorf("eth_getTransactionCount: nonce %s overflows uint64", n)
	}
	return n.Uint64(), nil
}

// ChainID returns the EIP-155 chain id of the network.
func (c *client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.fetchQuantity(ctx, "eth_chainId")
}

// SendRawTransaction broadcasts a signed transaction and returns its hash.
func (c *client) SendRawTransaction(ctx context.Context, raw string) (string, error) {
	var hash string
	if err := jsonrpc.Call(ctx, c.conn, &hash, "eth_sendRawTransaction", raw); err != nil {
		return "", err
	}
	return hash, nil
}

// TransactionReceipt returns the receipt of hash, or nil while the transaction
// is not yet included in a block.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (*ReceiptResponse, error) {
	var receipt *ReceiptResponse
	if err := jsonrpc.Call(ctx, c.conn, &receipt, "eth_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	return receipt, nil
}
