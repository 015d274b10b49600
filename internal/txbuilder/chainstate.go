package txbuilder

import (
	"context"
	"math/big"
)

// PlaceholderGasPrice is the gas price, in wei, reported by PlaceholderChainState.
const PlaceholderGasPrice = 1_000_000_000

// ChainState is the source of network gas prices and account nonces.
type ChainState interface {
	// GasPrice returns the gas price to bid, in wei.
	GasPrice(ctx context.Context) (*big.Int, error)

	// Nonce returns the next nonce for address, counting pending transactions.
	Nonce(ctx context.Context, address string) (uint64, error)
}

// PlaceholderChainState answers with fixed values: 1 gwei and nonce 0. It does
// not query any network and must be replaced by a live implementation before
// transactions are broadcast to a real chain.
type PlaceholderChainState struct{}

var _ ChainState = PlaceholderChainState{}

func (PlaceholderChainState) GasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(PlaceholderGasPrice), nil
}

func (PlaceholderChainState) Nonce(context.Context, string) (uint64, error) {
	return 0, nil
}
