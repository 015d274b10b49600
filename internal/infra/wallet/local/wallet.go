// Package local implements a key-backed wallet: transactions are signed in
// process with a secp256k1 private key and broadcast as raw transactions.
package local

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txbuilder"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

// Node is the network access the wallet needs.
type Node interface {
	ChainID(ctx context.Context) (*big.Int, error)
	SendRawTransaction(ctx context.Context, raw string) (string, error)
}

type wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	node    Node

	mu      sync.Mutex
	chainID *big.Int
}

var _ txbuilder.Wallet = (*wallet)(nil)

// New loads a hex encoded private key, with or without 0x prefix.
func New(privateKey string, node Node) (*wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return &wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		node:    node,
	}, nil
}

func (w *wallet) Address() string {
	return w.address.Hex()
}

// signer caches the chain id after the first successful lookup.
func (w *wallet) signer(ctx context.Context) (types.Signer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.chainID == nil {
		id, err := w.node.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("chain id: %w", err)
		}
		w.chainID = id
	}

	return types.LatestSignerForChainID(w.chainID), nil
}

func (w *wallet) sign(ctx context.Context, tx transaction.Unsigned) (*types.Transaction, error) {
	legacy, err := toLegacyTx(tx)
	if err != nil {
		return nil, err
	}

	signer, err := w.signer(ctx)
	if err != nil {
		return nil, err
	}

	return types.SignNewTx(w.key, signer, legacy)
}

func (w *wallet) SignTransaction(ctx context.Context, tx transaction.Unsigned) (string, error) {
	signed, err := w.sign(ctx, tx)
	if err != nil {
		return "", err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(raw), nil
}

func (w *wallet) SendTransaction(ctx context.Context, tx transaction.Unsigned) (string, error) {
	raw, err := w.SignTransaction(ctx, tx)
	if err != nil {
		return "", err
	}
	return w.node.SendRawTransaction(ctx, raw)
}

func toLegacyTx(tx transaction.Unsigned) (*types.LegacyTx, error) {
	if !common.IsHexAddress(tx.To) {
		return nil, fmt.Errorf("invalid recipient %q", tx.To)
	}
	to := common.HexToAddress(tx.To)

	value, err := txbuilder.ToBaseUnits(tx.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	gasLimit, ok := new(big.Int).SetString(tx.GasLimit, 10)
	if !ok || gasLimit.Sign() < 0 || !gasLimit.IsUint64() {
		return nil, fmt.Errorf("gas limit %q does not fit in 64 bits", tx.GasLimit)
	}

	gasPrice, ok := new(big.Int).SetString(tx.GasPrice, 10)
	if !ok || gasPrice.Sign() < 0 {
		return nil, fmt.Errorf("invalid gas price %q", tx.GasPrice)
	}

	var data []byte
	if tx.Data != "" && tx.Data != "0x" {
		if data, err = hexutil.Decode(tx.Data); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
	}

	return &types.LegacyTx{
		Nonce:    tx.Nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit.Uint64(),
		To:       &to,
		Value:    value,
		Data:     data,
	}, nil
}
