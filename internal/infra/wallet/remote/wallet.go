// Package remote implements a wallet whose keys live outside the process: a
// node with unlocked accounts, an external signer such as Clef, or a browser
// extension bridge. Signing and broadcast are delegated through the standard
// eth_signTransaction and eth_sendTransaction calls.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/txflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txflow/internal/pkg/types"
	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txbuilder"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNoAccounts      = errors.New("signer exposes no accounts")
	ErrInvalidAccount  = errors.New("invalid account address")
	ErrMissingSignedTx = errors.New("signer returned no raw transaction")
)

// callArgs is the transaction object accepted by eth_signTransaction and
// eth_sendTransaction. Quantities are hex encoded.
type callArgs struct {
	From     string    `json:"from"`
	To       string    `json:"to"`
	Value    types.Hex `json:"value"`
	Data     string    `json:"data,omitempty"`
	Gas      types.Hex `json:"gas"`
	GasPrice types.Hex `json:"gasPrice"`
	Nonce    types.Hex `json:"nonce"`
}

type wallet struct {
	conn    jsonrpc.Client
	address string
}

var _ txbuilder.Wallet = (*wallet)(nil)

// New returns a wallet sending from address. When address is empty the first
// account reported by eth_accounts is used.
func New(ctx context.Context, conn jsonrpc.Client, address string) (*wallet, error) {
	if address == "" {
		var accounts []string
		if err := jsonrpc.Call(ctx, conn, &accounts, "eth_accounts"); err != nil {
			return nil, err
		}
		if len(accounts) == 0 {
			return nil, ErrNoAccounts
		}
		address = accounts[0]
	}

	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccount, address)
	}

	return &wallet{
		conn:    conn,
		address: common.HexToAddress(address).Hex(),
	}, nil
}

func (w *wallet) Address() string {
	return w.address
}

func (w *wallet) args(tx transaction.Unsigned) (callArgs, error) {
	value, err := txbuilder.ToBaseUnits(tx.Value)
	if err != nil {
		return callArgs{}, fmt.Errorf("value: %w", err)
	}

	gas, ok := new(big.Int).SetString(tx.GasLimit, 10)
	if !ok {
		return callArgs{}, fmt.Errorf("invalid gas limit %q", tx.GasLimit)
	}

	gasPrice, ok := new(big.Int).SetString(tx.GasPrice, 10)
	if !ok {
		return callArgs{}, fmt.Errorf("invalid gas price %q", tx.GasPrice)
	}

	return callArgs{
		From:     w.address,
		To:       tx.To,
		Value:    types.HexFromBig(value),
		Data:     tx.Data,
		Gas:      types.HexFromBig(gas),
		GasPrice: types.HexFromBig(gasPrice),
		Nonce:    types.HexFromUint64(tx.Nonce),
	}, nil
}

// SignTransaction accepts both the plain raw string some signers return and
// the {raw, tx} object returned by geth.
func (w *wallet) SignTransaction(ctx context.Context, tx transaction.Unsigned) (string, error) {
	args, err := w.args(tx)
	if err != nil {
		return "", err
	}

	result, err := w.conn.Fetch(ctx, "eth_signTransaction", args)
	if err != nil {
		return "", err
	}

	var raw string
	if err := json.Unmarshal(result, &raw); err == nil && raw != "" {
		return raw, nil
	}

	var signed struct {
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(result, &signed); err != nil {
		return "", fmt.Errorf("decode eth_signTransaction result: %w", err)
	}
	if signed.Raw == "" {
		return "", ErrMissingSignedTx
	}
	return signed.Raw, nil
}

func (w *wallet) SendTransaction(ctx context.Context, tx transaction.Unsigned) (string, error) {
	args, err := w.args(tx)
	if err != nil {
		return "", err
	}

	var hash string
	if err := jsonrpc.Call(ctx, w.conn, &hash, "eth_sendTransaction", args); err != nil {
		return "", err
	}
	return hash, nil
}
