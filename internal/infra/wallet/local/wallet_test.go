package local

import (
	"context"
	"errors"
	"math/big"
	"testing"

	localMocks "github.com/gabapcia/txflow/internal/infra/wallet/local/mocks"
	"github.com/gabapcia/txflow/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var unsigned = transaction.Unsigned{
	Params: transaction.Params{
		To:       "0x1111111111111111111111111111111111111111",
		Value:    "1.5",
		Data:     "0xabcd",
		GasLimit: "120000",
		GasPrice: "1000000000",
	},
	Nonce: 7,
}

func decode(t *testing.T, raw string) *types.Transaction {
	b, err := hexutil.Decode(raw)
	require.NoError(t, err)

	var tx types.Transaction
	require.NoError(t, tx.UnmarshalBinary(b))
	return &tx
}

func TestNew(t *testing.T) {
	t.Run("derives the address from the key", func(t *testing.T) {
		key, err := crypto.HexToECDSA(testKey[2:])
		require.NoError(t, err)

		w, err := New(testKey, localMocks.NewNode(t))
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), w.Address())
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		_, err := New("0x1234", localMocks.NewNode(t))
		assert.ErrorIs(t, err, ErrInvalidPrivateKey)
	})
}

func TestWallet_SignTransaction(t *testing.T) {
	t.Run("produces an EIP-155 legacy transaction", func(t *testing.T) {
		node := localMocks.NewNode(t)
		node.EXPECT().ChainID(mock.Anything).Return(big.NewInt(9000), nil).Once()

		w, err := New(testKey, node)
		require.NoError(t, err)

		raw, err := w.SignTransaction(t.Context(), unsigned)
		require.NoError(t, err)

		tx := decode(t, raw)
		assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
		assert.Equal(t, uint64(7), tx.Nonce())
		assert.Equal(t, uint64(120000), tx.Gas())
		assert.Equal(t, big.NewInt(1_000_000_000), tx.GasPrice())
		assert.Equal(t, "1500000000000000000", tx.Value().String())
		assert.Equal(t, []byte{0xab, 0xcd}, tx.Data())
		assert.Equal(t, common.HexToAddress(unsigned.To), *tx.To())
		assert.Equal(t, big.NewInt(9000), tx.ChainId())

		from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(9000)), tx)
		require.NoError(t, err)
		assert.Equal(t, w.Address(), from.Hex())

		// the chain id is cached after the first lookup
		_, err = w.SignTransaction(t.Context(), unsigned)
		require.NoError(t, err)
	})

	t.Run("chain id lookup failure", func(t *testing.T) {
		node := localMocks.NewNode(t)
		node.EXPECT().ChainID(mock.Anything).Return(nil, errors.New("unreachable"))

		w, err := New(testKey, node)
		require.NoError(t, err)

		_, err = w.SignTransaction(t.Context(), unsigned)
		assert.ErrorContains(t, err, "unreachable")
	})

	t.Run("rejects fields that cannot be encoded", func(t *testing.T) {
		w, err := New(testKey, localMocks.NewNode(t))
		require.NoError(t, err)

		for name, mutate := range map[string]func(*transaction.Unsigned){
			"payload":   func(tx *transaction.Unsigned) { tx.Data = "0xzz" },
			"gas limit": func(tx *transaction.Unsigned) { tx.GasLimit = "18446744073709551616" },
			"gas price": func(tx *transaction.Unsigned) { tx.GasPrice = "" },
			"recipient": func(tx *transaction.Unsigned) { tx.To = "0x12" },
		} {
			tx := unsigned
			mutate(&tx)

			_, err := w.SignTransaction(t.Context(), tx)
			assert.Error(t, err, name)
		}
	})
}

func TestWallet_SendTransaction(t *testing.T) {
	t.Run("broadcasts the signed transaction", func(t *testing.T) {
		node := localMocks.NewNode(t)
		node.EXPECT().ChainID(mock.Anything).Return(big.NewInt(1), nil)

		w, err := New(testKey, node)
		require.NoError(t, err)

		var broadcast string
		node.EXPECT().SendRawTransaction(mock.Anything, mock.Anything).
			Run(func(_ context.Context, raw string) { broadcast = raw }).
			Return("0xhash", nil)

		hash, err := w.SendTransaction(t.Context(), unsigned)
		require.NoError(t, err)
		assert.Equal(t, "0xhash", hash)
		assert.Equal(t, uint64(7), decode(t, broadcast).Nonce())
	})

	t.Run("broadcast failure is returned", func(t *testing.T) {
		node := localMocks.NewNode(t)
		node.EXPECT().ChainID(mock.Anything).Return(big.NewInt(1), nil)
		node.EXPECT().SendRawTransaction(mock.Anything, mock.Anything).Return("", errors.New("nonce too low"))

		w, err := New(testKey, node)
		require.NoError(t, err)

		_, err = w.SendTransaction(t.Context(), unsigned)
		assert.ErrorContains(t, err, "nonce too low")
	})
}
