package txbuilder

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/validator"
	"github.com/gabapcia/txflow/internal/transaction"
	txbuilderMocks "github.com/gabapcia/txflow/internal/txbuilder/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sender    = "0x00000000000000000000000000000000000000aa"
	recipient = "0x1111111111111111111111111111111111111111"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

func TestService_ValidateTransaction(t *testing.T) {
	svc := New(txbuilderMocks.NewWallet(t))

	t.Run("accepts a well formed transfer", func(t *testing.T) {
		err := svc.ValidateTransaction(transaction.Params{To: recipient, Value: "1.5", Data: "0xabcdef"})
		assert.NoError(t, err)
	})

	t.Run("address length boundaries", func(t *testing.T) {
		for _, to := range []string{recipient[:41], recipient + "1", ""} {
			err := svc.ValidateTransaction(transaction.Params{To: to})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "address %q", to)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)
		}
	})

	t.Run("rejects an address without prefix", func(t *testing.T) {
		err := svc.ValidateTransaction(transaction.Params{To: "00" + strings.Repeat("1", 40)})
		assert.ErrorAs(t, err, new(*ValidationError))
	})

	t.Run("rejects negative and non numeric values", func(t *testing.T) {
		for _, v := range []string{"-1", "abc", "0x10"} {
			err := svc.ValidateTransaction(transaction.Params{To: recipient, Value: v})
			assert.ErrorAs(t, err, new(*ValidationError), "value %q", v)
		}
	})

	t.Run("rejects a payload without prefix", func(t *testing.T) {
		err := svc.ValidateTransaction(transaction.Params{To: recipient, Data: "abcdef"})
		assert.ErrorAs(t, err, new(*ValidationError))
	})
}

func TestService_EstimateGas(t *testing.T) {
	svc := New(txbuilderMocks.NewWallet(t))

	tests := []struct {
		name   string
		params transaction.Params
		want   int64
	}{
		{"contract interaction", transaction.Params{To: recipient, Data: "0x1234"}, ContractInteractionGas},
		{"payload wins over value", transaction.Params{To: recipient, Value: "1", Data: "0x1234"}, ContractInteractionGas},
		{"transfer", transaction.Params{To: recipient, Value: "0.1"}, TransferGas},
		{"zero value", transaction.Params{To: recipient, Value: "0"}, BaseGas},
		{"empty payload prefix", transaction.Params{To: recipient, Data: "0x"}, BaseGas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, big.NewInt(tt.want), svc.EstimateGas(tt.params))
		})
	}
}

func TestService_BuildTransaction(t *testing.T) {
	t.Run("fills absent gas fields", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		built, err := svc.BuildTransaction(t.Context(), transaction.Params{To: recipient, Value: "1"})
		require.NoError(t, err)

		assert.Equal(t, "25200", built.GasLimit)
		assert.Equal(t, "1000000000", built.GasPrice)
		assert.Equal(t, "1", built.Value)
	})

	t.Run("keeps provided gas fields", func(t *testing.T) {
		chainState := txbuilderMocks.NewChainState(t)
		svc := New(txbuilderMocks.NewWallet(t), WithChainState(chainState))

		built, err := svc.BuildTransaction(t.Context(), transaction.Params{
			To:       recipient,
			GasLimit: "50000",
			GasPrice: "7",
		})
		require.NoError(t, err)

		assert.Equal(t, "50000", built.GasLimit)
		assert.Equal(t, "7", built.GasPrice)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))
		params := transaction.Params{To: recipient, Data: "0x01"}

		_, err := svc.BuildTransaction(t.Context(), params)
		require.NoError(t, err)
		assert.Empty(t, params.GasLimit)
		assert.Empty(t, params.GasPrice)
	})

	t.Run("validation runs before any gas lookup", func(t *testing.T) {
		chainState := txbuilderMocks.NewChainState(t)
		svc := New(txbuilderMocks.NewWallet(t), WithChainState(chainState))

		_, err := svc.BuildTransaction(t.Context(), transaction.Params{To: "0x12"})
		assert.ErrorAs(t, err, new(*ValidationError))
		chainState.AssertNotCalled(t, "GasPrice", mock.Anything)
	})

	t.Run("gas price lookup failure is a build error", func(t *testing.T) {
		lookupErr := errors.New("node unavailable")
		chainState := txbuilderMocks.NewChainState(t)
		chainState.EXPECT().GasPrice(mock.Anything).Return(nil, lookupErr)

		svc := New(txbuilderMocks.NewWallet(t), WithChainState(chainState))

		_, err := svc.BuildTransaction(t.Context(), transaction.Params{To: recipient})

		var bErr *BuildError
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, "gasPrice", bErr.Field)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("malformed gas limit is a build error", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		_, err := svc.BuildTransaction(t.Context(), transaction.Params{To: recipient, GasLimit: "-5"})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.ErrorAs(t, err, new(*BuildError))
	})

	t.Run("value finer than wei is a build error", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		_, err := svc.BuildTransaction(t.Context(), transaction.Params{To: recipient, Value: "0.0000000000000000001"})
		assert.ErrorIs(t, err, ErrValueTooPrecise)
	})
}

func TestService_SendTransaction(t *testing.T) {
	t.Run("hands the built transaction to the wallet", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		chainState := txbuilderMocks.NewChainState(t)
		svc := New(wallet, WithChainState(chainState))

		wallet.EXPECT().Address().Return(sender)
		chainState.EXPECT().GasPrice(mock.Anything).Return(big.NewInt(2), nil)
		chainState.EXPECT().Nonce(mock.Anything, sender).Return(uint64(9), nil)
		wallet.EXPECT().SendTransaction(mock.Anything, transaction.Unsigned{
			Params: transaction.Params{To: recipient, Value: "1", GasLimit: "25200", GasPrice: "2"},
			From:   sender,
			Nonce:  9,
		}).Return("0xhash", nil)

		result := svc.SendTransaction(t.Context(), transaction.Params{To: recipient, Value: "1"})

		assert.Equal(t, transaction.Result{Hash: "0xhash", Status: transaction.StatusPending}, result)
	})

	t.Run("validation failure becomes a failed result", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		result := svc.SendTransaction(t.Context(), transaction.Params{To: "0x12"})

		assert.Equal(t, transaction.StatusFailed, result.Status)
		assert.Empty(t, result.Hash)
		assert.Contains(t, result.Error, "invalid transaction")
	})

	t.Run("wallet failure becomes a failed result", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		svc := New(wallet)

		wallet.EXPECT().Address().Return(sender)
		wallet.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return("", errors.New("user rejected"))

		result := svc.SendTransaction(t.Context(), transaction.Params{To: recipient})

		assert.Equal(t, transaction.StatusFailed, result.Status)
		assert.Empty(t, result.Hash)
		assert.Equal(t, "send transaction: user rejected", result.Error)
	})

	t.Run("empty hash is treated as a failure", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		svc := New(wallet)

		wallet.EXPECT().Address().Return(sender)
		wallet.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return("", nil)

		result := svc.SendTransaction(t.Context(), transaction.Params{To: recipient})

		assert.Equal(t, transaction.StatusFailed, result.Status)
		assert.Contains(t, result.Error, ErrEmptyHash.Error())
	})

	t.Run("nonce lookup failure becomes a failed result", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		chainState := txbuilderMocks.NewChainState(t)
		svc := New(wallet, WithChainState(chainState))

		wallet.EXPECT().Address().Return(sender)
		chainState.EXPECT().GasPrice(mock.Anything).Return(big.NewInt(1), nil)
		chainState.EXPECT().Nonce(mock.Anything, sender).Return(uint64(0), errors.New("timeout"))

		result := svc.SendTransaction(t.Context(), transaction.Params{To: recipient})

		assert.Equal(t, transaction.StatusFailed, result.Status)
		assert.Contains(t, result.Error, "nonce")
		wallet.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})
}

func TestService_SignTransaction(t *testing.T) {
	t.Run("returns the raw signed transaction", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		svc := New(wallet)

		wallet.EXPECT().Address().Return(sender)
		wallet.EXPECT().SignTransaction(mock.Anything, mock.MatchedBy(func(tx transaction.Unsigned) bool {
			return tx.From == sender && tx.GasLimit == "25200" && tx.GasPrice == "1000000000"
		})).Return("0xf86c", nil)

		raw, err := svc.SignTransaction(t.Context(), transaction.Params{To: recipient})
		require.NoError(t, err)
		assert.Equal(t, "0xf86c", raw)
	})

	t.Run("signer failure is a send error", func(t *testing.T) {
		wallet := txbuilderMocks.NewWallet(t)
		svc := New(wallet)

		wallet.EXPECT().Address().Return(sender)
		wallet.EXPECT().SignTransaction(mock.Anything, mock.Anything).Return("", errors.New("locked"))

		_, err := svc.SignTransaction(t.Context(), transaction.Params{To: recipient})
		assert.ErrorAs(t, err, new(*SendError))
	})
}

func TestService_CalculateCost(t *testing.T) {
	t.Run("explicit gas fields", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		cost, err := svc.CalculateCost(t.Context(), transaction.Params{
			To:       recipient,
			GasLimit: "21000",
			GasPrice: "1000000000",
			Value:    "0",
		})
		require.NoError(t, err)

		assert.Equal(t, "21000000000000", cost.GasCost)
		assert.Equal(t, "21000000000000", cost.TotalCost)
	})

	t.Run("adds the value in base units", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		cost, err := svc.CalculateCost(t.Context(), transaction.Params{
			To:       recipient,
			GasLimit: "21000",
			GasPrice: "1000000000",
			Value:    "1.5",
		})
		require.NoError(t, err)

		assert.Equal(t, "1500021000000000000", cost.TotalCost)
	})

	t.Run("falls back to estimate and optimal price", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))
		params := transaction.Params{To: recipient, Data: "0x01"}

		cost, err := svc.CalculateCost(t.Context(), params)
		require.NoError(t, err)

		assert.Equal(t, "100000", cost.GasLimit)
		assert.Equal(t, "1000000000", cost.GasPrice)
		assert.Equal(t, "100000000000000", cost.GasCost)
		assert.Empty(t, params.GasLimit, "input must not be modified")
	})

	t.Run("does not overflow fixed width integers", func(t *testing.T) {
		svc := New(txbuilderMocks.NewWallet(t))

		cost, err := svc.CalculateCost(t.Context(), transaction.Params{
			To:       recipient,
			GasLimit: "18446744073709551616",
			GasPrice: "18446744073709551616",
		})
		require.NoError(t, err)

		assert.Equal(t, "340282366920938463463374607431768211456", cost.GasCost)
	})

	t.Run("gas price lookup failure", func(t *testing.T) {
		chainState := txbuilderMocks.NewChainState(t)
		chainState.EXPECT().GasPrice(mock.Anything).Return(nil, errors.New("down"))
		svc := New(txbuilderMocks.NewWallet(t), WithChainState(chainState))

		_, err := svc.CalculateCost(t.Context(), transaction.Params{To: recipient})
		assert.ErrorAs(t, err, new(*BuildError))
	})
}

func TestService_GetNonce(t *testing.T) {
	wallet := txbuilderMocks.NewWallet(t)
	wallet.EXPECT().Address().Return(sender)

	nonce, err := New(wallet).GetNonce(t.Context())
	require.NoError(t, err)
	assert.Zero(t, nonce)
}
