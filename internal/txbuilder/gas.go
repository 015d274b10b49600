package txbuilder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/txflow/internal/transaction"
)

// Gas policy table. Estimates depend on the shape of the intent only, never on
// chain state.
const (
	// ContractInteractionGas applies to any intent carrying a payload.
	ContractInteractionGas = 100_000
	// TransferGas applies to plain value transfers.
	TransferGas = 21_000
	// BaseGas applies to everything else.
	BaseGas = TransferGas

	// NativeDecimals is the number of fractional digits of the native currency.
	NativeDecimals = 18
)

var (
	gasBufferNumerator   = big.NewInt(12)
	gasBufferDenominator = big.NewInt(10)

	weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(NativeDecimals), nil)
)

// EstimateGas returns the policy gas for params.
func EstimateGas(params transaction.Params) *big.Int {
	switch {
	case hasPayload(params.Data):
		return big.NewInt(ContractInteractionGas)
	case isPositive(params.Value):
		return big.NewInt(TransferGas)
	default:
		return big.NewInt(BaseGas)
	}
}

// BufferedGasLimit returns ceil(estimate * 1.2).
func BufferedGasLimit(estimate *big.Int) *big.Int {
	n := new(big.Int).Mul(estimate, gasBufferNumerator)

	q, r := new(big.Int).QuoRem(n, gasBufferDenominator, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// ToBaseUnits converts a decimal amount of native currency to wei. An empty
// value is zero.
func ToBaseUnits(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return new(big.Int), nil
	}

	r, ok := new(big.Rat).SetString(value)
	if !ok || r.Sign() < 0 {
		return nil, fmt.Errorf("invalid value %q", value)
	}

	r.Mul(r, new(big.Rat).SetInt(weiPerUnit))
	if !r.IsInt() {
		return nil, ErrValueTooPrecise
	}

	return new(big.Int).Set(r.Num()), nil
}

// parseQuantity decodes a non-negative base-10 integer of any size.
func parseQuantity(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	return n, nil
}

func hasPayload(data string) bool {
	return data != "" && data != "0x"
}

func isPositive(value string) bool {
	if value == "" {
		return false
	}

	r, ok := new(big.Rat).SetString(strings.TrimSpace(value))
	return ok && r.Sign() > 0
}
