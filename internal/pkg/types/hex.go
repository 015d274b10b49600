package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var errEmptyHex = errors.New("empty hex quantity")

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a"), as
// used by JSON-RPC nodes for block numbers, gas and wei amounts. Values are
// decoded into big.Int so that no quantity is ever truncated.
type Hex string

// HexFromBig encodes n as a lowercase 0x-prefixed quantity. A nil n encodes as "0x0".
func HexFromBig(n *big.Int) Hex {
	if n == nil {
		return "0x0"
	}
	return Hex("0x" + n.Text(16))
}

// HexFromUint64 encodes n as a lowercase 0x-prefixed quantity.
func HexFromUint64(n uint64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

// parseHex decodes a "0x"/"0X" prefixed, non-negative hexadecimal number.
func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	if len(s) == 2 {
		return nil, errEmptyHex
	}

	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return n, nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether h holds no value at all.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Big returns the decoded value.
func (h Hex) Big() (*big.Int, error) {
	return parseHex(string(h))
}

// Uint64 returns the decoded value, failing when it does not fit in 64 bits.
func (h Hex) Uint64() (uint64, error) {
	n, err := h.Big()
	if err != nil {
		return 0, err
	}

	if !n.IsUint64() {
		return 0, fmt.Errorf("hex quantity %s overflows uint64", h)
	}

	return n.Uint64(), nil
}
