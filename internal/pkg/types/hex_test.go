package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex_UnmarshalJSON(t *testing.T) {
	t.Run("valid lowercase hex", func(t *testing.T) {
		var h Hex
		require.NoError(t, json.Unmarshal([]byte(`"0x1a"`), &h))
		assert.Equal(t, Hex("0x1a"), h)
	})

	t.Run("valid uppercase prefix", func(t *testing.T) {
		var h Hex
		require.NoError(t, json.Unmarshal([]byte(`"0X2F"`), &h))
		assert.Equal(t, Hex("0X2F"), h)
	})

	t.Run("missing 0x prefix", func(t *testing.T) {
		var h Hex
		assert.Error(t, json.Unmarshal([]byte(`"1a"`), &h))
	})

	t.Run("prefix without digits", func(t *testing.T) {
		var h Hex
		assert.ErrorIs(t, json.Unmarshal([]byte(`"0x"`), &h), errEmptyHex)
	})

	t.Run("invalid hex characters", func(t *testing.T) {
		var h Hex
		assert.Error(t, json.Unmarshal([]byte(`"0xZZZ"`), &h))
	})

	t.Run("not a string", func(t *testing.T) {
		var h Hex
		assert.Error(t, json.Unmarshal([]byte(`42`), &h))
	})
}

func TestHex_Big(t *testing.T) {
	t.Run("leading zeros are accepted", func(t *testing.T) {
		n, err := Hex("0x0a").Big()
		require.NoError(t, err)
		assert.Equal(t, int64(10), n.Int64())
	})

	t.Run("values wider than 64 bits are preserved", func(t *testing.T) {
		n, err := Hex("0x1000000000000000000000000").Big()
		require.NoError(t, err)

		expected, _ := new(big.Int).SetString("79228162514264337593543950336", 10)
		assert.Zero(t, expected.Cmp(n))
	})

	t.Run("invalid hex fails", func(t *testing.T) {
		_, err := Hex("0xZZZ").Big()
		assert.Error(t, err)
	})
}

func TestHex_Uint64(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		n, err := Hex("0x5208").Uint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(21000), n)
	})

	t.Run("overflows", func(t *testing.T) {
		_, err := Hex("0x10000000000000000").Uint64()
		assert.Error(t, err)
	})
}

func TestHexEncoding(t *testing.T) {
	assert.Equal(t, Hex("0x0"), HexFromBig(nil))
	assert.Equal(t, Hex("0x3b9aca00"), HexFromBig(big.NewInt(1_000_000_000)))
	assert.Equal(t, Hex("0x5208"), HexFromUint64(21000))
	assert.True(t, Hex("").IsEmpty())
}
