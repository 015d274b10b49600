package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transfer struct {
	To     string `validate:"required,len=42,eth_addr"`
	Amount string `validate:"omitempty,nonneg_decimal"`
	Data   string `validate:"omitempty,startswith=0x"`
}

func TestValidatorInitialization(t *testing.T) {
	t.Run("should initialize validator instance", func(t *testing.T) {
		assert.NotNil(t, validator)
	})

	t.Run("should register nonneg_decimal tag", func(t *testing.T) {
		type amount struct {
			V string `validate:"nonneg_decimal"`
		}

		assert.NoError(t, validator.Struct(amount{V: "1.5"}))
		assert.Error(t, validator.Struct(amount{V: "-1"}))
	})
}

func TestIsNonNegativeDecimal(t *testing.T) {
	valid := []string{"0", "1", "1.5", "0.000000000000000001", "2e-3", "1e18", " 42 "}
	for _, s := range valid {
		assert.True(t, IsNonNegativeDecimal(s), "%q should be accepted", s)
	}

	invalid := []string{"", "-1", "-0.5", "abc", "1/2", "0x10", "1.2.3", "NaN"}
	for _, s := range invalid {
		assert.False(t, IsNonNegativeDecimal(s), "%q should be rejected", s)
	}
}

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		testValidator := gvalidator.New()

		type TestStruct struct {
			Name string `validate:"required"`
		}

		err := testValidator.Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("database connection failed")
		formattedErr := formatError(originalErr)

		assert.Equal(t, originalErr, formattedErr)
	})
}

func TestValidate(t *testing.T) {
	t.Run("should pass for a well formed transfer", func(t *testing.T) {
		err := Validate(transfer{
			To:     "0x00000000000000000000000000000000000000aA",
			Amount: "0.25",
			Data:   "0xdeadbeef",
		})
		assert.NoError(t, err)
	})

	t.Run("should pass when optional fields are empty", func(t *testing.T) {
		err := Validate(transfer{To: "0x0000000000000000000000000000000000000800"})
		assert.NoError(t, err)
	})

	t.Run("should fail when address is one character short", func(t *testing.T) {
		err := Validate(transfer{To: "0x000000000000000000000000000000000000080"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'To'")
	})

	t.Run("should fail when address is one character long", func(t *testing.T) {
		err := Validate(transfer{To: "0x00000000000000000000000000000000000008000"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("should fail when address has no prefix", func(t *testing.T) {
		err := Validate(transfer{To: "000000000000000000000000000000000000000800"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("should fail with one message per invalid field", func(t *testing.T) {
		err := Validate(transfer{
			To:     "0x0000000000000000000000000000000000000800",
			Amount: "-3",
			Data:   "deadbeef",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)

		errStr := err.Error()
		assert.Contains(t, errStr, "'Amount': value '-3' does not meet the requirements for the 'nonneg_decimal' validation")
		assert.Contains(t, errStr, "'Data': value 'deadbeef' does not meet the requirements for the 'startswith' validation")
	})

	t.Run("should fail when input is not struct", func(t *testing.T) {
		for _, input := range []any{"test string", 42, nil} {
			assert.Error(t, Validate(input))
		}
	})
}
