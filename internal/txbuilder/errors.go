package txbuilder

import "errors"

var (
	// ErrInvalidQuantity is returned when a gas field is not a non-negative base-10 integer.
	ErrInvalidQuantity = errors.New("invalid integer quantity")

	// ErrValueTooPrecise is returned when a value has more fractional digits than the native currency.
	ErrValueTooPrecise = errors.New("value has more than 18 decimal places")

	// ErrEmptyHash is returned when a wallet reports a successful send without a hash.
	ErrEmptyHash = errors.New("wallet returned an empty transaction hash")
)

// ValidationError reports a malformed transaction intent. It is raised before
// any gas estimation or network access.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid transaction: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildError reports a failure while filling or pricing gas parameters.
type BuildError struct {
	Field string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Field == "" {
		return "build transaction: " + e.Err.Error()
	}
	return "build transaction: " + e.Field + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// SendError reports a signing or broadcast failure. SendTransaction never
// returns it; it only ends up as the message of a failed result.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return "send transaction: " + e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}
