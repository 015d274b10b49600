// Package transaction holds the data model shared by the builder, the batch
// executor and the confirmation monitor: transaction intents, their results
// and their priced cost.
//
// Amounts are always carried as decimal strings. Gas limits and gas prices are
// integers of arbitrary magnitude and are only ever converted into big.Int for
// arithmetic.
package transaction

// Status is the lifecycle state of a submitted transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether no further transition can occur from s.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// Params describes a transaction intent.
//
// Value is an amount of native currency (e.g. "1.5"), Data a 0x-prefixed hex
// payload, and GasLimit/GasPrice decimal integers. Optional fields are empty
// when absent.
type Params struct {
	To       string `json:"to" yaml:"to" validate:"required,len=42,eth_addr"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty" validate:"omitempty,nonneg_decimal"`
	Data     string `json:"data,omitempty" yaml:"data,omitempty" validate:"omitempty,startswith=0x"`
	GasLimit string `json:"gasLimit,omitempty" yaml:"gasLimit,omitempty"`
	GasPrice string `json:"gasPrice,omitempty" yaml:"gasPrice,omitempty"`
}

// Unsigned is a built intent bound to its sender account, ready to be signed.
// GasLimit and GasPrice are always set.
type Unsigned struct {
	Params
	From  string `json:"from"`
	Nonce uint64 `json:"nonce"`
}

// Result is the outcome of a send or of a confirmation.
//
// Hash is empty only when Status is StatusFailed because the transaction was
// never broadcast.
type Result struct {
	Hash        string  `json:"hash"`
	Status      Status  `json:"status"`
	BlockNumber *uint64 `json:"blockNumber,omitempty"`
	GasUsed     string  `json:"gasUsed,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Failed builds a failed Result carrying err's message.
func Failed(hash string, err error) Result {
	return Result{
		Hash:   hash,
		Status: StatusFailed,
		Error:  err.Error(),
	}
}

// BatchParams is an ordered group of intents submitted under one policy.
//
// StopOnFailure is only honoured when ExecuteSequentially is true.
type BatchParams struct {
	Transactions        []Params `json:"transactions" yaml:"transactions"`
	ExecuteSequentially bool     `json:"executeSequentially" yaml:"executeSequentially"`
	StopOnFailure       bool     `json:"stopOnFailure" yaml:"stopOnFailure"`
}

// Cost is the priced form of a single transaction, in base units (wei).
type Cost struct {
	GasLimit  string `json:"gasLimit"`
	GasPrice  string `json:"gasPrice"`
	GasCost   string `json:"gasCost"`
	TotalCost string `json:"totalCost"`
}

// BatchCost aggregates the cost of a group of transactions. Breakdown keeps
// the input order.
type BatchCost struct {
	TotalGasCost string `json:"totalGasCost"`
	TotalCost    string `json:"totalCost"`
	Breakdown    []Cost `json:"breakdown"`
}
