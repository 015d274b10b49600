package ethereum

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/resilience/retry"
	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txmonitor"
)

const (
	// defaultPollInterval matches the average Ethereum block time.
	defaultPollInterval = 12 * time.Second

	receiptStatusSuccess = 1
)

// ErrReceiptReverted is reported when a mined transaction has a failed status.
var ErrReceiptReverted = errors.New("transaction reverted")

// ReceiptObserver confirms transactions by polling eth_getTransactionReceipt
// until the node reports them as mined.
type ReceiptObserver struct {
	client   *client
	interval time.Duration
	retry    retry.Retry
}

var _ txmonitor.ConfirmationObserver = (*ReceiptObserver)(nil)

type observerConfig struct {
	interval time.Duration
	retry    retry.Retry
}

// ObserverOption customizes NewReceiptObserver.
type ObserverOption func(*observerConfig)

// WithPollInterval sets the delay between receipt lookups.
func WithPollInterval(d time.Duration) ObserverOption {
	return func(c *observerConfig) {
		c.interval = d
	}
}

// WithRetry sets the retry policy applied to each receipt lookup.
func WithRetry(r retry.Retry) ObserverOption {
	return func(c *observerConfig) {
		c.retry = r
	}
}

// NewReceiptObserver returns an observer polling through c.
func NewReceiptObserver(c *client, opts ...ObserverOption) *ReceiptObserver {
	cfg := observerConfig{
		interval: defaultPollInterval,
		retry:    retry.New(retry.WithLabel("eth_getTransactionReceipt")),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ReceiptObserver{
		client:   c,
		interval: cfg.interval,
		retry:    cfg.retry,
	}
}

// Observe polls until the receipt for hash exists. Lookup errors that outlast
// the retry policy end the observation.
func (o *ReceiptObserver) Observe(ctx context.Context, hash string) (transaction.Result, error) {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		var receipt *ReceiptResponse
		err := o.retry.Execute(ctx, func() error {
			var err error
			receipt, err = o.client.TransactionReceipt(ctx, hash)
			return err
		})
		if err != nil {
			return transaction.Result{}, err
		}

		if receipt != nil {
			return receiptResult(hash, receipt)
		}

		logger.Debug(ctx, "receipt not available yet", "tx.hash", hash)

		select {
		case <-ctx.Done():
			return transaction.Result{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func receiptResult(hash string, receipt *ReceiptResponse) (transaction.Result, error) {
	result := transaction.Result{
		Hash:   hash,
		Status: transaction.StatusConfirmed,
	}

	if !receipt.BlockNumber.IsEmpty() {
		block, err := receipt.BlockNumber.Uint64()
		if err != nil {
			return transaction.Result{}, err
		}
		result.BlockNumber = &block
	}

	if !receipt.GasUsed.IsEmpty() {
		gasUsed, err := receipt.GasUsed.Big()
		if err != nil {
			return transaction.Result{}, err
		}
		result.GasUsed = gasUsed.String()
	}

	// Receipts from before Byzantium carry no status field.
	if !receipt.Status.IsEmpty() {
		status, err := receipt.Status.Uint64()
		if err != nil {
			return transaction.Result{}, err
		}

		if status != receiptStatusSuccess {
			result.Status = transaction.StatusFailed
			result.Error = ErrReceiptReverted.Error()
		}
	}

	return result, nil
}
