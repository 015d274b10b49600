package txmonitor

import (
	"context"
	"time"

	"github.com/gabapcia/txflow/internal/transaction"
)

// DefaultSimulatedDelay is how long SimulatedObserver waits before confirming.
const DefaultSimulatedDelay = 3 * time.Second

// ConfirmationObserver follows one transaction to a terminal state.
type ConfirmationObserver interface {
	// Observe blocks until hash is confirmed or failed, or ctx is done. The
	// returned result must carry a terminal status.
	Observe(ctx context.Context, hash string) (transaction.Result, error)
}

// StatusStore receives every terminal result reached by the monitor.
type StatusStore interface {
	SaveStatus(ctx context.Context, result transaction.Result) error
}

// SimulatedObserver confirms every transaction after a fixed delay without
// looking at the chain. It is a placeholder: deployments talking to a real
// network must use a receipt or block based observer instead.
type SimulatedObserver struct {
	Delay time.Duration
}

var _ ConfirmationObserver = SimulatedObserver{}

func (o SimulatedObserver) Observe(ctx context.Context, hash string) (transaction.Result, error) {
	timer := time.NewTimer(o.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return transaction.Result{}, ctx.Err()
	case <-timer.C:
		return transaction.Result{
			Hash:   hash,
			Status: transaction.StatusConfirmed,
		}, nil
	}
}

type nopStatusStore struct{}

func (nopStatusStore) SaveStatus(context.Context, transaction.Result) error {
	return nil
}
