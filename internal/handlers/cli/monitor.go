package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txflow/internal/transaction"

	"github.com/urfave/cli/v3"
)

var ErrStatusUnknown = errors.New("transaction status unknown")

func hashFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "hash",
		Usage:    usage,
		Required: true,
	}
}

// watchCommand waits for already broadcast transactions to settle.
//
// Usage example:
//
//	txflow watch --hash 0xabc... --hash 0xdef... --timeout 5m
func watchCommand(m Monitor) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Wait for transactions to be confirmed or to fail.",
		Usage:       "Blocks until every --hash reaches a terminal state or --timeout elapses.",
		Flags: []cli.Flag{
			hashFlag("Transaction hash to wait for (repeatable)"),
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Maximum time to wait",
				Value: DefaultWaitTimeout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, c.Duration("timeout"))
			defer cancel()

			results, err := m.WaitForTransactions(ctx, c.StringSlice("hash"))
			if err != nil {
				return err
			}
			return writeJSON(output(c), results)
		},
	}
}

// statusCommand prints what is known about transactions without waiting. The
// in-process monitor is consulted first, then the persisted statuses.
func statusCommand(m Monitor, statuses StatusReader) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show the last known state of transactions.",
		Usage:       "Prints the status of every --hash without waiting.",
		Flags: []cli.Flag{
			hashFlag("Transaction hash to look up (repeatable)"),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			hashes := c.StringSlice("hash")

			results := make([]transaction.Result, 0, len(hashes))
			for _, hash := range hashes {
				r, err := lookupStatus(ctx, m, statuses, hash)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return writeJSON(output(c), results)
		},
	}
}

func lookupStatus(ctx context.Context, m Monitor, statuses StatusReader, hash string) (transaction.Result, error) {
	if r, ok := m.GetTransactionStatus(hash); ok {
		return r, nil
	}

	if statuses == nil {
		return transaction.Result{}, fmt.Errorf("%w: %s", ErrStatusUnknown, hash)
	}

	r, err := statuses.LoadStatus(ctx, hash)
	if err != nil {
		return transaction.Result{}, fmt.Errorf("%w: %s: %w", ErrStatusUnknown, hash, err)
	}
	return r, nil
}
