package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gabapcia/txflow/internal/batch"
	"github.com/gabapcia/txflow/internal/transaction"
	"github.com/gabapcia/txflow/internal/txbuilder"

	"github.com/urfave/cli/v3"
)

// DefaultWaitTimeout bounds how long --wait blocks for confirmations.
const DefaultWaitTimeout = 2 * time.Minute

// Builder is the part of the transaction builder the commands drive.
type Builder interface {
	SignTransaction(ctx context.Context, params transaction.Params) (string, error)
	SendTransaction(ctx context.Context, params transaction.Params) transaction.Result
	CalculateCost(ctx context.Context, params transaction.Params) (transaction.Cost, error)

	CreateStakeTransaction(validator, amount string) (transaction.Params, error)
	CreateUnstakeTransaction(validator, amount string) (transaction.Params, error)
	CreateClaimRewardsTransaction(validator string) (transaction.Params, error)
	CreateVoteTransaction(proposalID uint64, option txbuilder.VoteOption) (transaction.Params, error)
}

type Executor interface {
	ExecuteBatch(ctx context.Context, batch transaction.BatchParams) []transaction.Result
	CreateAutoCompoundBatch(validator, amount string) (transaction.BatchParams, error)
	CreateRebalanceBatch(moves []batch.Reallocation) (transaction.BatchParams, error)
	EstimateBatchCost(ctx context.Context, txs []transaction.Params) (transaction.BatchCost, error)
}

type Monitor interface {
	WaitForTransactions(ctx context.Context, hashes []string) ([]transaction.Result, error)
	GetTransactionStatus(hash string) (transaction.Result, bool)
}

// StatusReader looks up results persisted by an earlier run.
type StatusReader interface {
	LoadStatus(ctx context.Context, hash string) (transaction.Result, error)
}

// Services groups the dependencies of every command. Statuses may be nil.
type Services struct {
	Builder  Builder
	Executor Executor
	Monitor  Monitor
	Statuses StatusReader
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txflow",
		Description:           "Build, send, batch and track EVM transactions from the command line.",
		Usage:                 "txflow [command] [flags]",
		Commands: []*cli.Command{
			sendCommand(svc),
			estimateCommand(svc.Builder),
			stakeCommand(svc),
			unstakeCommand(svc),
			claimCommand(svc),
			voteCommand(svc),
			batchCommand(svc),
			compoundCommand(svc),
			rebalanceCommand(svc),
			watchCommand(svc.Monitor),
			statusCommand(svc.Monitor, svc.Statuses),
		},
	}
}

// Run parses os.Args and executes the matching command.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func waitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "Block until every sent transaction is confirmed or failed",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Maximum time to wait for confirmations",
			Value: DefaultWaitTimeout,
		},
	}
}

// awaitResults replaces pending results with their terminal state when --wait
// is set. Results without a hash were never broadcast and are kept as is.
func awaitResults(ctx context.Context, c *cli.Command, m Monitor, results []transaction.Result) ([]transaction.Result, error) {
	if !c.Bool("wait") {
		return results, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.Duration("timeout"))
	defer cancel()

	var (
		hashes  []string
		indexes []int
	)
	for i, r := range results {
		if r.Hash != "" && r.Status == transaction.StatusPending {
			hashes = append(hashes, r.Hash)
			indexes = append(indexes, i)
		}
	}

	confirmed, err := m.WaitForTransactions(ctx, hashes)
	if err != nil {
		return nil, err
	}

	out := append([]transaction.Result(nil), results...)
	for i, r := range confirmed {
		out[indexes[i]] = r
	}
	return out, nil
}
