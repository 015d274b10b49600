// Package batch runs groups of transactions under one execution policy.
//
// Sequential batches send one transaction at a time, in order, and may stop at
// the first failure. Parallel batches dispatch every send at once and always
// wait for all of them: an in-flight send cannot be recalled, so StopOnFailure
// has no effect there.
package batch

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/telemetry"
	"github.com/gabapcia/txflow/internal/transaction"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

// Builder is the part of the transaction builder the executor relies on.
type Builder interface {
	SendTransaction(ctx context.Context, params transaction.Params) transaction.Result
	CalculateCost(ctx context.Context, params transaction.Params) (transaction.Cost, error)

	CreateStakeTransaction(validator, amount string) (transaction.Params, error)
	CreateUnstakeTransaction(validator, amount string) (transaction.Params, error)
	CreateClaimRewardsTransaction(validator string) (transaction.Params, error)
}

// Reallocation moves Amount of stake from one validator to another.
type Reallocation struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Amount string `json:"amount" yaml:"amount"`
}

type Service interface {
	// ExecuteBatch returns one result per attempted transaction, in input
	// order. A sequential batch with StopOnFailure returns fewer results than
	// inputs when it halts early.
	ExecuteBatch(ctx context.Context, batch transaction.BatchParams) []transaction.Result

	// CreateAutoCompoundBatch claims the rewards of validator and restakes
	// amount with it.
	CreateAutoCompoundBatch(validator, amount string) (transaction.BatchParams, error)

	// CreateRebalanceBatch unstakes every reallocation first, then stakes the
	// freed funds.
	CreateRebalanceBatch(moves []Reallocation) (transaction.BatchParams, error)

	// EstimateBatchCost prices every transaction concurrently and sums the
	// results. The breakdown keeps the input order.
	EstimateBatchCost(ctx context.Context, txs []transaction.Params) (transaction.BatchCost, error)
}

type service struct {
	builder Builder

	executions   metric.Int64Counter
	transactions metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) ExecuteBatch(ctx context.Context, batch transaction.BatchParams) []transaction.Result {
	mode := modeParallel
	if batch.ExecuteSequentially {
		mode = modeSequential
	}

	ctx = logger.Derive(ctx, "batch.id", newBatchID(), "batch.mode", mode)
	logger.Info(ctx, "batch started",
		"batch.size", len(batch.Transactions),
		"batch.stop_on_failure", batch.StopOnFailure,
	)

	var results []transaction.Result
	if batch.ExecuteSequentially {
		results = s.executeSequentially(ctx, batch.Transactions, batch.StopOnFailure)
	} else {
		results = s.executeInParallel(ctx, batch.Transactions)
	}

	s.record(ctx, mode, results)

	failed := countFailed(results)
	logger.Info(ctx, "batch finished",
		"batch.attempted", len(results),
		"batch.failed", failed,
	)

	return results
}

func (s *service) executeSequentially(ctx context.Context, txs []transaction.Params, stopOnFailure bool) []transaction.Result {
	results := make([]transaction.Result, 0, len(txs))
	for i, tx := range txs {
		result := s.send(ctx, tx)
		results = append(results, result)

		if result.Status == transaction.StatusFailed && stopOnFailure {
			logger.Warn(ctx, "batch halted on failure",
				"batch.index", i,
				"batch.skipped", len(txs)-i-1,
				"error", result.Error,
			)
			break
		}
	}
	return results
}

func (s *service) executeInParallel(ctx context.Context, txs []transaction.Params) []transaction.Result {
	results := make([]transaction.Result, len(txs))

	var wg sync.WaitGroup
	wg.Add(len(txs))
	for i, tx := range txs {
		go func() {
			defer wg.Done()
			results[i] = s.send(ctx, tx)
		}()
	}
	wg.Wait()

	return results
}

// send shields the batch from a builder that panics instead of returning a
// failed result.
func (s *service) send(ctx context.Context, tx transaction.Params) (result transaction.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "transaction send panicked", "panic", r, "tx.to", tx.To)
			result = transaction.Failed("", fmt.Errorf("send panicked: %v", r))
		}
	}()

	return s.builder.SendTransaction(ctx, tx)
}

func (s *service) record(ctx context.Context, mode string, results []transaction.Result) {
	s.executions.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
	for _, r := range results {
		s.transactions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("mode", mode),
			attribute.String("status", string(r.Status)),
		))
	}
}

func (s *service) CreateAutoCompoundBatch(validator, amount string) (transaction.BatchParams, error) {
	claim, err := s.builder.CreateClaimRewardsTransaction(validator)
	if err != nil {
		return transaction.BatchParams{}, err
	}

	stake, err := s.builder.CreateStakeTransaction(validator, amount)
	if err != nil {
		return transaction.BatchParams{}, err
	}

	return orderedBatch(claim, stake), nil
}

func (s *service) CreateRebalanceBatch(moves []Reallocation) (transaction.BatchParams, error) {
	unstakes := make([]transaction.Params, 0, len(moves))
	stakes := make([]transaction.Params, 0, len(moves))

	for _, m := range moves {
		unstake, err := s.builder.CreateUnstakeTransaction(m.From, m.Amount)
		if err != nil {
			return transaction.BatchParams{}, err
		}
		unstakes = append(unstakes, unstake)

		stake, err := s.builder.CreateStakeTransaction(m.To, m.Amount)
		if err != nil {
			return transaction.BatchParams{}, err
		}
		stakes = append(stakes, stake)
	}

	return orderedBatch(append(unstakes, stakes...)...), nil
}

// orderedBatch wraps order dependent transactions: each one relies on the
// effects of the previous, so they run one by one and stop at the first failure.
func orderedBatch(txs ...transaction.Params) transaction.BatchParams {
	return transaction.BatchParams{
		Transactions:        txs,
		ExecuteSequentially: true,
		StopOnFailure:       true,
	}
}

func (s *service) EstimateBatchCost(ctx context.Context, txs []transaction.Params) (transaction.BatchCost, error) {
	breakdown := make([]transaction.Cost, len(txs))

	g, gctx := errgroup.WithContext(ctx)
	for i, tx := range txs {
		g.Go(func() error {
			cost, err := s.builder.CalculateCost(gctx, tx)
			if err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
			breakdown[i] = cost
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transaction.BatchCost{}, err
	}

	totalGasCost, totalCost := new(big.Int), new(big.Int)
	for i, cost := range breakdown {
		if err := addDecimal(totalGasCost, cost.GasCost); err != nil {
			return transaction.BatchCost{}, fmt.Errorf("transaction %d: gas cost: %w", i, err)
		}
		if err := addDecimal(totalCost, cost.TotalCost); err != nil {
			return transaction.BatchCost{}, fmt.Errorf("transaction %d: total cost: %w", i, err)
		}
	}

	return transaction.BatchCost{
		TotalGasCost: totalGasCost.String(),
		TotalCost:    totalCost.String(),
		Breakdown:    breakdown,
	}, nil
}

func addDecimal(sum *big.Int, s string) error {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid amount %q", s)
	}
	sum.Add(sum, n)
	return nil
}

func countFailed(results []transaction.Result) int {
	n := 0
	for _, r := range results {
		if r.Status == transaction.StatusFailed {
			n++
		}
	}
	return n
}

func newBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New returns an executor sending through b.
func New(b Builder) *service {
	meter := telemetry.Meter("batch")

	return &service{
		builder:      b,
		executions:   telemetry.Int64Counter(meter, "txflow.batch.executions", "Number of executed batches"),
		transactions: telemetry.Int64Counter(meter, "txflow.batch.transactions", "Number of transactions attempted by batches"),
	}
}
