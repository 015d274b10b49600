// Package txmonitor follows submitted transactions to a terminal state.
//
// Each hash is tracked once, no matter how many callers wait on it: the first
// registration starts a ConfirmationObserver and later ones join the list of
// waiters. When the hash resolves, every waiter receives the same result and
// the list is dropped. Resolved entries stay queryable for a retention period
// and are then evicted.
package txmonitor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/telemetry"
	"github.com/gabapcia/txflow/internal/pkg/x/chflow"
	"github.com/gabapcia/txflow/internal/transaction"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

// DefaultRetention is how long a resolved entry remains queryable.
const DefaultRetention = 5 * time.Minute

const storeTimeout = 5 * time.Second

var (
	ErrMonitorClosed = errors.New("transaction monitor closed")
	ErrEmptyHash     = errors.New("empty transaction hash")
)

// Hashes are matched regardless of hex letter case. Results returned to a
// caller carry the hash spelled the way that caller passed it.
type Service interface {
	// MonitorTransaction waits for hash to reach a terminal state. Canceling
	// ctx only detaches this caller; tracking continues for everyone else.
	//
	// If the hash is removed with CancelMonitoring before it resolves, the
	// call returns only once ctx is done.
	MonitorTransaction(ctx context.Context, hash string) (transaction.Result, error)

	// GetTransactionStatus returns the current state of hash, or false when
	// it was never tracked or has been evicted.
	GetTransactionStatus(hash string) (transaction.Result, bool)

	GetPendingTransactions() []transaction.Result

	// WaitForTransactions waits for every hash and returns their results in
	// input order.
	WaitForTransactions(ctx context.Context, hashes []string) ([]transaction.Result, error)

	// CancelMonitoring stops tracking hash and forgets it. Outstanding waiters
	// are not resolved. It reports whether hash was known.
	CancelMonitoring(hash string) bool

	Close()
}

type entry struct {
	result  transaction.Result
	waiters []chan transaction.Result

	cancel context.CancelFunc // set while pending
	evict  *time.Timer        // set once terminal
}

type service struct {
	mu      sync.Mutex
	entries map[string]*entry

	isClosed  bool
	rootCtx   context.Context
	closeFunc context.CancelFunc
	wg        sync.WaitGroup

	retention time.Duration
	observer  ConfirmationObserver
	store     StatusStore

	resolved metric.Int64Counter
}

var _ Service = (*service)(nil)

// entryKey makes lookups independent of hex letter case.
func entryKey(hash string) string {
	return strings.ToLower(hash)
}

// withHash returns result as seen by a caller that asked for hash.
func withHash(result transaction.Result, hash string) transaction.Result {
	result.Hash = hash
	return result
}

func (s *service) MonitorTransaction(ctx context.Context, hash string) (transaction.Result, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return transaction.Result{}, ErrEmptyHash
	}
	key := entryKey(hash)

	e, waiter, resolved, err := s.register(key, hash)
	if err != nil {
		return transaction.Result{}, err
	}
	if waiter == nil {
		return withHash(resolved, hash), nil
	}

	result, ok := chflow.Receive(ctx, waiter)
	if ok {
		return withHash(result, hash), nil
	}
	if ctx.Err() != nil {
		s.detach(key, e, waiter)
		return transaction.Result{}, ctx.Err()
	}
	return transaction.Result{}, ErrMonitorClosed
}

// register adds a waiter for key, starting the tracking when the key is new.
// When the entry is already terminal no waiter is created and its result is
// returned instead.
func (s *service) register(key, hash string) (*entry, <-chan transaction.Result, transaction.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return nil, nil, transaction.Result{}, ErrMonitorClosed
	}

	e, ok := s.entries[key]
	if ok && e.result.Status.IsTerminal() {
		return e, nil, e.result, nil
	}

	waiter := make(chan transaction.Result, 1)
	if ok {
		e.waiters = append(e.waiters, waiter)
		return e, waiter, transaction.Result{}, nil
	}

	ctx, cancel := context.WithCancel(logger.Derive(s.rootCtx, "tx.hash", hash))
	e = &entry{
		result:  transaction.Result{Hash: hash, Status: transaction.StatusPending},
		waiters: []chan transaction.Result{waiter},
		cancel:  cancel,
	}
	s.entries[key] = e

	s.wg.Add(1)
	go s.track(ctx, cancel, key, hash, e)

	logger.Debug(ctx, "transaction monitoring started")
	return e, waiter, transaction.Result{}, nil
}

// detach removes waiter from e if e is still the live entry for key.
func (s *service) detach(key string, e *entry, waiter <-chan transaction.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[key] != e {
		return
	}
	e.waiters = slices.DeleteFunc(e.waiters, func(w chan transaction.Result) bool {
		return w == waiter
	})
}

// track observes hash, as spelled by the caller that registered it, and
// resolves the entry stored under key.
func (s *service) track(ctx context.Context, cancel context.CancelFunc, key, hash string, e *entry) {
	defer s.wg.Done()
	defer cancel()

	result, err := s.observer.Observe(ctx, hash)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		result = transaction.Failed(hash, err)
	} else if !result.Status.IsTerminal() {
		result = transaction.Failed(hash, fmt.Errorf("observer returned non terminal status %q", result.Status))
	}
	result.Hash = hash

	if !s.resolve(key, e, result) {
		return
	}

	s.resolved.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(result.Status))))
	logger.Info(ctx, "transaction resolved",
		"tx.status", result.Status,
		"tx.error", result.Error,
	)

	// Close must not abort the write of a result that was already delivered.
	saveCtx, saveCancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer saveCancel()

	if err := s.store.SaveStatus(saveCtx, result); err != nil {
		logger.Warn(ctx, "failed to persist transaction status", "error", err)
	}
}

// resolve moves e to its terminal state and notifies its waiters. It reports
// false when the entry was canceled or the monitor closed in the meantime.
func (s *service) resolve(key string, e *entry, result transaction.Result) bool {
	s.mu.Lock()
	if s.entries[key] != e {
		s.mu.Unlock()
		return false
	}

	waiters := e.waiters
	e.result = result
	e.waiters = nil
	e.cancel = nil
	e.evict = time.AfterFunc(s.retention, func() {
		s.evict(key, e)
	})
	s.mu.Unlock()

	for _, w := range waiters {
		chflow.TrySend(w, result)
	}
	return true
}

func (s *service) evict(key string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[key] == e {
		delete(s.entries, key)
	}
}

func (s *service) GetTransactionStatus(hash string) (transaction.Result, bool) {
	hash = strings.TrimSpace(hash)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[entryKey(hash)]
	if !ok {
		return transaction.Result{}, false
	}
	return withHash(e.result, hash), true
}

func (s *service) GetPendingTransactions() []transaction.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]transaction.Result, 0, len(s.entries))
	for _, e := range s.entries {
		if e.result.Status == transaction.StatusPending {
			pending = append(pending, e.result)
		}
	}

	slices.SortFunc(pending, func(a, b transaction.Result) int {
		return strings.Compare(a.Hash, b.Hash)
	})
	return pending
}

func (s *service) WaitForTransactions(ctx context.Context, hashes []string) ([]transaction.Result, error) {
	results := make([]transaction.Result, len(hashes))

	g, gctx := errgroup.WithContext(ctx)
	for i, hash := range hashes {
		g.Go(func() error {
			result, err := s.MonitorTransaction(gctx, hash)
			if err != nil {
				return fmt.Errorf("monitor %s: %w", hash, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) CancelMonitoring(hash string) bool {
	key := entryKey(strings.TrimSpace(hash))

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}

	if e.cancel != nil {
		e.cancel()
	}
	if e.evict != nil {
		e.evict.Stop()
	}
	delete(s.entries, key)

	logger.Debug(s.rootCtx, "transaction monitoring canceled",
		"tx.hash", e.result.Hash,
		"monitor.orphaned_waiters", len(e.waiters),
	)
	return true
}

// Close stops every tracking goroutine and eviction timer. Waiters still
// blocked in MonitorTransaction receive ErrMonitorClosed.
func (s *service) Close() {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		return
	}
	s.isClosed = true
	s.closeFunc()

	for hash, e := range s.entries {
		if e.evict != nil {
			e.evict.Stop()
		}
		for _, w := range e.waiters {
			close(w)
		}
		delete(s.entries, hash)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

type config struct {
	retention time.Duration
	observer  ConfirmationObserver
	store     StatusStore
}

type Option func(*config)

// New returns a running monitor. Call Close to release it.
//
// Defaults: 5 minute retention, SimulatedObserver with a 3 second delay and
// no status store.
func New(opts ...Option) *service {
	cfg := config{
		retention: DefaultRetention,
		observer:  SimulatedObserver{Delay: DefaultSimulatedDelay},
		store:     nopStatusStore{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &service{
		entries:   make(map[string]*entry),
		rootCtx:   ctx,
		closeFunc: cancel,
		retention: cfg.retention,
		observer:  cfg.observer,
		store:     cfg.store,
		resolved: telemetry.Int64Counter(telemetry.Meter("txmonitor"),
			"txflow.monitor.resolved", "Number of transactions that reached a terminal state"),
	}
}

func WithRetention(d time.Duration) Option {
	return func(c *config) {
		c.retention = d
	}
}

func WithObserver(o ConfirmationObserver) Option {
	return func(c *config) {
		c.observer = o
	}
}

func WithStatusStore(ss StatusStore) Option {
	return func(c *config) {
		c.store = ss
	}
}
