package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/txflow/internal/batch"
	"github.com/gabapcia/txflow/internal/config"
	"github.com/gabapcia/txflow/internal/handlers/cli"
	"github.com/gabapcia/txflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txflow/internal/infra/storage/redis"
	"github.com/gabapcia/txflow/internal/infra/wallet/local"
	"github.com/gabapcia/txflow/internal/infra/wallet/remote"
	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/telemetry"
	"github.com/gabapcia/txflow/internal/pkg/transport/http"
	"github.com/gabapcia/txflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txflow/internal/txbuilder"
	"github.com/gabapcia/txflow/internal/txmonitor"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

// Exit codes. A status lookup for an unknown hash exits apart from other
// failures.
const (
	exitFailure       = 1
	exitStatusUnknown = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, cli.ErrStatusUnknown) {
		return exitStatusUnknown
	}
	return exitFailure
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Telemetry.Enabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.Telemetry.ServiceName, telemetry.WithServiceVersion(version))
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err = errors.Join(err, shutdown(ctx))
		}()
	}

	svc, closeAll, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	return cli.Run(ctx, svc)
}

// wire builds the services behind the CLI. Reads go through a retrying HTTP
// client; anything that broadcasts uses one that never retries, so a timed out
// submission is not sent twice.
func wire(ctx context.Context, cfg config.Config) (cli.Services, func(), error) {
	httpOpts := []http.Option{
		http.WithTimeout(cfg.HTTP.Timeout),
		http.WithRetryWaitMin(cfg.HTTP.RetryWaitMin),
		http.WithRetryWaitMax(cfg.HTTP.RetryWaitMax),
	}

	var (
		reads  = jsonrpc.NewClient(http.NewClient(append(httpOpts, http.WithRetryMax(cfg.HTTP.RetryMax))...), cfg.RPCURL)
		writes = jsonrpc.NewClient(http.NewClient(append(httpOpts, http.WithRetryMax(0))...), cfg.RPCURL)
		node   = ethereum.NewClient(reads)
	)

	var (
		wallet txbuilder.Wallet
		err    error
	)
	switch cfg.Wallet.Mode {
	case config.WalletRemote:
		signer := jsonrpc.NewClient(http.NewClient(append(httpOpts, http.WithRetryMax(0))...), cfg.SignerURL())
		wallet, err = remote.New(ctx, signer, cfg.Wallet.Address)
	default:
		wallet, err = local.New(cfg.Wallet.PrivateKey, ethereum.NewClient(writes))
	}
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("init wallet: %w", err)
	}

	var chainState txbuilder.ChainState = txbuilder.PlaceholderChainState{}
	if cfg.ChainState == config.ChainStateRPC {
		chainState = node
	}
	builder := txbuilder.New(wallet, txbuilder.WithChainState(chainState))

	monitorOpts := []txmonitor.Option{txmonitor.WithRetention(cfg.Monitor.Retention)}
	switch cfg.Monitor.Observer {
	case config.ObserverReceipt:
		monitorOpts = append(monitorOpts, txmonitor.WithObserver(
			ethereum.NewReceiptObserver(node, ethereum.WithPollInterval(cfg.Monitor.PollInterval)),
		))
	default:
		monitorOpts = append(monitorOpts, txmonitor.WithObserver(
			txmonitor.SimulatedObserver{Delay: cfg.Monitor.SimulatedDelay},
		))
	}

	svc := cli.Services{
		Builder:  builder,
		Executor: batch.New(builder),
	}

	closers := []func(){}
	if cfg.Redis.Addr != "" {
		store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.StatusTTL)
		if err != nil {
			return cli.Services{}, nil, fmt.Errorf("init redis: %w", err)
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "redis close failed", "error", err)
			}
		})

		monitorOpts = append(monitorOpts, txmonitor.WithStatusStore(store))
		svc.Statuses = store
	}

	monitor := txmonitor.New(monitorOpts...)
	svc.Monitor = monitor

	closeAll := func() {
		monitor.Close()
		for _, c := range closers {
			c()
		}
	}

	logger.Info(ctx, "txflow ready",
		"version", version,
		"wallet", cfg.Wallet.Mode,
		"address", wallet.Address(),
		"observer", cfg.Monitor.Observer,
	)

	return svc, closeAll, nil
}
