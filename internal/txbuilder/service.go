// Package txbuilder constructs, validates, prices and sends single
// transactions.
//
// Everything that can go wrong before a transaction leaves the process is
// reported as an error: ValidationError for malformed intents and BuildError
// for gas lookups. Anything that goes wrong afterwards (nonce lookup, signing,
// broadcast) is folded into a failed transaction.Result by SendTransaction,
// which never returns an error.
package txbuilder

import (
	"context"
	"math/big"

	"github.com/gabapcia/txflow/internal/pkg/logger"
	"github.com/gabapcia/txflow/internal/pkg/telemetry"
	"github.com/gabapcia/txflow/internal/pkg/validator"
	"github.com/gabapcia/txflow/internal/transaction"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Wallet signs and broadcasts built transactions on behalf of one account.
// Implementations report failures through the returned error and never with
// a malformed value.
type Wallet interface {
	// Address returns the 0x-prefixed account address transactions are sent from.
	Address() string

	// SignTransaction returns the 0x-prefixed raw signed transaction.
	SignTransaction(ctx context.Context, tx transaction.Unsigned) (string, error)

	// SendTransaction signs and broadcasts tx, returning its hash.
	SendTransaction(ctx context.Context, tx transaction.Unsigned) (string, error)
}

type Service interface {
	ValidateTransaction(params transaction.Params) error
	EstimateGas(params transaction.Params) *big.Int
	GetOptimalGasPrice(ctx context.Context) (string, error)
	GetNonce(ctx context.Context) (uint64, error)

	// BuildTransaction validates params and returns a copy with GasLimit and
	// GasPrice filled in when they were absent.
	BuildTransaction(ctx context.Context, params transaction.Params) (transaction.Params, error)

	// SignTransaction builds params and has the wallet sign it without
	// broadcasting.
	SignTransaction(ctx context.Context, params transaction.Params) (string, error)

	// SendTransaction builds params and hands it to the wallet. Failures are
	// reported through a StatusFailed result.
	SendTransaction(ctx context.Context, params transaction.Params) transaction.Result

	// CalculateCost prices params without modifying it.
	CalculateCost(ctx context.Context, params transaction.Params) (transaction.Cost, error)

	CreateTransfer(to, amount string) transaction.Params
	CreateStakeTransaction(validator, amount string) (transaction.Params, error)
	CreateUnstakeTransaction(validator, amount string) (transaction.Params, error)
	CreateClaimRewardsTransaction(validator string) (transaction.Params, error)
	CreateVoteTransaction(proposalID uint64, option VoteOption) (transaction.Params, error)
}

type service struct {
	wallet     Wallet
	chainState ChainState
	encoder    PayloadEncoder
}

var _ Service = (*service)(nil)

func (s *service) ValidateTransaction(params transaction.Params) error {
	if err := validator.Validate(params); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func (s *service) EstimateGas(params transaction.Params) *big.Int {
	return EstimateGas(params)
}

func (s *service) GetOptimalGasPrice(ctx context.Context) (string, error) {
	price, err := s.chainState.GasPrice(ctx)
	if err != nil {
		return "", err
	}
	return price.String(), nil
}

func (s *service) GetNonce(ctx context.Context) (uint64, error) {
	return s.chainState.Nonce(ctx, s.wallet.Address())
}

func (s *service) BuildTransaction(ctx context.Context, params transaction.Params) (transaction.Params, error) {
	if err := s.ValidateTransaction(params); err != nil {
		return transaction.Params{}, err
	}

	if params.GasLimit == "" {
		params.GasLimit = BufferedGasLimit(s.EstimateGas(params)).String()
	} else if _, err := parseQuantity(params.GasLimit); err != nil {
		return transaction.Params{}, &BuildError{Field: "gasLimit", Err: err}
	}

	if params.GasPrice == "" {
		price, err := s.GetOptimalGasPrice(ctx)
		if err != nil {
			return transaction.Params{}, &BuildError{Field: "gasPrice", Err: err}
		}
		params.GasPrice = price
	} else if _, err := parseQuantity(params.GasPrice); err != nil {
		return transaction.Params{}, &BuildError{Field: "gasPrice", Err: err}
	}

	if _, err := ToBaseUnits(params.Value); err != nil {
		return transaction.Params{}, &BuildError{Field: "value", Err: err}
	}

	logger.Debug(ctx, "transaction built",
		"tx.to", params.To,
		"tx.gas_limit", params.GasLimit,
		"tx.gas_price", params.GasPrice,
	)

	return params, nil
}

// prepare builds params and binds it to the wallet account.
func (s *service) prepare(ctx context.Context, params transaction.Params) (transaction.Unsigned, error) {
	built, err := s.BuildTransaction(ctx, params)
	if err != nil {
		return transaction.Unsigned{}, err
	}

	nonce, err := s.GetNonce(ctx)
	if err != nil {
		return transaction.Unsigned{}, &BuildError{Field: "nonce", Err: err}
	}

	return transaction.Unsigned{
		Params: built,
		From:   s.wallet.Address(),
		Nonce:  nonce,
	}, nil
}

func (s *service) SignTransaction(ctx context.Context, params transaction.Params) (string, error) {
	tx, err := s.prepare(ctx, params)
	if err != nil {
		return "", err
	}

	raw, err := s.wallet.SignTransaction(ctx, tx)
	if err != nil {
		return "", &SendError{Err: err}
	}
	return raw, nil
}

func (s *service) SendTransaction(ctx context.Context, params transaction.Params) transaction.Result {
	ctx, span := telemetry.Tracer("txbuilder").Start(ctx, "txbuilder.SendTransaction")
	defer span.End()

	span.SetAttributes(attribute.String("tx.to", params.To))

	result := s.send(ctx, params)
	if result.Status == transaction.StatusFailed {
		span.SetStatus(codes.Error, result.Error)
		logger.Warn(ctx, "transaction send failed",
			"tx.to", params.To,
			"error", result.Error,
		)
		return result
	}

	span.SetAttributes(attribute.String("tx.hash", result.Hash))
	logger.Info(ctx, "transaction sent",
		"tx.to", params.To,
		"tx.hash", result.Hash,
	)
	return result
}

func (s *service) send(ctx context.Context, params transaction.Params) transaction.Result {
	tx, err := s.prepare(ctx, params)
	if err != nil {
		return transaction.Failed("", err)
	}

	hash, err := s.wallet.SendTransaction(ctx, tx)
	if err != nil {
		return transaction.Failed("", &SendError{Err: err})
	}
	if hash == "" {
		return transaction.Failed("", &SendError{Err: ErrEmptyHash})
	}

	return transaction.Result{
		Hash:   hash,
		Status: transaction.StatusPending,
	}
}

func (s *service) CalculateCost(ctx context.Context, params transaction.Params) (transaction.Cost, error) {
	var (
		gasLimit = s.EstimateGas(params)
		gasPrice *big.Int
		err      error
	)

	if params.GasLimit != "" {
		if gasLimit, err = parseQuantity(params.GasLimit); err != nil {
			return transaction.Cost{}, &BuildError{Field: "gasLimit", Err: err}
		}
	}

	if params.GasPrice != "" {
		gasPrice, err = parseQuantity(params.GasPrice)
	} else {
		gasPrice, err = s.chainState.GasPrice(ctx)
	}
	if err != nil {
		return transaction.Cost{}, &BuildError{Field: "gasPrice", Err: err}
	}

	value, err := ToBaseUnits(params.Value)
	if err != nil {
		return transaction.Cost{}, &BuildError{Field: "value", Err: err}
	}

	gasCost := new(big.Int).Mul(gasLimit, gasPrice)
	totalCost := new(big.Int).Add(gasCost, value)

	return transaction.Cost{
		GasLimit:  gasLimit.String(),
		GasPrice:  gasPrice.String(),
		GasCost:   gasCost.String(),
		TotalCost: totalCost.String(),
	}, nil
}

type config struct {
	chainState ChainState
	encoder    PayloadEncoder
}

type Option func(*config)

// New returns a builder sending through w.
//
// Without options, gas prices and nonces come from PlaceholderChainState and
// precompile payloads are left empty.
func New(w Wallet, opts ...Option) *service {
	cfg := config{
		chainState: PlaceholderChainState{},
		encoder:    stubEncoder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallet:     w,
		chainState: cfg.chainState,
		encoder:    cfg.encoder,
	}
}

// WithChainState sets the gas price and nonce source.
func WithChainState(cs ChainState) Option {
	return func(c *config) {
		c.chainState = cs
	}
}

// WithPayloadEncoder sets the encoder used by the precompile builders.
func WithPayloadEncoder(e PayloadEncoder) Option {
	return func(c *config) {
		c.encoder = e
	}
}
