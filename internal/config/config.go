// Package config loads txflow settings from TXFLOW_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/txflow/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "TXFLOW"

const (
	WalletLocal  = "local"
	WalletRemote = "remote"

	ChainStateRPC         = "rpc"
	ChainStatePlaceholder = "placeholder"

	ObserverSimulated = "simulated"
	ObserverReceipt   = "receipt"
)

type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	RPCURL     string `envconfig:"RPC_URL" default:"http://localhost:8545" validate:"required,url"`
	ChainState string `envconfig:"CHAIN_STATE" default:"rpc" validate:"oneof=rpc placeholder"`

	HTTP      HTTP      `envconfig:"HTTP"`
	Wallet    Wallet    `envconfig:"WALLET"`
	Monitor   Monitor   `envconfig:"MONITOR"`
	Redis     Redis     `envconfig:"REDIS"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

type HTTP struct {
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s" validate:"gtefield=RetryWaitMin"`
}

// Wallet selects how transactions are signed. A local wallet holds the
// private key; a remote one delegates to SignerURL (or RPCURL when empty)
// and sends from Address, or from the signer's first account.
type Wallet struct {
	Mode       string `envconfig:"MODE" default:"local" validate:"oneof=local remote"`
	PrivateKey string `envconfig:"PRIVATE_KEY" validate:"required_if=Mode local"`
	Address    string `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
	SignerURL  string `envconfig:"SIGNER_URL" validate:"omitempty,url"`
}

type Monitor struct {
	Retention      time.Duration `envconfig:"RETENTION" default:"5m" validate:"gt=0"`
	Observer       string        `envconfig:"OBSERVER" default:"simulated" validate:"oneof=simulated receipt"`
	SimulatedDelay time.Duration `envconfig:"SIMULATED_DELAY" default:"3s"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
}

// Redis is optional: the status store is only enabled when Addr is set.
type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`

	StatusTTL time.Duration `envconfig:"STATUS_TTL" default:"24h" validate:"gt=0"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"txflow" validate:"required"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SignerURL is the endpoint remote wallets talk to.
func (c Config) SignerURL() string {
	if c.Wallet.SignerURL != "" {
		return c.Wallet.SignerURL
	}
	return c.RPCURL
}
