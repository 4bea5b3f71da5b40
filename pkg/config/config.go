// Package config loads client configuration from the environment.
package config

import (
	"os"

	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/gateway"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// Environment variable names for client configuration.
const (
	EnvParadexEnvironment  = "PARADEX_ENVIRONMENT"
	EnvParadexL1Address    = "PARADEX_L1_ADDRESS"
	EnvParadexL1PrivateKey = "PARADEX_L1_PRIVATE_KEY"
	EnvParadexL2PrivateKey = "PARADEX_L2_PRIVATE_KEY"
	EnvParadexVerbose      = "PARADEX_VERBOSE"
)

// Config is everything needed to construct a gateway client and an account.
// At least one of L1PrivateKey or L2PrivateKey must be set: the L2 key is
// derived from the L1 key when only the latter is present.
type Config struct {
	Environment  gateway.Environment
	L1Address    string
	L1PrivateKey string
	L2PrivateKey string
	Verbose      bool
}

// LoadFromEnv reads the configuration from environment variables. The
// environment name defaults to testnet.
func LoadFromEnv() (*Config, error) {
	envName := os.Getenv(EnvParadexEnvironment)
	if envName == "" {
		envName = string(gateway.EnvironmentTestnet)
	}
	env, err := gateway.ParseEnvironment(envName)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Environment:  env,
		L1Address:    os.Getenv(EnvParadexL1Address),
		L1PrivateKey: os.Getenv(EnvParadexL1PrivateKey),
		L2PrivateKey: os.Getenv(EnvParadexL2PrivateKey),
		Verbose:      os.Getenv(EnvParadexVerbose) == "true",
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration can construct an account.
func (c *Config) Validate() error {
	if c.L1PrivateKey == "" && c.L2PrivateKey == "" {
		return errors.Wrapf(types.ErrConfigFormat,
			"one of %s or %s must be set", EnvParadexL1PrivateKey, EnvParadexL2PrivateKey)
	}
	return nil
}
