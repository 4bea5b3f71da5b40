package gateway

import (
	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/types"
)

// Environment selects a venue deployment.
type Environment string

const (
	EnvironmentProd    Environment = "prod"
	EnvironmentTestnet Environment = "testnet"
)

// ParseEnvironment validates an environment name from config.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvironmentProd:
		return EnvironmentProd, nil
	case EnvironmentTestnet:
		return EnvironmentTestnet, nil
	}
	return "", errors.Wrapf(types.ErrConfigFormat, "unknown environment %q", s)
}

// APIURL returns the REST base URL for the environment.
func (e Environment) APIURL() string {
	if e == EnvironmentProd {
		return "https://api.prod.paradex.trade/v1"
	}
	return "https://api.testnet.paradex.trade/v1"
}
