package account

import (
	"math/big"

	caigotypes "github.com/dontpanicdao/caigo/types"
	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

var contractAddressPrefix = caigotypes.UTF8StrToBig("STARKNET_CONTRACT_ADDRESS")

// ComputeAddress derives the deterministic account contract address for a
// public key: the account is computed as if self-deployed, with the public
// key as salt, the proxy class as the deployed class, a zero deployer, and
// constructor call data delegating to the account class's initialize entry
// point. The result must match the chain's own derivation exactly; the venue
// authenticates callers against it without an on-chain deployment check.
func ComputeAddress(publicKey, accountClassHash, proxyClassHash *big.Int) (*big.Int, error) {
	if publicKey == nil || accountClassHash == nil || proxyClassHash == nil {
		return nil, errors.Wrap(types.ErrProtocol, "nil address derivation input")
	}
	calldata := []*big.Int{
		accountClassHash,
		crypto.SelectorFromName("initialize"),
		big.NewInt(2),
		publicKey,
		big.NewInt(0),
	}
	calldataHash, err := crypto.HashOnElements(calldata)
	if err != nil {
		return nil, errors.Wrap(types.ErrProtocol, err.Error())
	}
	address, err := crypto.HashOnElements([]*big.Int{
		contractAddressPrefix,
		big.NewInt(0),
		publicKey,
		proxyClassHash,
		calldataHash,
	})
	if err != nil {
		return nil, errors.Wrap(types.ErrProtocol, err.Error())
	}
	return address, nil
}
