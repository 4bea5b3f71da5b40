// Package account holds the client-side trust core of a venue account: key
// derivation from an L1 wallet, the deterministic L2 account address, and
// every signing operation the venue accepts. An Account is safe for
// concurrent use; only the session token is mutable, behind a read-write
// lock, and signing never touches it.
package account

import (
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/felt"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// Account is a fully derived venue account bound to one system config.
type Account struct {
	l1Address    string
	l2PrivateKey *big.Int
	l2PublicKey  *big.Int
	l2Address    *big.Int
	chainID      *big.Int

	mu           sync.RWMutex
	sessionToken string

	now func() time.Time
}

// FromL1PrivateKey derives the L2 key pair from an L1 wallet key via the
// deterministic key derivation message, then constructs the account.
func FromL1PrivateKey(cfg *types.SystemConfig, l1Address, l1PrivateKey string) (*Account, error) {
	if cfg == nil {
		return nil, errors.Wrap(types.ErrConfigFormat, "nil system config")
	}
	l1ChainID, err := strconv.ParseUint(cfg.L1ChainID, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(types.ErrConfigFormat, "l1 chain id %q is not decimal", cfg.L1ChainID)
	}
	priv, err := DeriveL2PrivateKey(l1PrivateKey, l1ChainID)
	if err != nil {
		return nil, err
	}
	return FromL2PrivateKey(cfg, l1Address, priv)
}

// FromL2PrivateKeyHex constructs the account from an already derived L2
// private key in hex form. Keys larger than the curve order are reduced.
func FromL2PrivateKeyHex(cfg *types.SystemConfig, l1Address, l2PrivateKey string) (*Account, error) {
	raw, ok := new(big.Int).SetString(trimHexPrefix(l2PrivateKey), 16)
	if !ok {
		return nil, errors.Wrapf(types.ErrCredentialFormat, "invalid l2 private key hex")
	}
	return FromL2PrivateKey(cfg, l1Address, raw)
}

// FromL2PrivateKey constructs the account from a raw L2 private scalar.
func FromL2PrivateKey(cfg *types.SystemConfig, l1Address string, l2PrivateKey *big.Int) (*Account, error) {
	if cfg == nil {
		return nil, errors.Wrap(types.ErrConfigFormat, "nil system config")
	}
	if l2PrivateKey == nil || l2PrivateKey.Sign() == 0 {
		return nil, errors.Wrap(types.ErrCredentialFormat, "empty l2 private key")
	}
	priv := crypto.ReduceScalar(l2PrivateKey)
	if priv.Sign() == 0 {
		return nil, errors.Wrap(types.ErrCredentialFormat, "l2 private key reduces to zero")
	}

	pub, err := crypto.PublicKey(priv)
	if err != nil {
		return nil, errors.Wrap(types.ErrCredentialFormat, err.Error())
	}
	accountClassHash, err := felt.FromHex(cfg.ParaclearAccountHash)
	if err != nil {
		return nil, errors.Wrapf(types.ErrConfigFormat, "account class hash: %s", err)
	}
	proxyClassHash, err := felt.FromHex(cfg.ParaclearAccountProxyHash)
	if err != nil {
		return nil, errors.Wrapf(types.ErrConfigFormat, "account proxy class hash: %s", err)
	}
	address, err := ComputeAddress(pub, accountClassHash, proxyClassHash)
	if err != nil {
		return nil, err
	}
	chainID, err := felt.FromShortString(cfg.StarknetChainID)
	if err != nil {
		return nil, errors.Wrapf(types.ErrConfigFormat, "starknet chain id: %s", err)
	}

	return &Account{
		l1Address:    l1Address,
		l2PrivateKey: priv,
		l2PublicKey:  pub,
		l2Address:    address,
		chainID:      chainID,
		now:          time.Now,
	}, nil
}

// L1Address returns the L1 wallet address the account was onboarded with.
func (a *Account) L1Address() string {
	return a.l1Address
}

// L2PublicKey returns the Starknet public key.
func (a *Account) L2PublicKey() *big.Int {
	return new(big.Int).Set(a.l2PublicKey)
}

// L2PublicKeyHex returns the Starknet public key as 0x-prefixed hex.
func (a *Account) L2PublicKeyHex() string {
	return felt.ToHex(a.l2PublicKey)
}

// L2Address returns the deterministic account contract address.
func (a *Account) L2Address() *big.Int {
	return new(big.Int).Set(a.l2Address)
}

// L2AddressHex returns the account contract address as 0x-prefixed hex.
func (a *Account) L2AddressHex() string {
	return felt.ToHex(a.l2Address)
}

// ChainID returns the L2 chain identifier felt.
func (a *Account) ChainID() *big.Int {
	return new(big.Int).Set(a.chainID)
}

// SessionToken returns the current session token, or the empty string when
// the account has not authenticated yet.
func (a *Account) SessionToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionToken
}

// SetSessionToken replaces the session token wholesale.
func (a *Account) SetSessionToken(token string) {
	a.mu.Lock()
	a.sessionToken = token
	a.mu.Unlock()
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
