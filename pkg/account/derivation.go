package account

import (
	"fmt"
	"math/big"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// BuildStarkKeyMessage is the exact personal-sign message an L1 wallet signs
// to derive its L2 key. The chain id is rendered in decimal.
func BuildStarkKeyMessage(l1ChainID uint64) string {
	return fmt.Sprintf("Paradex Stark Key Derivation: %d", l1ChainID)
}

// DeriveL2PrivateKey derives the L2 private scalar from an L1 private key:
// personal-sign the derivation message, keccak the 64-byte r||s of the
// signature, and reduce the digest into the stark curve scalar field.
// The same L1 key and chain id always yield the same scalar.
func DeriveL2PrivateKey(l1PrivateKey string, l1ChainID uint64) (*big.Int, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(l1PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrapf(types.ErrCredentialFormat, "l1 private key: %s", err)
	}
	message := []byte(BuildStarkKeyMessage(l1ChainID))
	signature, err := crypto.EthPersonalSign(message, key)
	if err != nil {
		return nil, errors.Wrapf(types.ErrCredentialFormat, "derivation signature: %s", err)
	}
	// Recovery byte is excluded; only r||s feeds the digest.
	digest := ethcrypto.Keccak256(signature[:64])
	return crypto.ReduceScalar(new(big.Int).SetBytes(digest)), nil
}
