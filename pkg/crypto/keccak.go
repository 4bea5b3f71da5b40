package crypto

import (
	"math/big"

	caigotypes "github.com/dontpanicdao/caigo/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// keccakMask keeps the low 250 bits of a keccak256 digest so the result
// always fits in a felt.
var keccakMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// StarknetKeccak returns keccak256(data) truncated to its low 250 bits.
func StarknetKeccak(data []byte) *big.Int {
	digest := new(big.Int).SetBytes(ethcrypto.Keccak256(data))
	return digest.And(digest, keccakMask)
}

// SelectorFromName returns the starknet-keccak of an ASCII name. It is used
// both for entry point selectors and for typed data type hashes.
func SelectorFromName(name string) *big.Int {
	return caigotypes.GetSelectorFromName(name)
}
