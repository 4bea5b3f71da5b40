package crypto

import (
	"crypto/ecdsa"

	ethaccounts "github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EthPersonalSign signs a message with the EIP-191 personal-message scheme
// and returns the 65-byte r||s||v signature.
func EthPersonalSign(message []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	return ethcrypto.Sign(ethaccounts.TextHash(message), key)
}
