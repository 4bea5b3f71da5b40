// Package crypto wraps the Stark curve and hash primitives the signing
// engine is built on: starknet-keccak, Pedersen hashing, curve key
// derivation and ECDSA signatures over the stark curve.
package crypto

import (
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	starkecdsa "github.com/consensys/gnark-crypto/ecc/stark-curve/ecdsa"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	"github.com/dontpanicdao/caigo"
)

// PublicKey returns the x coordinate of priv*G on the stark curve, which is
// the Starknet public key for the scalar.
func PublicKey(priv *big.Int) (*big.Int, error) {
	x, _, err := caigo.Curve.PrivateToPoint(priv)
	if err != nil {
		return nil, fmt.Errorf("public key from scalar: %w", err)
	}
	return x, nil
}

// PublicKeyPoint returns the full affine public key point for priv.
func PublicKeyPoint(priv *big.Int) (x, y *big.Int, err error) {
	return caigo.Curve.PrivateToPoint(priv)
}

// Sign produces an ECDSA signature over the stark curve for a message hash
// that has already been computed. The hash is consumed as-is; no further
// hashing is applied.
func Sign(messageHash, priv *big.Int) (r, s *big.Int, err error) {
	key, err := ecdsaPrivateKey(priv)
	if err != nil {
		return nil, nil, err
	}
	sigBin, err := key.Sign(messageHash.Bytes(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("stark curve sign: %w", err)
	}
	r = new(big.Int).SetBytes(sigBin[:fr.Bytes])
	s = new(big.Int).SetBytes(sigBin[fr.Bytes : 2*fr.Bytes])
	return r, s, nil
}

// Verify reports whether (r, s) is a valid signature over messageHash for
// the public key point (pubX, pubY).
func Verify(messageHash, r, s, pubX, pubY *big.Int) bool {
	return caigo.Curve.Verify(messageHash, r, s, pubX, pubY)
}

// PedersenArray hashes a sequence of felts with the standard Pedersen array
// hash (length-suffixed chain over the Pedersen point hash).
func PedersenArray(elems []*big.Int) *big.Int {
	fpElems := make([]*fp.Element, len(elems))
	for i, elem := range elems {
		fpElems[i] = new(fp.Element).SetBigInt(elem)
	}
	hash := pedersenhash.PedersenArray(fpElems...)
	return hash.BigInt(new(big.Int))
}

// HashOnElements is the chain's compute_hash_on_elements, used by the
// deterministic contract address derivation.
func HashOnElements(elems []*big.Int) (*big.Int, error) {
	hash, err := caigo.Curve.ComputeHashOnElements(elems)
	if err != nil {
		return nil, fmt.Errorf("hash on elements: %w", err)
	}
	return hash, nil
}

// ReduceScalar maps an arbitrary integer into the stark curve scalar field.
func ReduceScalar(v *big.Int) *big.Int {
	var e fr.Element
	e.SetBigInt(v)
	return e.BigInt(new(big.Int))
}

// ecdsaPrivateKey builds a gnark ECDSA key pair from a raw scalar. The
// scalar must already be reduced into the curve order.
func ecdsaPrivateKey(priv *big.Int) (*starkecdsa.PrivateKey, error) {
	if priv == nil || priv.Sign() <= 0 {
		return nil, fmt.Errorf("invalid private scalar")
	}
	_, g := starkcurve.Generators()
	pub := new(starkecdsa.PublicKey)
	pub.A.ScalarMultiplication(&g, priv)

	key := new(starkecdsa.PrivateKey)
	scalarBytes := priv.FillBytes(make([]byte, fr.Bytes))
	buf := append(pub.Bytes(), scalarBytes...)
	if _, err := key.SetBytes(buf); err != nil {
		return nil, fmt.Errorf("build signing key: %w", err)
	}
	return key, nil
}
