// Package felt converts between the string representations used on the wire
// and Stark field elements. Values are held as *big.Int; arithmetic packages
// convert at their boundaries.
package felt

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	caigotypes "github.com/dontpanicdao/caigo/types"
)

// maxShortStringLength is the longest UTF-8 string that fits in a felt.
const maxShortStringLength = 31

var prime = fp.Modulus()

// Prime returns the Stark field prime.
func Prime() *big.Int {
	return new(big.Int).Set(prime)
}

// FromString parses a felt from its wire representation: a 0x-prefixed hex
// numeral, a decimal numeral, or a UTF-8 short string of at most 31 bytes.
func FromString(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty felt value")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return FromHex(s)
	}
	if isDecimal(s) {
		return FromDecimal(s)
	}
	return FromShortString(s)
}

// FromHex parses a 0x-prefixed hex numeral.
func FromHex(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return nil, fmt.Errorf("empty hex felt %q", s)
	}
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex felt %q", s)
	}
	if v.Cmp(prime) >= 0 {
		return nil, fmt.Errorf("felt %q exceeds field prime", s)
	}
	return v, nil
}

// FromDecimal parses a decimal numeral.
func FromDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal felt %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative felt %q", s)
	}
	if v.Cmp(prime) >= 0 {
		return nil, fmt.Errorf("felt %q exceeds field prime", s)
	}
	return v, nil
}

// FromShortString encodes a UTF-8 string of at most 31 bytes as a felt,
// interpreting the raw bytes as a big-endian integer.
func FromShortString(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty short string")
	}
	if len(s) > maxShortStringLength {
		return nil, fmt.Errorf("short string %q exceeds %d bytes", s, maxShortStringLength)
	}
	return caigotypes.UTF8StrToBig(s), nil
}

// ToHex formats a felt as lowercase 0x-prefixed hex with no leading zeros.
func ToHex(v *big.Int) string {
	return caigotypes.BigToHex(v)
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
