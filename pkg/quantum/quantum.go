// Package quantum converts between human-readable decimal amounts and the
// venue's integer quantum representation. The venue publishes the decimal
// count in its system config (paraclear_decimals).
package quantum

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ToQuantum converts a decimal amount to its quantum string, truncating any
// precision beyond the configured decimals.
func ToQuantum(value decimal.Decimal, decimals int32) string {
	return value.Shift(decimals).Truncate(0).String()
}

// FromQuantum parses a quantum string back into a decimal amount.
func FromQuantum(quantum string, decimals int32) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(quantum)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid quantum %q", quantum)
	}
	return v.Shift(-decimals), nil
}

// ParseToQuantum parses a decimal string and converts it in one step.
func ParseToQuantum(value string, decimals int32) (string, error) {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return "", errors.Wrapf(err, "invalid decimal amount %q", value)
	}
	return ToQuantum(v, decimals), nil
}
